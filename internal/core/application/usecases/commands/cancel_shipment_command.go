package commands

import (
	"errors"

	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

var (
	ErrCancelShipmentCommandIsNotConstructed = errors.New(
		"CancelShipmentCommand must be created via NewCancelShipmentCommand constructor",
	)
)

// CancelShipmentCommand represents a request to call a cargo off. Cancelling
// is how cargoes leave the system: nothing is ever physically deleted.
type CancelShipmentCommand struct { //nolint:recvcheck //using for validation
	cargoCode string

	guard guard.ConstructorGuard
}

// NewCancelShipmentCommand creates a command to cancel a cargo.
func NewCancelShipmentCommand(cargoCode string) (CancelShipmentCommand, error) {
	cmd := CancelShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCargoCode(cargoCode); err != nil {
		return CancelShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCancelShipmentCommandIsNotConstructed)
}

// CargoCode returns the business code of the cargo to cancel.
func (c CancelShipmentCommand) CargoCode() string {
	return c.cargoCode
}

func (c *CancelShipmentCommand) setCargoCode(cargoCode string) error {
	if cargoCode == "" {
		return errs.NewValueIsRequiredError("codigoCarga")
	}
	c.cargoCode = cargoCode
	return nil
}

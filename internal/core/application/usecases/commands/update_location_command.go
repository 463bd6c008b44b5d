package commands

import (
	"errors"

	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

var (
	ErrUpdateLocationCommandIsNotConstructed = errors.New(
		"UpdateLocationCommand must be created via NewUpdateLocationCommand constructor",
	)
)

// UpdateLocationCommand represents a request to record where a cargo
// currently is without changing its status. Silent position updates do not
// produce ledger entries; only status changes do.
type UpdateLocationCommand struct { //nolint:recvcheck //using for validation
	cargoCode    string
	locationText string

	guard guard.ConstructorGuard
}

// NewUpdateLocationCommand creates a command to update a cargo's location.
func NewUpdateLocationCommand(cargoCode, locationText string) (UpdateLocationCommand, error) {
	cmd := UpdateLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCargoCode(cargoCode),
		cmd.setLocationText(locationText),
	); err != nil {
		return UpdateLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLocationCommandIsNotConstructed)
}

// CargoCode returns the business code of the cargo to update.
func (c UpdateLocationCommand) CargoCode() string {
	return c.cargoCode
}

// LocationText returns the free-text address of the cargo's new location.
func (c UpdateLocationCommand) LocationText() string {
	return c.locationText
}

func (c *UpdateLocationCommand) setCargoCode(cargoCode string) error {
	if cargoCode == "" {
		return errs.NewValueIsRequiredError("codigoCarga")
	}
	c.cargoCode = cargoCode
	return nil
}

func (c *UpdateLocationCommand) setLocationText(locationText string) error {
	if locationText == "" {
		return errs.NewValueIsRequiredError("localTexto")
	}
	c.locationText = locationText
	return nil
}

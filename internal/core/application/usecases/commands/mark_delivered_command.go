package commands

import (
	"errors"

	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

var (
	ErrMarkDeliveredCommandIsNotConstructed = errors.New(
		"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
	)
)

// MarkDeliveredCommand represents a request to mark a cargo as delivered at
// its destination.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	cargoCode string

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates a command to deliver a cargo.
func NewMarkDeliveredCommand(cargoCode string) (MarkDeliveredCommand, error) {
	cmd := MarkDeliveredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCargoCode(cargoCode); err != nil {
		return MarkDeliveredCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

// CargoCode returns the business code of the cargo to deliver.
func (c MarkDeliveredCommand) CargoCode() string {
	return c.cargoCode
}

func (c *MarkDeliveredCommand) setCargoCode(cargoCode string) error {
	if cargoCode == "" {
		return errs.NewValueIsRequiredError("codigoCarga")
	}
	c.cargoCode = cargoCode
	return nil
}

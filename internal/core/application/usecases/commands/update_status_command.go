package commands

import (
	"errors"

	"cargotracker/internal/core/domain/model/shipment"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

var (
	ErrUpdateStatusCommandIsNotConstructed = errors.New(
		"UpdateStatusCommand must be created via NewUpdateStatusCommand constructor",
	)
)

// UpdateStatusCommand represents a request to move a cargo to a new status.
// The raw status is normalized during construction, so an unrecognized label
// is rejected before the handler ever runs.
type UpdateStatusCommand struct { //nolint:recvcheck //using for validation
	cargoCode    string
	status       shipment.Status
	locationText string
	notes        string

	guard guard.ConstructorGuard
}

// NewUpdateStatusCommand creates a command to change a cargo's status.
// rawStatus accepts free-form input ("em transito", "ENTREGUE") and is
// canonicalized; locationText is where the cargo is now; notes are optional.
func NewUpdateStatusCommand(cargoCode, rawStatus, locationText, notes string) (UpdateStatusCommand, error) {
	cmd := UpdateStatusCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCargoCode(cargoCode),
		cmd.setStatus(rawStatus),
		cmd.setLocationText(locationText),
	); err != nil {
		return UpdateStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStatusCommandIsNotConstructed)
}

// CargoCode returns the business code of the cargo to update.
func (c UpdateStatusCommand) CargoCode() string {
	return c.cargoCode
}

// Status returns the normalized target status.
func (c UpdateStatusCommand) Status() shipment.Status {
	return c.status
}

// LocationText returns the free-text address of the cargo's new location.
func (c UpdateStatusCommand) LocationText() string {
	return c.locationText
}

// Notes returns the optional annotation for the ledger entry.
func (c UpdateStatusCommand) Notes() string {
	return c.notes
}

func (c *UpdateStatusCommand) setCargoCode(cargoCode string) error {
	if cargoCode == "" {
		return errs.NewValueIsRequiredError("codigoCarga")
	}
	c.cargoCode = cargoCode
	return nil
}

func (c *UpdateStatusCommand) setStatus(rawStatus string) error {
	status, err := shipment.Normalize(rawStatus)
	if err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *UpdateStatusCommand) setLocationText(locationText string) error {
	if locationText == "" {
		return errs.NewValueIsRequiredError("localTexto")
	}
	c.locationText = locationText
	return nil
}

package commands

import (
	"errors"
	"time"

	"cargotracker/internal/core/domain/model/shipment"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

var (
	ErrAddHistoryRecordCommandIsNotConstructed = errors.New(
		"AddHistoryRecordCommand must be created via NewAddHistoryRecordCommand constructor",
	)
)

// AddHistoryRecordCommand represents a request to append a manual entry to a
// cargo's movement ledger: an annotation made after the fact, such as a
// customs hold noticed hours later. Manual entries may be back-dated and do
// not change the shipment itself.
type AddHistoryRecordCommand struct { //nolint:recvcheck //using for validation
	cargoCode    string
	status       shipment.Status
	locationText string
	notes        string
	occurredAt   time.Time

	guard guard.ConstructorGuard
}

// NewAddHistoryRecordCommand creates a command to append a manual ledger
// entry. rawStatus is normalized; occurredAt may be zero to stamp the entry
// with the current time.
func NewAddHistoryRecordCommand(
	cargoCode, rawStatus, locationText, notes string,
	occurredAt time.Time,
) (AddHistoryRecordCommand, error) {
	cmd := AddHistoryRecordCommand{
		notes:      notes,
		occurredAt: occurredAt,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCargoCode(cargoCode),
		cmd.setStatus(rawStatus),
		cmd.setLocationText(locationText),
	); err != nil {
		return AddHistoryRecordCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddHistoryRecordCommand) Validate() error {
	return c.guard.Validate(ErrAddHistoryRecordCommandIsNotConstructed)
}

// CargoCode returns the business code of the cargo to annotate.
func (c AddHistoryRecordCommand) CargoCode() string {
	return c.cargoCode
}

// Status returns the normalized status the entry records.
func (c AddHistoryRecordCommand) Status() shipment.Status {
	return c.status
}

// LocationText returns the free-text address where the event happened.
func (c AddHistoryRecordCommand) LocationText() string {
	return c.locationText
}

// Notes returns the optional annotation.
func (c AddHistoryRecordCommand) Notes() string {
	return c.notes
}

// OccurredAt returns when the event happened, or the zero time to use now.
func (c AddHistoryRecordCommand) OccurredAt() time.Time {
	return c.occurredAt
}

func (c *AddHistoryRecordCommand) setCargoCode(cargoCode string) error {
	if cargoCode == "" {
		return errs.NewValueIsRequiredError("codigoCarga")
	}
	c.cargoCode = cargoCode
	return nil
}

func (c *AddHistoryRecordCommand) setStatus(rawStatus string) error {
	status, err := shipment.Normalize(rawStatus)
	if err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *AddHistoryRecordCommand) setLocationText(locationText string) error {
	if locationText == "" {
		return errs.NewValueIsRequiredError("localTexto")
	}
	c.locationText = locationText
	return nil
}

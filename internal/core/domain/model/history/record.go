package history

import (
	"errors"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/shipment"
)

var (
	// ErrRecordIsNotConstructed is returned when a Record instance was not
	// created through NewRecord or RestoreRecord.
	ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord or RestoreRecord")
)

// Record is one immutable entry in a shipment's movement ledger. Every
// meaningful event in a cargo's life (registration, each status change,
// delivery, cancellation, plus manual annotations) produces exactly one
// Record. Records are append-only: once written they are never updated or
// deleted, so the ledger is a faithful audit trail.
type Record struct {
	id         kernel.UUID
	shipmentID kernel.UUID
	status     shipment.Status
	location   kernel.Location
	notes      string
	occurredAt time.Time

	isConstructed bool
}

// NewRecord creates a ledger entry for a shipment event. The status is the
// shipment's status at the moment of the event, and location is where the
// event happened. Notes may be empty. When occurredAt is the zero time the
// entry is stamped with the current time; manual entries may back-date it.
func NewRecord(
	id kernel.UUID,
	shipmentID kernel.UUID,
	status shipment.Status,
	location kernel.Location,
	notes string,
	occurredAt time.Time,
) (*Record, error) {
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	r := &Record{
		notes:         notes,
		occurredAt:    occurredAt,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setShipmentID(shipmentID),
		r.setStatus(status),
		r.setLocation(location),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRecord reconstructs a Record from persistence.
func RestoreRecord(
	id kernel.UUID,
	shipmentID kernel.UUID,
	status shipment.Status,
	location kernel.Location,
	notes string,
	occurredAt time.Time,
) (*Record, error) {
	r := &Record{
		notes:         notes,
		occurredAt:    occurredAt,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setShipmentID(shipmentID),
		r.setStatus(status),
		r.setLocation(location),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the Record instance was properly constructed.
func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

// IsEqual compares two records by their unique identifiers.
func (r *Record) IsEqual(other *Record) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the record's unique identifier.
func (r *Record) ID() kernel.UUID {
	return r.id
}

// ShipmentID returns the identifier of the shipment the record belongs to.
func (r *Record) ShipmentID() kernel.UUID {
	return r.shipmentID
}

// Status returns the shipment status at the moment of the event.
func (r *Record) Status() shipment.Status {
	return r.status
}

// Location returns where the event happened.
func (r *Record) Location() kernel.Location {
	return r.location
}

// Notes returns the free-text annotation, or "" when none was given.
func (r *Record) Notes() string {
	return r.notes
}

// OccurredAt returns when the event happened.
func (r *Record) OccurredAt() time.Time {
	return r.occurredAt
}

func (r *Record) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Record) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	r.shipmentID = shipmentID
	return nil
}

func (r *Record) setStatus(status shipment.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}

func (r *Record) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	r.location = location
	return nil
}

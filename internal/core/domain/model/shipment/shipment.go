package shipment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
	// created through NewShipment or RestoreShipment. This ensures all
	// shipments are properly validated.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")
)

// Shipment represents a tracked cargo in the system. It is the aggregate root
// that manages the cargo lifecycle from registration through transit to
// delivery or cancellation.
//
// Shipment follows these invariants:
//   - Must have a valid unique identifier and a non-blank cargo code
//   - Must reference an existing client and operator
//   - Must have valid origin and destination locations
//   - The delivery forecast can never precede the departure date
//   - Status transitions follow the status-flow table; Deliver and Cancel
//     apply their own terminal-state rules on top of it
//
// The Shipment struct uses private fields to ensure encapsulation and
// maintains its invariants through validated methods.
type Shipment struct {
	id              kernel.UUID
	cargoCode       string
	clientID        kernel.UUID
	operatorID      kernel.UUID
	origin          kernel.Location
	destination     kernel.Location
	currentLocation kernel.Location
	departureAt     time.Time
	forecastAt      time.Time
	status          Status
	createdAt       time.Time
	updatedAt       time.Time

	isConstructed bool
}

// NewShipment registers a new Shipment with validation. This is the only way
// to create a shipment that did not previously exist, ensuring all business
// invariants are maintained.
//
// The shipment starts in Iniciada status with its current location set to the
// origin. The delivery forecast must not precede the departure date.
//
// Returns:
//   - *Shipment: the created shipment if all validations pass
//   - error: validation error if any parameter is invalid
func NewShipment(
	id kernel.UUID,
	cargoCode string,
	clientID kernel.UUID,
	operatorID kernel.UUID,
	origin kernel.Location,
	destination kernel.Location,
	departureAt time.Time,
	forecastAt time.Time,
) (*Shipment, error) {
	now := time.Now().UTC()
	s := &Shipment{
		status:        Iniciada,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setCargoCode(cargoCode),
		s.setClientID(clientID),
		s.setOperatorID(operatorID),
		s.setOrigin(origin),
		s.setDestination(destination),
		s.setSchedule(departureAt, forecastAt),
	); err != nil {
		return nil, err
	}

	s.currentLocation = s.origin
	return s, nil
}

// RestoreShipment reconstructs a Shipment from persistence without re-running
// registration rules. The caller is responsible for supplying data that was
// valid when stored. Structural validation still applies.
func RestoreShipment(
	id kernel.UUID,
	cargoCode string,
	clientID kernel.UUID,
	operatorID kernel.UUID,
	origin kernel.Location,
	destination kernel.Location,
	currentLocation kernel.Location,
	departureAt time.Time,
	forecastAt time.Time,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Shipment, error) {
	s := &Shipment{
		departureAt:   departureAt,
		forecastAt:    forecastAt,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setCargoCode(cargoCode),
		s.setClientID(clientID),
		s.setOperatorID(operatorID),
		s.setOrigin(origin),
		s.setDestination(destination),
		s.setStatus(status),
		currentLocation.Validate(),
	); err != nil {
		return nil, err
	}

	s.currentLocation = currentLocation
	return s, nil
}

// Validate ensures the Shipment instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// CargoCode returns the business identifier clients use to track the cargo.
func (s *Shipment) CargoCode() string {
	return s.cargoCode
}

// ClientID returns the identifier of the client who owns the cargo.
func (s *Shipment) ClientID() kernel.UUID {
	return s.clientID
}

// OperatorID returns the identifier of the operator responsible for the cargo.
func (s *Shipment) OperatorID() kernel.UUID {
	return s.operatorID
}

// Origin returns the location the cargo departs from.
func (s *Shipment) Origin() kernel.Location {
	return s.origin
}

// Destination returns the location the cargo is headed to.
func (s *Shipment) Destination() kernel.Location {
	return s.destination
}

// CurrentLocation returns the last reported location of the cargo.
func (s *Shipment) CurrentLocation() kernel.Location {
	return s.currentLocation
}

// DepartureAt returns the scheduled departure date.
func (s *Shipment) DepartureAt() time.Time {
	return s.departureAt
}

// ForecastAt returns the estimated delivery date.
func (s *Shipment) ForecastAt() time.Time {
	return s.forecastAt
}

// Status returns the current lifecycle status of the shipment.
func (s *Shipment) Status() Status {
	return s.status
}

// CreatedAt returns when the shipment was registered.
func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// UpdatedAt returns when the shipment last changed.
func (s *Shipment) UpdatedAt() time.Time {
	return s.updatedAt
}

// AdvanceTo moves the shipment to a new status, validating the transition
// against the status-flow table. When location carries a value it also
// becomes the shipment's current location; an unconstructed (zero) location
// leaves the current location unchanged.
//
// Returns:
//   - nil on a valid transition
//   - error when the table forbids moving from the current status to target
func (s *Shipment) AdvanceTo(target Status, location kernel.Location) error {
	newStatus, err := s.status.TransitionTo(target)
	if err != nil {
		return err
	}

	if location.Validate() == nil {
		s.currentLocation = location
	}

	s.status = newStatus
	s.touch()
	return nil
}

// UpdateLocation records a new current location without changing the status.
// A location report is not a state-machine event: it applies in any status,
// delivered and cancelled included, so late positional corrections are never
// lost.
func (s *Shipment) UpdateLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}

	s.currentLocation = location
	s.touch()
	return nil
}

// Deliver marks the shipment as delivered and moves its current location to
// the destination.
//
// Terminal states are reported before the transition table is consulted:
//   - an already delivered shipment yields an unprocessable-entity error
//   - a cancelled shipment yields an unprocessable-entity error
//
// Any other status the table does not allow to reach Entregue (such as
// Iniciada) yields an invalid-transition error.
func (s *Shipment) Deliver() error {
	switch s.status {
	case Entregue:
		return errs.NewUnprocessableEntityError("shipment is already delivered")
	case Cancelada:
		return errs.NewUnprocessableEntityError("cannot deliver a cancelled shipment")
	}

	newStatus, err := s.status.TransitionTo(Entregue)
	if err != nil {
		return err
	}

	s.status = newStatus
	s.currentLocation = s.destination
	s.touch()
	return nil
}

// Cancel calls the shipment off. Cancellation is an administrative override
// that is permitted from any non-final status, bypassing the step-by-step
// flow, but a delivered or already cancelled shipment cannot be cancelled.
func (s *Shipment) Cancel() error {
	if s.status.IsFinal() {
		return errs.NewUnprocessableEntityError(
			fmt.Sprintf("cannot cancel a shipment in %s status", s.status))
	}

	s.status = Cancelada
	s.touch()
	return nil
}

func (s *Shipment) touch() {
	s.updatedAt = time.Now().UTC()
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setCargoCode(cargoCode string) error {
	if strings.TrimSpace(cargoCode) == "" {
		return errs.NewValueIsRequiredError("cargoCode")
	}
	s.cargoCode = strings.TrimSpace(cargoCode)
	return nil
}

func (s *Shipment) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("clientID", err)
	}
	s.clientID = clientID
	return nil
}

func (s *Shipment) setOperatorID(operatorID kernel.UUID) error {
	if err := operatorID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("operatorID", err)
	}
	s.operatorID = operatorID
	return nil
}

func (s *Shipment) setOrigin(origin kernel.Location) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	s.origin = origin
	return nil
}

func (s *Shipment) setDestination(destination kernel.Location) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	s.destination = destination
	return nil
}

func (s *Shipment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}

func (s *Shipment) setSchedule(departureAt, forecastAt time.Time) error {
	if departureAt.IsZero() {
		return errs.NewValueIsRequiredError("dataSaida")
	}
	if forecastAt.IsZero() {
		return errs.NewValueIsRequiredError("previsaoEntrega")
	}
	if forecastAt.Before(departureAt) {
		return errs.NewUnprocessableEntityError("delivery forecast cannot precede the departure date")
	}

	s.departureAt = departureAt
	s.forecastAt = forecastAt
	return nil
}

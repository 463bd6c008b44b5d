package shipment

import (
	"fmt"
	"strings"

	"cargotracker/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
// It implements a state machine with defined transitions to ensure
// shipments follow the correct logistics workflow.
//
// State transitions:
//
//	Iniciada ──> EmTransito <──> Transbordo
//	    │            │               │
//	    │            ├──> Entregue <─┤
//	    └────────────┴──> Cancelada <┘
//
// Entregue and Cancelada are final states with no further transitions.
//
// Status is stored and transported as its uppercase string form, which is
// also how clients submit it. Free-form input goes through Normalize before
// being compared against the table.
type Status string

const (
	// Iniciada is the initial status when a shipment is first registered.
	// The cargo has not yet left its origin.
	Iniciada Status = "INICIADA"

	// EmTransito indicates the cargo is moving between locations.
	EmTransito Status = "EM_TRANSITO"

	// Transbordo indicates the cargo is being transferred between vehicles
	// or modes at an intermediate facility.
	Transbordo Status = "TRANSBORDO"

	// Entregue indicates the cargo reached its destination.
	// This is a final state with no further transitions allowed.
	Entregue Status = "ENTREGUE"

	// Cancelada indicates the shipment was called off.
	// This is a final state with no further transitions allowed.
	Cancelada Status = "CANCELADA"
)

// getTransitionTable returns the allowed transitions for each status.
// A status absent from a target list cannot be reached from that source.
func getTransitionTable() map[Status][]Status {
	return map[Status][]Status{
		Iniciada:   {EmTransito, Cancelada},
		EmTransito: {Transbordo, Entregue, Cancelada},
		Transbordo: {EmTransito, Entregue, Cancelada},
		Entregue:   {},
		Cancelada:  {},
	}
}

// Normalize converts free-form status input into its canonical form:
// uppercased, trimmed, with internal whitespace runs collapsed to a single
// underscore. Returns an error when the result is not a recognized status.
//
// Normalize is idempotent: normalizing an already-canonical status returns
// it unchanged.
//
// Example:
//
//	s, err := shipment.Normalize("em transito") // EmTransito, nil
func Normalize(raw string) (Status, error) {
	normalized := Status(strings.Join(strings.Fields(strings.ToUpper(strings.TrimSpace(raw))), "_"))

	if err := normalized.Validate(); err != nil {
		return "", err
	}
	return normalized, nil
}

// Validate checks if the Status value is one of the recognized statuses.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getTransitionTable()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String returns the canonical string form of the status.
// This method implements the fmt.Stringer interface and is safe to call on
// any Status value, including invalid ones.
func (s Status) String() string {
	return string(s)
}

// IsFinal reports whether the status admits no further transitions.
// Entregue and Cancelada are final.
func (s Status) IsFinal() bool {
	return len(getTransitionTable()[s]) == 0 && s.Validate() == nil
}

// AllowedTransitions returns the statuses reachable from s in a single step.
// The returned slice is a copy and may be modified freely. An invalid status
// has no allowed transitions.
func (s Status) AllowedTransitions() []Status {
	allowed := getTransitionTable()[s]
	out := make([]Status, len(allowed))
	copy(out, allowed)
	return out
}

// CanTransitionTo reports whether the table permits moving from s to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getTransitionTable()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo validates a transition against the table and returns the new
// status.
//
// Returns:
//   - (target, nil) on a valid transition
//   - ("", error) when target is not a recognized status
//   - ("", error) when the table forbids moving from s to target
//
// This method is used by Shipment.AdvanceTo to enforce state transitions.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return "", err
	}

	if !s.CanTransitionTo(target) {
		return "", errs.NewInvalidStatusTransitionError(s.String(), target.String())
	}

	return target, nil
}

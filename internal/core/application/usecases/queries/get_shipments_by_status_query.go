package queries

import (
	"errors"

	"cargotracker/internal/core/domain/model/shipment"
	"cargotracker/internal/pkg/guard"
)

var (
	ErrGetShipmentsByStatusQueryIsNotConstructed = errors.New(
		"GetShipmentsByStatusQuery must be created via NewGetShipmentsByStatusQuery constructor",
	)
)

// GetShipmentsByStatusQuery retrieves every cargo currently in one status.
// Used by operations dashboards ("everything stuck in transshipment").
type GetShipmentsByStatusQuery struct { //nolint:recvcheck //using for validation
	status shipment.Status

	guard guard.ConstructorGuard
}

// NewGetShipmentsByStatusQuery creates a query for all cargoes in a status.
// rawStatus accepts free-form input and is normalized.
func NewGetShipmentsByStatusQuery(rawStatus string) (GetShipmentsByStatusQuery, error) {
	status, err := shipment.Normalize(rawStatus)
	if err != nil {
		return GetShipmentsByStatusQuery{}, err
	}

	return GetShipmentsByStatusQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentsByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentsByStatusQueryIsNotConstructed)
}

// Status returns the normalized status to filter by.
func (q GetShipmentsByStatusQuery) Status() shipment.Status {
	return q.status
}

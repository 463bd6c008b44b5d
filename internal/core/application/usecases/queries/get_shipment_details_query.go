package queries

import (
	"errors"

	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

var (
	ErrGetShipmentDetailsQueryIsNotConstructed = errors.New(
		"GetShipmentDetailsQuery must be created via NewGetShipmentDetailsQuery constructor",
	)
)

// GetShipmentDetailsQuery retrieves everything known about a cargo: the
// shipment, its client and operator, and the full movement ledger.
type GetShipmentDetailsQuery struct { //nolint:recvcheck //using for validation
	cargoCode string

	guard guard.ConstructorGuard
}

// NewGetShipmentDetailsQuery creates a query for a cargo's full details.
func NewGetShipmentDetailsQuery(cargoCode string) (GetShipmentDetailsQuery, error) {
	if cargoCode == "" {
		return GetShipmentDetailsQuery{}, errs.NewValueIsRequiredError("codigoCarga")
	}

	return GetShipmentDetailsQuery{
		cargoCode: cargoCode,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentDetailsQueryIsNotConstructed)
}

// CargoCode returns the business code to look up.
func (q GetShipmentDetailsQuery) CargoCode() string {
	return q.cargoCode
}

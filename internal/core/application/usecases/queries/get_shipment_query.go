package queries

import (
	"errors"

	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

var (
	ErrGetShipmentQueryIsNotConstructed = errors.New(
		"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
	)
)

// GetShipmentQuery retrieves a single cargo by its business code. This is
// the lookup behind the public tracking endpoint.
type GetShipmentQuery struct { //nolint:recvcheck //using for validation
	cargoCode string

	guard guard.ConstructorGuard
}

// NewGetShipmentQuery creates a query for one cargo.
func NewGetShipmentQuery(cargoCode string) (GetShipmentQuery, error) {
	if cargoCode == "" {
		return GetShipmentQuery{}, errs.NewValueIsRequiredError("codigoCarga")
	}

	return GetShipmentQuery{
		cargoCode: cargoCode,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// CargoCode returns the business code to look up.
func (q GetShipmentQuery) CargoCode() string {
	return q.cargoCode
}

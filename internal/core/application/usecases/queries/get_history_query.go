package queries

import (
	"errors"
	"strings"

	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

var (
	ErrGetHistoryQueryIsNotConstructed = errors.New(
		"GetHistoryQuery must be created via NewGetHistoryQuery constructor",
	)
)

// GetHistoryQuery retrieves the movement ledger of one cargo by its code.
type GetHistoryQuery struct { //nolint:recvcheck //using for validation
	cargoCode string

	guard guard.ConstructorGuard
}

// NewGetHistoryQuery creates a query for a cargo's movement history.
func NewGetHistoryQuery(cargoCode string) (GetHistoryQuery, error) {
	cargoCode = strings.TrimSpace(cargoCode)
	if cargoCode == "" {
		return GetHistoryQuery{}, errs.NewValueIsRequiredError("codigoCarga")
	}

	return GetHistoryQuery{
		cargoCode: cargoCode,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetHistoryQueryIsNotConstructed)
}

// CargoCode returns the business code of the cargo.
func (q GetHistoryQuery) CargoCode() string {
	return q.cargoCode
}

package queries

import (
	"context"
	"errors"

	"cargotracker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetShipmentQueryHandler retrieves one cargo from the database by its
// business code. Reads go straight to the database for optimal performance
// in the CQRS pattern.
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQueryHandler creates a handler for single-cargo lookups.
// Requires a GORM database connection for query execution.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle executes the lookup. Returns a not-found error when no cargo
// carries the requested code.
func (h GetShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentQuery,
) (ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return ShipmentResponse{}, err
	}

	var row shipmentRow
	err := h.db.WithContext(ctx).
		Where("cargo_code = ?", query.CargoCode()).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ShipmentResponse{}, errs.NewObjectNotFoundError("codigoCarga", query.CargoCode())
		}
		return ShipmentResponse{}, err
	}

	return row.toResponse(), nil
}

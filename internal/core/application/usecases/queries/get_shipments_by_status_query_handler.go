package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetShipmentsByStatusQueryHandler retrieves all cargoes in a given status,
// newest registrations first.
type GetShipmentsByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentsByStatusQueryHandler creates a handler for status listings.
func NewGetShipmentsByStatusQueryHandler(db *gorm.DB) GetShipmentsByStatusQueryHandler {
	return GetShipmentsByStatusQueryHandler{db: db}
}

// Handle executes the listing. An empty result is a valid answer.
func (h GetShipmentsByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentsByStatusQuery,
) ([]ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows := make([]shipmentRow, 0)
	err := h.db.WithContext(ctx).
		Where("status = ?", query.Status().String()).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	shipments := make([]ShipmentResponse, 0, len(rows))
	for _, r := range rows {
		shipments = append(shipments, r.toResponse())
	}

	return shipments, nil
}

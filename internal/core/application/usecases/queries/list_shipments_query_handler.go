package queries

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// ListShipmentsQueryHandler retrieves filtered, sorted pages of shipments.
// The dynamic filter combination is built with the gorm query builder; the
// sort column comes from a whitelist, never from raw input.
type ListShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewListShipmentsQueryHandler creates a handler for shipment listings.
func NewListShipmentsQueryHandler(db *gorm.DB) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{db: db}
}

// Handle executes the listing. The total counts all matches across pages;
// a page past the end returns an empty item list, not an error.
func (h ListShipmentsQueryHandler) Handle(
	ctx context.Context,
	query ListShipmentsQuery,
) (PaginatedShipmentsResponse, error) {
	if err := query.Validate(); err != nil {
		return PaginatedShipmentsResponse{}, err
	}

	tx := h.db.WithContext(ctx).Model(&shipmentRow{})

	filters := query.Filters()
	if filters.ClientID != nil {
		tx = tx.Where("client_id = ?", filters.ClientID.String())
	}
	if filters.OperatorID != nil {
		tx = tx.Where("operator_id = ?", filters.OperatorID.String())
	}
	if status := query.Status(); status != nil {
		tx = tx.Where("status = ?", status.String())
	}
	if filters.DepartureFrom != nil {
		tx = tx.Where("departure_at >= ?", *filters.DepartureFrom)
	}
	if filters.DepartureTo != nil {
		tx = tx.Where("departure_at <= ?", *filters.DepartureTo)
	}
	if filters.ForecastFrom != nil {
		tx = tx.Where("forecast_at >= ?", *filters.ForecastFrom)
	}
	if filters.ForecastTo != nil {
		tx = tx.Where("forecast_at <= ?", *filters.ForecastTo)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return PaginatedShipmentsResponse{}, err
	}

	direction := "ASC"
	if query.SortDesc() {
		direction = "DESC"
	}
	order := fmt.Sprintf("%s %s", sortColumns()[query.SortBy()], direction)

	rows := make([]shipmentRow, 0)
	err := tx.Order(order).
		Offset((query.Page() - 1) * query.PageSize()).
		Limit(query.PageSize()).
		Find(&rows).Error
	if err != nil {
		return PaginatedShipmentsResponse{}, err
	}

	items := make([]ShipmentResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, r.toResponse())
	}

	pageSize := int64(query.PageSize())
	return PaginatedShipmentsResponse{
		Items:      items,
		Total:      total,
		Page:       query.Page(),
		PageSize:   query.PageSize(),
		TotalPages: (total + pageSize - 1) / pageSize,
	}, nil
}

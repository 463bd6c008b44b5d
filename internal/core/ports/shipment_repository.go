package ports

import (
	"context"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/shipment"
)

// ShipmentFilters narrows shipment listings. Zero-value fields are ignored.
type ShipmentFilters struct {
	ClientID        *kernel.UUID
	OperatorID      *kernel.UUID
	Status          *shipment.Status
	DepartureFrom   *time.Time
	DepartureTo     *time.Time
	ForecastFrom    *time.Time
	ForecastTo      *time.Time
}

// Pagination controls page slicing and ordering of listings.
type Pagination struct {
	Page     int
	PageSize int
	SortBy   string
	SortDesc bool
}

// DefaultPagination returns the listing defaults: first page of ten items,
// newest registrations first.
func DefaultPagination() Pagination {
	return Pagination{
		Page:     1,
		PageSize: 10,
		SortBy:   "created_at",
		SortDesc: true,
	}
}

// Offset returns the row offset for the page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// PaginatedShipments is one page of a shipment listing plus the total number
// of matches across all pages.
type PaginatedShipments struct {
	Items    []*shipment.Shipment
	Total    int64
	Page     int
	PageSize int
}

// ShipmentRepository defines the persistence contract for shipment
// aggregates.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	// The shipment must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetByCargoCode retrieves a shipment aggregate by its business code.
	// This is the lookup clients use to track their cargo.
	GetByCargoCode(ctx context.Context, cargoCode string) (*shipment.Shipment, error)

	// ExistsByCargoCode reports whether a shipment with the given business
	// code is already registered. Used to enforce cargo-code uniqueness.
	ExistsByCargoCode(ctx context.Context, cargoCode string) (bool, error)

	// List retrieves one page of shipments matching the filters.
	List(ctx context.Context, filters ShipmentFilters, page Pagination) (PaginatedShipments, error)

	// GetAllInStatus retrieves all shipments currently in the given status.
	GetAllInStatus(ctx context.Context, status shipment.Status) ([]*shipment.Shipment, error)
}

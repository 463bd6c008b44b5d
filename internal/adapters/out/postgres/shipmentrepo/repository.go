package shipmentrepo

import (
	"context"
	"errors"
	"fmt"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/shipment"
	"cargotracker/internal/core/ports"
	"cargotracker/internal/pkg/errs"

	"gorm.io/gorm"
)

// listSortColumns whitelists the columns a listing may be ordered by.
func listSortColumns() map[string]struct{} {
	return map[string]struct{}{
		"created_at":   {},
		"departure_at": {},
		"forecast_at":  {},
		"status":       {},
		"cargo_code":   {},
	}
}

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db *gorm.DB
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB) *GormShipmentRepository {
	return &GormShipmentRepository{db: db}
}

// Add saves a new shipment to the database.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing shipment to the database.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Get retrieves a shipment by ID.
func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCargoCode retrieves a shipment by its business code.
func (r *GormShipmentRepository) GetByCargoCode(ctx context.Context, cargoCode string) (*shipment.Shipment, error) {
	if cargoCode == "" {
		return nil, errs.NewValueIsRequiredError("cargoCode")
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "cargo_code = ?", cargoCode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("codigoCarga", cargoCode)
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsByCargoCode reports whether a shipment with the given business code
// is already registered.
func (r *GormShipmentRepository) ExistsByCargoCode(ctx context.Context, cargoCode string) (bool, error) {
	if cargoCode == "" {
		return false, errs.NewValueIsRequiredError("cargoCode")
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("cargo_code = ?", cargoCode).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// List retrieves one page of shipments matching the filters. The sort column
// must be one of the whitelisted listing columns.
func (r *GormShipmentRepository) List(
	ctx context.Context,
	filters ports.ShipmentFilters,
	page ports.Pagination,
) (ports.PaginatedShipments, error) {
	if page.Page < 1 || page.PageSize < 1 {
		return ports.PaginatedShipments{}, errs.NewValueIsInvalidError("pagination")
	}
	if _, ok := listSortColumns()[page.SortBy]; !ok {
		return ports.PaginatedShipments{}, errs.NewValueIsInvalidError("sortBy")
	}

	tx := r.db.WithContext(ctx).Model(&ShipmentDTO{})

	if filters.ClientID != nil {
		tx = tx.Where("client_id = ?", filters.ClientID.Bytes())
	}
	if filters.OperatorID != nil {
		tx = tx.Where("operator_id = ?", filters.OperatorID.Bytes())
	}
	if filters.Status != nil {
		tx = tx.Where("status = ?", filters.Status.String())
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
		return ports.PaginatedShipments{}, err
	}

	direction := "ASC"
	if page.SortDesc {
		direction = "DESC"
	}

	var dtos []ShipmentDTO
	err := tx.Order(fmt.Sprintf("%s %s", page.SortBy, direction)).
		Offset(page.Offset()).
		Limit(page.PageSize).
		Find(&dtos).Error
	if err != nil {
		return ports.PaginatedShipments{}, err
	}

	items := make([]*shipment.Shipment, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return ports.PaginatedShipments{}, err
		}
		items = append(items, aggregate)
	}

	return ports.PaginatedShipments{
		Items:    items,
		Total:    total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}, nil
}

// GetAllInStatus retrieves all shipments currently in the given status,
// newest registrations first.
func (r *GormShipmentRepository) GetAllInStatus(
	ctx context.Context,
	status shipment.Status,
) ([]*shipment.Shipment, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []ShipmentDTO
	err := r.db.WithContext(ctx).
		Where("status = ?", status.String()).
		Order("created_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	shipments := make([]*shipment.Shipment, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, aggregate)
	}

	return shipments, nil
}

package historyrepo

import (
	"context"

	"cargotracker/internal/core/domain/model/history"
	"cargotracker/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormHistoryRepository implements HistoryRepository using GORM.
type GormHistoryRepository struct {
	db *gorm.DB
}

// NewGormHistoryRepository creates a new GORM movement-ledger repository.
func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

// Add appends a record to the ledger.
func (r *GormHistoryRepository) Add(ctx context.Context, aggregate *history.Record) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByShipment retrieves all records for a shipment, newest first. Records
// stamped at the same instant come back in reverse insertion order so the
// latest write wins the tie.
func (r *GormHistoryRepository) GetByShipment(
	ctx context.Context,
	shipmentID kernel.UUID,
) ([]*history.Record, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RecordDTO
	err := r.db.WithContext(ctx).
		Where("shipment_id = ?", shipmentID.Bytes()).
		Order("occurred_at DESC, seq DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toRecords(dtos)
}

// GetAll retrieves the whole ledger, newest first.
func (r *GormHistoryRepository) GetAll(ctx context.Context) ([]*history.Record, error) {
	var dtos []RecordDTO
	err := r.db.WithContext(ctx).
		Order("occurred_at DESC, seq DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toRecords(dtos)
}

func toRecords(dtos []RecordDTO) ([]*history.Record, error) {
	records := make([]*history.Record, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

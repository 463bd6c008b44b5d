package queries

import (
	"context"
	"errors"

	"cargotracker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetHistoryQueryHandler retrieves the movement ledger of one cargo,
// newest entries first. Entries sharing a timestamp keep insertion order
// via the seq tiebreak.
type GetHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetHistoryQueryHandler creates a handler for history lookups.
func NewGetHistoryQueryHandler(db *gorm.DB) GetHistoryQueryHandler {
	return GetHistoryQueryHandler{db: db}
}

// Handle executes the lookup. An unknown cargo code is a not-found error;
// a known cargo with no entries yields an empty list.
func (h GetHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetHistoryQuery,
) ([]HistoryRecordResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var shipRow shipmentRow
	err := h.db.WithContext(ctx).
		Select("id").
		Where("cargo_code = ?", query.CargoCode()).
		First(&shipRow).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("codigoCarga", query.CargoCode())
		}
		return nil, err
	}

	rows := make([]historyRow, 0)
	err = h.db.WithContext(ctx).
		Where("shipment_id = ?", shipRow.ID).
		Order("occurred_at DESC, seq DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	records := make([]HistoryRecordResponse, 0, len(rows))
	for _, r := range rows {
		records = append(records, r.toResponse())
	}

	return records, nil
}

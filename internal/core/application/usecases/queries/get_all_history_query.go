package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllHistoryQueryHandler retrieves the movement ledger across every
// cargo, newest entries first. Meant for auditing, not for dashboards.
type GetAllHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetAllHistoryQueryHandler creates a handler for full-ledger dumps.
func NewGetAllHistoryQueryHandler(db *gorm.DB) GetAllHistoryQueryHandler {
	return GetAllHistoryQueryHandler{db: db}
}

func (h GetAllHistoryQueryHandler) Handle(ctx context.Context) ([]HistoryRecordResponse, error) {
	rows := make([]historyRow, 0)
	err := h.db.WithContext(ctx).
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

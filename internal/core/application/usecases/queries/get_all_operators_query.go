package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllOperatorsQueryHandler retrieves every registered operator,
// alphabetically by name. Password hashes never leave the adapter.
type GetAllOperatorsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOperatorsQueryHandler creates a handler for operator listings.
func NewGetAllOperatorsQueryHandler(db *gorm.DB) GetAllOperatorsQueryHandler {
	return GetAllOperatorsQueryHandler{db: db}
}

func (h GetAllOperatorsQueryHandler) Handle(ctx context.Context) ([]OperatorResponse, error) {
	rows := make([]operatorRow, 0)
	err := h.db.WithContext(ctx).
		Order("name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	operators := make([]OperatorResponse, 0, len(rows))
	for _, r := range rows {
		operators = append(operators, r.toResponse())
	}

	return operators, nil
}

package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllClientsQueryHandler retrieves every registered client,
// alphabetically by name.
type GetAllClientsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllClientsQueryHandler creates a handler for client listings.
func NewGetAllClientsQueryHandler(db *gorm.DB) GetAllClientsQueryHandler {
	return GetAllClientsQueryHandler{db: db}
}

func (h GetAllClientsQueryHandler) Handle(ctx context.Context) ([]ClientResponse, error) {
	rows := make([]clientRow, 0)
	err := h.db.WithContext(ctx).
		Order("name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	clients := make([]ClientResponse, 0, len(rows))
	for _, r := range rows {
		clients = append(clients, r.toResponse())
	}

	return clients, nil
}

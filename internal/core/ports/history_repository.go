package ports

import (
	"context"

	"cargotracker/internal/core/domain/model/history"
	"cargotracker/internal/core/domain/model/kernel"
)

// HistoryRepository defines the persistence contract for the movement ledger.
// The ledger is append-only: records are never updated or deleted.
type HistoryRepository interface {
	// Add appends a record to the ledger.
	Add(ctx context.Context, aggregate *history.Record) error

	// GetByShipment retrieves all records for a shipment, newest first.
	// Records stamped at the same instant keep their insertion order.
	GetByShipment(ctx context.Context, shipmentID kernel.UUID) ([]*history.Record, error)

	// GetAll retrieves the whole ledger, newest first.
	GetAll(ctx context.Context) ([]*history.Record, error)
}

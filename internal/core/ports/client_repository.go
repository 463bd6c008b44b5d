package ports

import (
	"context"

	"cargotracker/internal/core/domain/model/client"
	"cargotracker/internal/core/domain/model/kernel"
)

// ClientRepository defines the persistence contract for client aggregates.
type ClientRepository interface {
	// Add persists a new client aggregate to storage.
	Add(ctx context.Context, aggregate *client.Client) error

	// Update persists changes to an existing client aggregate.
	Update(ctx context.Context, aggregate *client.Client) error

	// Get retrieves a client aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*client.Client, error)

	// GetAll retrieves all registered clients.
	GetAll(ctx context.Context) ([]*client.Client, error)
}

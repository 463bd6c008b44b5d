package ports

import (
	"context"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/operator"
)

// OperatorRepository defines the persistence contract for operator
// aggregates.
type OperatorRepository interface {
	// Add persists a new operator aggregate to storage.
	Add(ctx context.Context, aggregate *operator.Operator) error

	// Update persists changes to an existing operator aggregate.
	Update(ctx context.Context, aggregate *operator.Operator) error

	// Get retrieves an operator aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*operator.Operator, error)

	// GetByEmail retrieves an operator aggregate by its login email.
	// Used by authentication and to enforce email uniqueness.
	GetByEmail(ctx context.Context, email string) (*operator.Operator, error)

	// GetAll retrieves all registered operators.
	GetAll(ctx context.Context) ([]*operator.Operator, error)
}

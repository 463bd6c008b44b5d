// Package operatorrepo provides data transfer objects and mapping functions
// for operator persistence. Operators double as authentication principals,
// so the table carries the password hash and role alongside contact data.
package operatorrepo

import (
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/operator"

	"github.com/google/uuid"
)

// OperatorDTO represents the database structure for persisting operator
// aggregates. Email is unique because it is the login identifier.
type OperatorDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(32);not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "operators".
func (OperatorDTO) TableName() string {
	return "operators"
}

func fromDomain(aggregate *operator.Operator) OperatorDTO {
	return OperatorDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Email:        aggregate.Email(),
		PasswordHash: aggregate.PasswordHash(),
		Role:         aggregate.Role().String(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
	}
}

func toDomain(dto OperatorDTO) (*operator.Operator, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return operator.RestoreOperator(
		id,
		dto.Name,
		dto.Email,
		dto.PasswordHash,
		operator.Role(dto.Role),
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

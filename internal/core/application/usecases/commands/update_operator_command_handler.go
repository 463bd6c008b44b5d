package commands

import (
	"context"

	"cargotracker/internal/core/domain/model/operator"
	"cargotracker/internal/core/ports"
)

// UpdateOperatorCommandHandler handles role and password changes for
// operator accounts.
type UpdateOperatorCommandHandler struct {
	uowFactory OperatorUoWFactory
	hasher     ports.PasswordHasher
}

// NewUpdateOperatorCommandHandler creates a handler for operator updates.
func NewUpdateOperatorCommandHandler(
	uowFactory OperatorUoWFactory,
	hasher ports.PasswordHasher,
) UpdateOperatorCommandHandler {
	return UpdateOperatorCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the update and returns the updated operator.
func (h *UpdateOperatorCommandHandler) Handle(
	ctx context.Context, cmd UpdateOperatorCommand,
) (*operator.Operator, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	operatorRepo := uow.OperatorRepository()
	aggregate, err := operatorRepo.Get(ctx, cmd.OperatorID())
	if err != nil {
		return nil, err
	}

	if cmd.Password() != "" {
		passwordHash, err := h.hasher.Hash(cmd.Password())
		if err != nil {
			return nil, err
		}
		if err = aggregate.ChangePassword(passwordHash); err != nil {
			return nil, err
		}
	}

	if cmd.Role() != "" {
		if err = aggregate.Promote(cmd.Role()); err != nil {
			return nil, err
		}
	}

	if err = operatorRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

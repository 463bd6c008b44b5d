package commands

import (
	"context"
	"errors"
	"fmt"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/operator"
	"cargotracker/internal/core/ports"
	"cargotracker/internal/pkg/errs"
)

// CreateOperatorCommandHandler handles operator registration. The plaintext
// password is hashed before the aggregate is built, and login emails are
// unique across operators.
type CreateOperatorCommandHandler struct {
	uowFactory OperatorUoWFactory
	hasher     ports.PasswordHasher
}

// NewCreateOperatorCommandHandler creates a handler for operator registration.
func NewCreateOperatorCommandHandler(
	uowFactory OperatorUoWFactory,
	hasher ports.PasswordHasher,
) CreateOperatorCommandHandler {
	return CreateOperatorCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the registration and returns the new operator.
// Returns a conflict error when the email is already registered.
func (h *CreateOperatorCommandHandler) Handle(
	ctx context.Context, cmd CreateOperatorCommand,
) (*operator.Operator, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	passwordHash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	operatorRepo := uow.OperatorRepository()
	if _, err = operatorRepo.GetByEmail(ctx, cmd.Email()); err == nil {
		return nil, errs.NewConflictError(fmt.Sprintf("email %s já está em uso", cmd.Email()))
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	aggregate, err := operator.NewOperator(kernel.NewUUID(), cmd.Name(), cmd.Email(), passwordHash, cmd.Role())
	if err != nil {
		return nil, err
	}

	if err = operatorRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

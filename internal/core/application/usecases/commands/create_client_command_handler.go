package commands

import (
	"context"

	"cargotracker/internal/core/domain/model/client"
	"cargotracker/internal/core/domain/model/kernel"
)

// CreateClientCommandHandler handles client registration.
type CreateClientCommandHandler struct {
	uowFactory ClientUoWFactory
}

// NewCreateClientCommandHandler creates a handler for client registration.
func NewCreateClientCommandHandler(uowFactory ClientUoWFactory) CreateClientCommandHandler {
	return CreateClientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration and returns the new client.
func (h *CreateClientCommandHandler) Handle(
	ctx context.Context, cmd CreateClientCommand,
) (*client.Client, error) {
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

	aggregate, err := client.NewClient(kernel.NewUUID(), cmd.Name(), cmd.Email(), cmd.Phone())
	if err != nil {
		return nil, err
	}

	if err = uow.ClientRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

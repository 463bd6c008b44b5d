package commands

import (
	"errors"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

var (
	ErrUpdateClientCommandIsNotConstructed = errors.New(
		"UpdateClientCommand must be created via NewUpdateClientCommand constructor",
	)
)

// UpdateClientCommand represents a request to change a client's name or
// contact details.
type UpdateClientCommand struct { //nolint:recvcheck //using for validation
	clientID kernel.UUID
	name     string
	email    string
	phone    string

	guard guard.ConstructorGuard
}

// NewUpdateClientCommand creates a command to update a client.
func NewUpdateClientCommand(clientID kernel.UUID, name, email, phone string) (UpdateClientCommand, error) {
	cmd := UpdateClientCommand{
		email: email,
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setClientID(clientID),
		cmd.setName(name),
	); err != nil {
		return UpdateClientCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateClientCommand) Validate() error {
	return c.guard.Validate(ErrUpdateClientCommandIsNotConstructed)
}

// ClientID returns the identifier of the client to update.
func (c UpdateClientCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Name returns the new display name.
func (c UpdateClientCommand) Name() string {
	return c.name
}

// Email returns the new contact email.
func (c UpdateClientCommand) Email() string {
	return c.email
}

// Phone returns the new contact phone.
func (c UpdateClientCommand) Phone() string {
	return c.phone
}

func (c *UpdateClientCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("clienteId", err)
	}
	c.clientID = clientID
	return nil
}

func (c *UpdateClientCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("nome")
	}
	c.name = name
	return nil
}

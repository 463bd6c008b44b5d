package commands

import (
	"errors"

	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

var (
	ErrCreateClientCommandIsNotConstructed = errors.New(
		"CreateClientCommand must be created via NewCreateClientCommand constructor",
	)
)

// CreateClientCommand represents a request to register a cargo owner.
type CreateClientCommand struct { //nolint:recvcheck //using for validation
	name  string
	email string
	phone string

	guard guard.ConstructorGuard
}

// NewCreateClientCommand creates a command to register a client. Name is
// mandatory; email and phone are optional contact details.
func NewCreateClientCommand(name, email, phone string) (CreateClientCommand, error) {
	cmd := CreateClientCommand{
		email: email,
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setName(name); err != nil {
		return CreateClientCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateClientCommand) Validate() error {
	return c.guard.Validate(ErrCreateClientCommandIsNotConstructed)
}

// Name returns the client's display name.
func (c CreateClientCommand) Name() string {
	return c.name
}

// Email returns the optional contact email.
func (c CreateClientCommand) Email() string {
	return c.email
}

// Phone returns the optional contact phone.
func (c CreateClientCommand) Phone() string {
	return c.phone
}

func (c *CreateClientCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("nome")
	}
	c.name = name
	return nil
}

package commands

import (
	"errors"

	"cargotracker/internal/core/domain/model/operator"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

// minPasswordLength is the shortest password accepted for operator accounts.
const minPasswordLength = 6

var (
	ErrCreateOperatorCommandIsNotConstructed = errors.New(
		"CreateOperatorCommand must be created via NewCreateOperatorCommand constructor",
	)
)

// CreateOperatorCommand represents a request to register a logistics
// operator. Carries the plaintext password; hashing happens in the handler
// so the command can be validated without a hasher.
type CreateOperatorCommand struct { //nolint:recvcheck //using for validation
	name     string
	email    string
	password string
	role     operator.Role

	guard guard.ConstructorGuard
}

// NewCreateOperatorCommand creates a command to register an operator.
// An empty role defaults to the regular operator role.
func NewCreateOperatorCommand(name, email, password string, role operator.Role) (CreateOperatorCommand, error) {
	if role == "" {
		role = operator.RoleOperator
	}

	cmd := CreateOperatorCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setPassword(password),
		cmd.setRole(role),
	); err != nil {
		return CreateOperatorCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOperatorCommand) Validate() error {
	return c.guard.Validate(ErrCreateOperatorCommandIsNotConstructed)
}

// Name returns the operator's display name.
func (c CreateOperatorCommand) Name() string {
	return c.name
}

// Email returns the operator's login email.
func (c CreateOperatorCommand) Email() string {
	return c.email
}

// Password returns the plaintext password to hash.
func (c CreateOperatorCommand) Password() string {
	return c.password
}

// Role returns the role to grant.
func (c CreateOperatorCommand) Role() operator.Role {
	return c.role
}

func (c *CreateOperatorCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("nome")
	}
	c.name = name
	return nil
}

func (c *CreateOperatorCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *CreateOperatorCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if len(password) < minPasswordLength {
		return errs.NewValueIsInvalidError("password")
	}
	c.password = password
	return nil
}

func (c *CreateOperatorCommand) setRole(role operator.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}

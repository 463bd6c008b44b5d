package commands

import (
	"errors"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/operator"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

var (
	ErrUpdateOperatorCommandIsNotConstructed = errors.New(
		"UpdateOperatorCommand must be created via NewUpdateOperatorCommand constructor",
	)
)

// UpdateOperatorCommand represents a request to change an operator's role
// or password. Either field may be left empty to keep the current value,
// but at least one must be supplied.
type UpdateOperatorCommand struct { //nolint:recvcheck //using for validation
	operatorID kernel.UUID
	password   string
	role       operator.Role

	guard guard.ConstructorGuard
}

// NewUpdateOperatorCommand creates a command to update an operator.
func NewUpdateOperatorCommand(
	operatorID kernel.UUID, password string, role operator.Role,
) (UpdateOperatorCommand, error) {
	cmd := UpdateOperatorCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOperatorID(operatorID),
		cmd.setChanges(password, role),
	); err != nil {
		return UpdateOperatorCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOperatorCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOperatorCommandIsNotConstructed)
}

// OperatorID returns the identifier of the operator to update.
func (c UpdateOperatorCommand) OperatorID() kernel.UUID {
	return c.operatorID
}

// Password returns the new plaintext password, or "" to keep the current one.
func (c UpdateOperatorCommand) Password() string {
	return c.password
}

// Role returns the new role, or "" to keep the current one.
func (c UpdateOperatorCommand) Role() operator.Role {
	return c.role
}

func (c *UpdateOperatorCommand) setOperatorID(operatorID kernel.UUID) error {
	if err := operatorID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("operadorId", err)
	}
	c.operatorID = operatorID
	return nil
}

func (c *UpdateOperatorCommand) setChanges(password string, role operator.Role) error {
	if password == "" && role == "" {
		return errs.NewValueIsRequiredError("password or role")
	}

	if password != "" && len(password) < minPasswordLength {
		return errs.NewValueIsInvalidError("password")
	}

	if role != "" {
		if err := role.Validate(); err != nil {
			return err
		}
	}

	c.password = password
	c.role = role
	return nil
}

// Package operator contains the Operator aggregate: the logistics employee
// who registers and drives shipments through their lifecycle. Operators are
// also the system's authentication principals: they log in with email and
// password and carry a role that gates administrative endpoints.
package operator

import (
	"errors"
	"strings"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"
)

var (
	// ErrOperatorIsNotConstructed is returned when an Operator instance was
	// not created through NewOperator or RestoreOperator.
	ErrOperatorIsNotConstructed = errors.New("Operator must be created via NewOperator or RestoreOperator")
)

// Role gates what an operator may do. Admins manage operators and may cancel
// shipments; regular operators work the tracking flow.
type Role string

const (
	// RoleAdmin grants access to administrative endpoints.
	RoleAdmin Role = "ADMIN"

	// RoleOperator is the default role for logistics staff.
	RoleOperator Role = "OPERATOR"
)

// Validate checks if the Role is one of the recognized roles.
func (r Role) Validate() error {
	switch r {
	case RoleAdmin, RoleOperator:
		return nil
	default:
		return errs.NewValueIsInvalidError("role")
	}
}

// String returns the canonical string form of the role.
func (r Role) String() string {
	return string(r)
}

// Operator represents a logistics employee and authentication principal.
// The password is stored only as a hash; the aggregate never sees plaintext.
type Operator struct {
	id           kernel.UUID
	name         string
	email        string
	passwordHash string
	role         Role
	createdAt    time.Time
	updatedAt    time.Time

	isConstructed bool
}

// NewOperator creates a new Operator with validation. The passwordHash must
// already be hashed by the caller. An empty role defaults to RoleOperator.
func NewOperator(id kernel.UUID, name, email, passwordHash string, role Role) (*Operator, error) {
	if role == "" {
		role = RoleOperator
	}

	now := time.Now().UTC()
	o := &Operator{
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setName(name),
		o.setEmail(email),
		o.setPasswordHash(passwordHash),
		o.setRole(role),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOperator reconstructs an Operator from persistence.
func RestoreOperator(
	id kernel.UUID,
	name, email, passwordHash string,
	role Role,
	createdAt, updatedAt time.Time,
) (*Operator, error) {
	o := &Operator{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setName(name),
		o.setEmail(email),
		o.setPasswordHash(passwordHash),
		o.setRole(role),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Operator instance was properly constructed.
func (o *Operator) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOperatorIsNotConstructed
	}
	return nil
}

// IsEqual compares two operators by their unique identifiers.
func (o *Operator) IsEqual(other *Operator) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the operator's unique identifier.
func (o *Operator) ID() kernel.UUID {
	return o.id
}

// Name returns the operator's display name.
func (o *Operator) Name() string {
	return o.name
}

// Email returns the operator's login email, lowercased.
func (o *Operator) Email() string {
	return o.email
}

// PasswordHash returns the stored password hash for verification.
func (o *Operator) PasswordHash() string {
	return o.passwordHash
}

// Role returns the operator's role.
func (o *Operator) Role() Role {
	return o.role
}

// CreatedAt returns when the operator was registered.
func (o *Operator) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the operator last changed.
func (o *Operator) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangePassword replaces the stored password hash.
func (o *Operator) ChangePassword(passwordHash string) error {
	if err := o.setPasswordHash(passwordHash); err != nil {
		return err
	}
	o.updatedAt = time.Now().UTC()
	return nil
}

// Promote changes the operator's role.
func (o *Operator) Promote(role Role) error {
	if err := o.setRole(role); err != nil {
		return err
	}
	o.updatedAt = time.Now().UTC()
	return nil
}

func (o *Operator) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Operator) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("nome")
	}
	o.name = strings.TrimSpace(name)
	return nil
}

func (o *Operator) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	o.email = email
	return nil
}

func (o *Operator) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	o.passwordHash = passwordHash
	return nil
}

func (o *Operator) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	o.role = role
	return nil
}

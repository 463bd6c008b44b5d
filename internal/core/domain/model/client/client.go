// Package client contains the Client aggregate: the party that owns the
// cargo being tracked. Clients are reference data; shipments point at them
// by identifier and registration fails when the client does not exist.
package client

import (
	"errors"
	"strings"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"
)

var (
	// ErrClientIsNotConstructed is returned when a Client instance was not
	// created through NewClient or RestoreClient.
	ErrClientIsNotConstructed = errors.New("Client must be created via NewClient or RestoreClient")
)

// Client represents a cargo owner. Name is mandatory; email and phone are
// optional contact details.
type Client struct {
	id        kernel.UUID
	name      string
	email     string
	phone     string
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewClient creates a new Client with validation.
func NewClient(id kernel.UUID, name, email, phone string) (*Client, error) {
	now := time.Now().UTC()
	c := &Client{
		email:         strings.TrimSpace(email),
		phone:         strings.TrimSpace(phone),
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreClient reconstructs a Client from persistence.
func RestoreClient(id kernel.UUID, name, email, phone string, createdAt, updatedAt time.Time) (*Client, error) {
	c := &Client{
		email:         email,
		phone:         phone,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Client instance was properly constructed.
func (c *Client) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrClientIsNotConstructed
	}
	return nil
}

// IsEqual compares two clients by their unique identifiers.
func (c *Client) IsEqual(other *Client) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the client's unique identifier.
func (c *Client) ID() kernel.UUID {
	return c.id
}

// Name returns the client's display name.
func (c *Client) Name() string {
	return c.name
}

// Email returns the client's contact email, or "" when none was given.
func (c *Client) Email() string {
	return c.email
}

// Phone returns the client's contact phone, or "" when none was given.
func (c *Client) Phone() string {
	return c.phone
}

// CreatedAt returns when the client was registered.
func (c *Client) CreatedAt() time.Time {
	return c.createdAt
}

// UpdatedAt returns when the client last changed.
func (c *Client) UpdatedAt() time.Time {
	return c.updatedAt
}

// Rename updates the client's contact details. Empty email or phone clears
// the corresponding field; a blank name is rejected.
func (c *Client) Rename(name, email, phone string) error {
	if err := c.setName(name); err != nil {
		return err
	}

	c.email = strings.TrimSpace(email)
	c.phone = strings.TrimSpace(phone)
	c.updatedAt = time.Now().UTC()
	return nil
}

func (c *Client) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Client) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("nome")
	}
	c.name = strings.TrimSpace(name)
	return nil
}

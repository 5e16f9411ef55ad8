// Package client provides the Client aggregate root.
//
// A client's aggregate counters (total packages, total spent) are derived
// values: they are always computed from the client's shipments and invoices at
// read time, never stored or set on the aggregate. This keeps the registry free
// of dual-bookkeeping invariants that could drift apart.
package client

import (
	"errors"
	"fmt"

	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/pkg/errs"
	"courierdesk/internal/pkg/guard"
)

// ErrClientIsNotConstructed is returned when using an improperly initialized Client.
var ErrClientIsNotConstructed = errors.New("Client must be created via NewClient constructor")

// Client represents a customer account that registers shipments and receives invoices.
type Client struct {
	id      kernel.UUID
	contact kernel.Contact
	status  Status
	version int
	guard   guard.ConstructorGuard
}

// NewClient creates a Client in PendingApproval status.
func NewClient(id kernel.UUID, contact kernel.Contact) (*Client, error) {
	c := &Client{
		status:  PendingApproval,
		version: 1,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setContact(contact),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreClient reconstructs a Client from persistent storage.
func RestoreClient(id kernel.UUID, contact kernel.Contact, status Status, version int) (*Client, error) {
	if err := errors.Join(
		id.Validate(),
		contact.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if version < 1 {
		return nil, errs.NewVersionIsInvalidError("client version", fmt.Errorf("%d is not a positive version", version))
	}

	return &Client{
		id:      id,
		contact: contact,
		status:  status,
		version: version,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Client instance was properly constructed.
func (c *Client) Validate() error {
	if c == nil {
		return ErrClientIsNotConstructed
	}
	return c.guard.Validate(ErrClientIsNotConstructed)
}

// IsEqual compares two clients by their unique identifiers.
func (c *Client) IsEqual(other *Client) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the client's unique identifier.
func (c *Client) ID() kernel.UUID {
	return c.id
}

// Contact returns the client's contact details.
func (c *Client) Contact() kernel.Contact {
	return c.contact
}

// Status returns the client's account status.
func (c *Client) Status() Status {
	return c.status
}

// Version returns the optimistic-concurrency version stamp.
func (c *Client) Version() int {
	return c.version
}

// BumpVersion advances the version stamp. Called by repositories after a
// successful compare-and-swap commit.
func (c *Client) BumpVersion() {
	c.version++
}

// SetStatus moves the client to the given account status.
func (c *Client) SetStatus(status Status) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *Client) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Client) setContact(contact kernel.Contact) error {
	if err := contact.Validate(); err != nil {
		return err
	}
	c.contact = contact
	return nil
}

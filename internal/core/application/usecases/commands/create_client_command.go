package commands

import (
	"errors"

	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/pkg/guard"
)

var ErrCreateClientCommandIsNotConstructed = errors.New(
	"CreateClientCommand must be created via NewCreateClientCommand constructor",
)

// CreateClientCommand represents a request to register a new client account.
// New clients start in "pending" status until approved.
type CreateClientCommand struct { //nolint:recvcheck //using for validation
	clientID kernel.UUID
	contact  kernel.Contact

	guard guard.ConstructorGuard
}

// NewCreateClientCommand creates a command to register a new client.
// Automatically generates a unique ID for the client.
func NewCreateClientCommand(contact kernel.Contact) (CreateClientCommand, error) {
	if err := contact.Validate(); err != nil {
		return CreateClientCommand{}, err
	}

	return CreateClientCommand{
		clientID: kernel.NewUUID(),
		contact:  contact,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateClientCommand) Validate() error {
	return c.guard.Validate(ErrCreateClientCommandIsNotConstructed)
}

// ClientID returns the generated identifier for the new client.
func (c CreateClientCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Contact returns the client's contact details.
func (c CreateClientCommand) Contact() kernel.Contact {
	return c.contact
}

package commands

import (
	"errors"

	"courierdesk/internal/core/domain/model/client"
	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/pkg/guard"
)

var ErrSetClientStatusCommandIsNotConstructed = errors.New(
	"SetClientStatusCommand must be created via NewSetClientStatusCommand constructor",
)

// SetClientStatusCommand represents a back-office decision on a client
// account: approving a pending registration or deactivating an account.
type SetClientStatusCommand struct { //nolint:recvcheck //using for validation
	clientID kernel.UUID
	status   client.Status

	guard guard.ConstructorGuard
}

// NewSetClientStatusCommand creates a command to change a client's account status.
func NewSetClientStatusCommand(clientID kernel.UUID, status client.Status) (SetClientStatusCommand, error) {
	if err := errors.Join(
		clientID.Validate(),
		status.Validate(),
	); err != nil {
		return SetClientStatusCommand{}, err
	}

	return SetClientStatusCommand{
		clientID: clientID,
		status:   status,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetClientStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetClientStatusCommandIsNotConstructed)
}

// ClientID returns the client whose account status changes.
func (c SetClientStatusCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Status returns the new account status.
func (c SetClientStatusCommand) Status() client.Status {
	return c.status
}

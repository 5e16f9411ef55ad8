package commands

import (
	"errors"

	"courierdesk/internal/core/domain/model/courier"
	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/pkg/guard"
)

var ErrSetCourierStatusCommandIsNotConstructed = errors.New(
	"SetCourierStatusCommand must be created via NewSetCourierStatusCommand constructor",
)

// SetCourierStatusCommand represents a courier availability change:
// going on shift, picking up a route, or going offline.
type SetCourierStatusCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	status    courier.Status

	guard guard.ConstructorGuard
}

// NewSetCourierStatusCommand creates a command to change a courier's
// availability status.
func NewSetCourierStatusCommand(courierID kernel.UUID, status courier.Status) (SetCourierStatusCommand, error) {
	if err := errors.Join(
		courierID.Validate(),
		status.Validate(),
	); err != nil {
		return SetCourierStatusCommand{}, err
	}

	return SetCourierStatusCommand{
		courierID: courierID,
		status:    status,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetCourierStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetCourierStatusCommandIsNotConstructed)
}

// CourierID returns the courier whose status changes.
func (c SetCourierStatusCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Status returns the new availability status.
func (c SetCourierStatusCommand) Status() courier.Status {
	return c.status
}

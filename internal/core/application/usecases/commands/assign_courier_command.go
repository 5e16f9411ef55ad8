package commands

import (
	"errors"

	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/pkg/guard"
)

var ErrAssignCourierCommandIsNotConstructed = errors.New(
	"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
)

// AssignCourierCommand represents a dispatcher explicitly assigning a chosen
// courier to a shipment. Availability rules are enforced by the assignment
// service: offline couriers are rejected.
//
// Example:
//
//	cmd, _ := NewAssignCourierCommand(shipmentID, courierID)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrCourierUnavailable) {
//	    log.Printf("courier is offline: %v", err)
//	}
type AssignCourierCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	courierID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignCourierCommand creates a command to assign a specific courier to a
// specific shipment.
func NewAssignCourierCommand(shipmentID kernel.UUID, courierID kernel.UUID) (AssignCourierCommand, error) {
	if err := errors.Join(
		shipmentID.Validate(),
		courierID.Validate(),
	); err != nil {
		return AssignCourierCommand{}, err
	}

	return AssignCourierCommand{
		shipmentID: shipmentID,
		courierID:  courierID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierCommandIsNotConstructed)
}

// ShipmentID returns the shipment to assign.
func (c AssignCourierCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// CourierID returns the chosen courier.
func (c AssignCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

package commands

import (
	"errors"

	"courierdesk/internal/pkg/guard"
)

var ErrDispatchPendingCommandIsNotConstructed = errors.New(
	"DispatchPendingCommand must be created via NewDispatchPendingCommand constructor",
)

// DispatchPendingCommand triggers automatic assignment of pending shipments
// to available couriers. Each pending shipment is matched with the assignable
// courier carrying the lightest active workload.
//
// Example:
//
//	cmd := NewDispatchPendingCommand()
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrNoPendingShipments) {
//	    log.Println("nothing to dispatch")
//	}
type DispatchPendingCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchPendingCommand creates a new command to trigger the dispatch sweep.
func NewDispatchPendingCommand() DispatchPendingCommand {
	return DispatchPendingCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *DispatchPendingCommand) Validate() error {
	return c.guard.Validate(ErrDispatchPendingCommandIsNotConstructed)
}

package commands

import (
	"context"

	"courierdesk/internal/core/domain/services"
)

// AssignCourierCommandHandler assigns a specific courier to a specific
// shipment. The assignment service guards courier availability; the shipment
// aggregate guards its own lifecycle.
type AssignCourierCommandHandler struct {
	uowFactory AssignmentUoWFactory
	assignment services.CourierAssignmentService
}

// NewAssignCourierCommandHandler creates a handler for explicit courier
// assignment.
func NewAssignCourierCommandHandler(uowFactory AssignmentUoWFactory) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
		assignment: services.NewCourierAssignmentService(),
	}
}

// Handle processes the assignment command.
// Returns errs.CourierUnavailableError when the courier is offline; the
// shipment is left untouched on any failure.
func (h *AssignCourierCommandHandler) Handle(ctx context.Context, cmd AssignCourierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	shp, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	courier, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	if err = h.assignment.Assign(shp, courier); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, shp); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

package commands

import (
	"context"
	"errors"

	"courierdesk/internal/core/domain/services"
)

var (
	ErrNoPendingShipments  = errors.New("no pending shipments found")
	ErrNoFreeCouriersFound = errors.New("no free couriers found")
)

// DispatchPendingCommandHandler runs the automatic assignment sweep.
// For every pending shipment it derives each courier's active workload by a
// reverse lookup over shipments, then delegates the choice to the assignment
// service.
type DispatchPendingCommandHandler struct {
	uowFactory AssignmentUoWFactory
	assignment services.CourierAssignmentService
}

// NewDispatchPendingCommandHandler creates a handler for the dispatch sweep.
func NewDispatchPendingCommandHandler(uowFactory AssignmentUoWFactory) DispatchPendingCommandHandler {
	return DispatchPendingCommandHandler{
		uowFactory: uowFactory,
		assignment: services.NewCourierAssignmentService(),
	}
}

// Handle processes the dispatch sweep command.
// Assigns as many pending shipments as possible in one transaction. Returns
// ErrNoPendingShipments when the backlog is empty and ErrNoFreeCouriersFound
// when no courier is assignable.
func (h *DispatchPendingCommandHandler) Handle(ctx context.Context, cmd DispatchPendingCommand) error {
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
	courierRepo := uow.CourierRepository()

	pending, err := shipmentRepo.GetAllInPendingStatus(ctx)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return ErrNoPendingShipments
	}

	couriers, err := courierRepo.GetAllAssignable(ctx)
	if err != nil {
		return err
	}
	if len(couriers) == 0 {
		return ErrNoFreeCouriersFound
	}

	workload := make(map[string]int, len(couriers))
	for _, c := range couriers {
		assigned, lookupErr := shipmentRepo.GetAllAssignedTo(ctx, c.ID())
		if lookupErr != nil {
			return lookupErr
		}
		workload[c.ID().String()] = len(assigned)
	}

	for _, shp := range pending {
		assigned, dispatchErr := h.assignment.Dispatch(shp, couriers, workload)
		if errors.Is(dispatchErr, services.ErrNoCourierCandidates) {
			break
		}
		if dispatchErr != nil {
			return dispatchErr
		}

		workload[assigned.ID().String()]++

		if err = shipmentRepo.Update(ctx, shp); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

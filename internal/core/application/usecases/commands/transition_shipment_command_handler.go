package commands

import (
	"context"

	"courierdesk/internal/core/domain/model/shipment"
)

// TransitionShipmentCommandHandler advances shipments through their lifecycle.
// Every successful transition appends a tracking event to the timeline; the
// status machine itself lives in the shipment aggregate.
type TransitionShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewTransitionShipmentCommandHandler creates a handler for status transitions.
func NewTransitionShipmentCommandHandler(uowFactory ShipmentUoWFactory) TransitionShipmentCommandHandler {
	return TransitionShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition command.
// Returns errs.IllegalTransitionError when the status machine forbids the
// move and errs.OutOfOrderEventError when the event timestamp precedes the
// timeline's last entry. Requesting the current status is a no-op.
func (h *TransitionShipmentCommandHandler) Handle(ctx context.Context, cmd TransitionShipmentCommand) error {
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

	if shp.Status() == cmd.Target() {
		return nil
	}

	event, err := shipment.NewTrackingEvent(
		cmd.Target(),
		cmd.Location(),
		cmd.Description(),
		cmd.OccurredAt(),
		cmd.CourierName(),
	)
	if err != nil {
		return err
	}

	if err = shp.TransitionTo(cmd.Target(), event); err != nil {
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

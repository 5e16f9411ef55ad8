package commands

import (
	"context"

	"courierdesk/internal/core/domain/model/shipment"
)

// AppendTrackingEventCommandHandler records status-preserving timeline
// annotations. The event carries the shipment's current status; timestamps
// must not run backwards.
type AppendTrackingEventCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewAppendTrackingEventCommandHandler creates a handler for timeline annotations.
func NewAppendTrackingEventCommandHandler(uowFactory ShipmentUoWFactory) AppendTrackingEventCommandHandler {
	return AppendTrackingEventCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the annotation command.
// Returns errs.OutOfOrderEventError when the event timestamp precedes the
// timeline's last entry; ordering is enforced by the aggregate.
func (h *AppendTrackingEventCommandHandler) Handle(ctx context.Context, cmd AppendTrackingEventCommand) error {
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

	event, err := shipment.NewTrackingEvent(
		shp.Status(),
		cmd.Location(),
		cmd.Description(),
		cmd.OccurredAt(),
		cmd.CourierName(),
	)
	if err != nil {
		return err
	}

	if err = shp.AppendEvent(event); err != nil {
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

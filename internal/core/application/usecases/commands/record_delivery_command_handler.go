package commands

import (
	"context"
	"errors"
	"fmt"

	"courierdesk/internal/core/domain/model/shipment"
	"courierdesk/internal/pkg/errs"
)

var ErrShipmentIsNotDelivered = errors.New("shipment is not delivered")

// RecordDeliveryCommandHandler credits completed deliveries to couriers.
// The shipment must already be in "delivered" status with an assigned courier;
// the courier's delivery count, rating average and monthly earnings advance
// together.
type RecordDeliveryCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewRecordDeliveryCommandHandler creates a handler for delivery crediting.
func NewRecordDeliveryCommandHandler(uowFactory AssignmentUoWFactory) RecordDeliveryCommandHandler {
	return RecordDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery crediting command.
// Returns ErrShipmentIsNotDelivered if the shipment has not reached
// "delivered" status yet.
func (h *RecordDeliveryCommandHandler) Handle(ctx context.Context, cmd RecordDeliveryCommand) error {
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

	shp, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if shp.Status() != shipment.Delivered {
		return fmt.Errorf("%w: shipment %s is %s", ErrShipmentIsNotDelivered, shp.ID(), shp.Status())
	}
	if shp.Courier() == nil {
		return errs.NewValueIsRequiredError("courierID")
	}

	courierRepo := uow.CourierRepository()
	c, err := courierRepo.Get(ctx, *shp.Courier())
	if err != nil {
		return err
	}

	if err = c.RecordDelivery(cmd.Fee(), cmd.Rating()); err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, c); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

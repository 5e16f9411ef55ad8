package commands

import (
	"context"
	"errors"

	"courierdesk/internal/core/domain/model/shipment"
	"courierdesk/internal/pkg/errs"
)

// CreateShipmentCommandHandler handles the business logic for shipment
// registration. New shipments start in "pending" status with a tracking code
// derived from the shipment identifier.
//
// Example:
//
//	handler := NewCreateShipmentCommandHandler(uowFactory)
//	cmd, _ := NewCreateShipmentCommand(shipmentID, clientID, sender, recipient,
//	    2.5, dims, declared, shipment.Standard, shipment.Normal, time.Now())
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("shipment registration failed: %w", err)
//	}
//	// Shipment is now pending and ready for courier assignment
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentClientUoWFactory
}

// NewCreateShipmentCommandHandler creates a handler for shipment registration.
// Requires a ShipmentClientUoWFactory for transactional persistence.
func NewCreateShipmentCommandHandler(uowFactory ShipmentClientUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment registration command.
// Verifies the owning client exists, then persists the new shipment.
// Re-submitting an already registered shipment ID is a no-op.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
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

	if _, err := uow.ClientRepository().Get(ctx, cmd.ClientID()); err != nil {
		return err
	}

	_, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err == nil {
		return nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	shp, err := shipment.NewShipment(
		cmd.ShipmentID(),
		shipment.NewTrackingCode(cmd.ShipmentID()),
		cmd.ClientID(),
		cmd.Sender(),
		cmd.Recipient(),
		cmd.Weight(),
		cmd.Dimensions(),
		cmd.DeclaredValue(),
		cmd.ServiceTier(),
		cmd.Priority(),
		cmd.CreatedAt(),
	)
	if err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Add(ctx, shp); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

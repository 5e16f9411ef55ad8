package commands

import (
	"context"
)

// SetCourierStatusCommandHandler records courier availability changes.
// Couriers move freely between available, busy and offline; pending
// assignments are unaffected until the next dispatch sweep.
type SetCourierStatusCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewSetCourierStatusCommandHandler creates a handler for availability changes.
func NewSetCourierStatusCommandHandler(uowFactory CourierUoWFactory) SetCourierStatusCommandHandler {
	return SetCourierStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
func (h *SetCourierStatusCommandHandler) Handle(ctx context.Context, cmd SetCourierStatusCommand) error {
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

	courierRepo := uow.CourierRepository()
	c, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	if err = c.SetStatus(cmd.Status()); err != nil {
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

package commands

import (
	"context"
)

// SetClientStatusCommandHandler records client account status changes.
type SetClientStatusCommandHandler struct {
	uowFactory ClientUoWFactory
}

// NewSetClientStatusCommandHandler creates a handler for account status changes.
func NewSetClientStatusCommandHandler(uowFactory ClientUoWFactory) SetClientStatusCommandHandler {
	return SetClientStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the account status change command.
func (h *SetClientStatusCommandHandler) Handle(ctx context.Context, cmd SetClientStatusCommand) error {
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

	clientRepo := uow.ClientRepository()
	c, err := clientRepo.Get(ctx, cmd.ClientID())
	if err != nil {
		return err
	}

	if err = c.SetStatus(cmd.Status()); err != nil {
		return err
	}

	if err = clientRepo.Update(ctx, c); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

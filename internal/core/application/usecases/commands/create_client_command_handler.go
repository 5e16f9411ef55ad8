package commands

import (
	"context"

	"courierdesk/internal/core/domain/model/client"
)

// CreateClientCommandHandler handles client account registration.
type CreateClientCommandHandler struct {
	uowFactory ClientUoWFactory
}

// NewCreateClientCommandHandler creates a handler for client registration.
func NewCreateClientCommandHandler(uowFactory ClientUoWFactory) CreateClientCommandHandler {
	return CreateClientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the client registration command.
func (h *CreateClientCommandHandler) Handle(ctx context.Context, cmd CreateClientCommand) error {
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

	newClient, err := client.NewClient(cmd.ClientID(), cmd.Contact())
	if err != nil {
		return err
	}

	if err = uow.ClientRepository().Add(ctx, newClient); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

package commands

import (
	"context"

	"courierdesk/internal/core/domain/model/invoice"
)

// CreateInvoiceCommandHandler opens draft invoices. The billed client must
// exist; initial line items are appended while the invoice is still a draft.
type CreateInvoiceCommandHandler struct {
	uowFactory InvoiceClientUoWFactory
}

// NewCreateInvoiceCommandHandler creates a handler for invoice creation.
func NewCreateInvoiceCommandHandler(uowFactory InvoiceClientUoWFactory) CreateInvoiceCommandHandler {
	return CreateInvoiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the invoice creation command.
func (h *CreateInvoiceCommandHandler) Handle(ctx context.Context, cmd CreateInvoiceCommand) error {
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

	inv, err := invoice.NewInvoice(cmd.InvoiceID(), cmd.ClientID(), cmd.IssuedAt(), cmd.DueAt())
	if err != nil {
		return err
	}

	for _, line := range cmd.Lines() {
		if err = inv.AddLine(line); err != nil {
			return err
		}
	}

	if err = uow.InvoiceRepository().Add(ctx, inv); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

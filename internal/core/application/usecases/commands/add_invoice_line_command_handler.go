package commands

import (
	"context"
)

// AddInvoiceLineCommandHandler appends line items to draft invoices.
type AddInvoiceLineCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewAddInvoiceLineCommandHandler creates a handler for line additions.
func NewAddInvoiceLineCommandHandler(uowFactory InvoiceUoWFactory) AddInvoiceLineCommandHandler {
	return AddInvoiceLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the line addition command.
// Returns errs.InvoiceLockedError when the invoice is no longer a draft.
func (h *AddInvoiceLineCommandHandler) Handle(ctx context.Context, cmd AddInvoiceLineCommand) error {
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

	invoiceRepo := uow.InvoiceRepository()
	inv, err := invoiceRepo.Get(ctx, cmd.InvoiceID())
	if err != nil {
		return err
	}

	if err = inv.AddLine(cmd.Line()); err != nil {
		return err
	}

	if err = invoiceRepo.Update(ctx, inv); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

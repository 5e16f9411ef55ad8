package commands

import (
	"context"
)

// RemoveInvoiceLineCommandHandler deletes line items from draft invoices.
type RemoveInvoiceLineCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewRemoveInvoiceLineCommandHandler creates a handler for line removals.
func NewRemoveInvoiceLineCommandHandler(uowFactory InvoiceUoWFactory) RemoveInvoiceLineCommandHandler {
	return RemoveInvoiceLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the line removal command.
// Returns errs.InvoiceLockedError when the invoice is no longer a draft and
// errs.ValueIsOutOfRangeError when the index is outside the line list.
func (h *RemoveInvoiceLineCommandHandler) Handle(ctx context.Context, cmd RemoveInvoiceLineCommand) error {
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

	if err = inv.RemoveLine(cmd.Index()); err != nil {
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

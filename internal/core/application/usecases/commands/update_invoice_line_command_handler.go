package commands

import (
	"context"
)

// UpdateInvoiceLineCommandHandler replaces line items on draft invoices.
type UpdateInvoiceLineCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewUpdateInvoiceLineCommandHandler creates a handler for line replacements.
func NewUpdateInvoiceLineCommandHandler(uowFactory InvoiceUoWFactory) UpdateInvoiceLineCommandHandler {
	return UpdateInvoiceLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the line replacement command.
// Returns errs.InvoiceLockedError when the invoice is no longer a draft and
// errs.ValueIsOutOfRangeError when the index is outside the line list.
func (h *UpdateInvoiceLineCommandHandler) Handle(ctx context.Context, cmd UpdateInvoiceLineCommand) error {
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

	if err = inv.UpdateLine(cmd.Index(), cmd.Line()); err != nil {
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

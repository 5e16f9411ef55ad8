package commands

import (
	"context"

	"courierdesk/internal/core/domain/model/invoice"
	"courierdesk/internal/pkg/errs"
)

// TransitionInvoiceCommandHandler advances invoices through their billing
// lifecycle. The status machine lives in the invoice aggregate; registering
// payment on an already-paid invoice is a no-op.
type TransitionInvoiceCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewTransitionInvoiceCommandHandler creates a handler for invoice transitions.
func NewTransitionInvoiceCommandHandler(uowFactory InvoiceUoWFactory) TransitionInvoiceCommandHandler {
	return TransitionInvoiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the invoice transition command.
// Returns errs.IllegalTransitionError when the billing machine forbids the move.
func (h *TransitionInvoiceCommandHandler) Handle(ctx context.Context, cmd TransitionInvoiceCommand) error {
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

	switch cmd.Target() {
	case invoice.Sent:
		err = inv.MarkSent()
	case invoice.Paid:
		err = inv.MarkPaid(cmd.OccurredAt())
	case invoice.Overdue:
		err = inv.MarkOverdue(cmd.OccurredAt())
	case invoice.Cancelled:
		err = inv.Cancel()
	default:
		err = errs.NewValueIsInvalidError("target")
	}
	if err != nil {
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

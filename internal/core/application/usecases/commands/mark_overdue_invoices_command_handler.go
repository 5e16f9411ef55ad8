package commands

import (
	"context"
)

// MarkOverdueInvoicesCommandHandler runs the overdue invoice sweep.
// Sent invoices past their payment deadline are flagged overdue in one
// transaction.
type MarkOverdueInvoicesCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewMarkOverdueInvoicesCommandHandler creates a handler for the overdue sweep.
func NewMarkOverdueInvoicesCommandHandler(uowFactory InvoiceUoWFactory) MarkOverdueInvoicesCommandHandler {
	return MarkOverdueInvoicesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the overdue sweep command.
func (h *MarkOverdueInvoicesCommandHandler) Handle(ctx context.Context, cmd MarkOverdueInvoicesCommand) error {
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
	overdue, err := invoiceRepo.GetAllSentPastDue(ctx, cmd.AsOf())
	if err != nil {
		return err
	}

	for _, inv := range overdue {
		if err = inv.MarkOverdue(cmd.AsOf()); err != nil {
			return err
		}
		if err = invoiceRepo.Update(ctx, inv); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

package commands

import (
	"errors"

	"courierdesk/internal/core/domain/model/invoice"
	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/pkg/guard"
)

var ErrAddInvoiceLineCommandIsNotConstructed = errors.New(
	"AddInvoiceLineCommand must be created via NewAddInvoiceLineCommand constructor",
)

// AddInvoiceLineCommand represents a request to append a line item to a draft
// invoice. Invoices past draft status reject edits.
type AddInvoiceLineCommand struct { //nolint:recvcheck //using for validation
	invoiceID kernel.UUID
	line      invoice.LineItem

	guard guard.ConstructorGuard
}

// NewAddInvoiceLineCommand creates a command to append a line item.
func NewAddInvoiceLineCommand(invoiceID kernel.UUID, line invoice.LineItem) (AddInvoiceLineCommand, error) {
	if err := errors.Join(
		invoiceID.Validate(),
		line.Validate(),
	); err != nil {
		return AddInvoiceLineCommand{}, err
	}

	return AddInvoiceLineCommand{
		invoiceID: invoiceID,
		line:      line,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddInvoiceLineCommand) Validate() error {
	return c.guard.Validate(ErrAddInvoiceLineCommandIsNotConstructed)
}

// InvoiceID returns the invoice to edit.
func (c AddInvoiceLineCommand) InvoiceID() kernel.UUID {
	return c.invoiceID
}

// Line returns the line item to append.
func (c AddInvoiceLineCommand) Line() invoice.LineItem {
	return c.line
}

package commands

import (
	"errors"

	"courierdesk/internal/core/domain/model/invoice"
	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/pkg/errs"
	"courierdesk/internal/pkg/guard"
)

var ErrUpdateInvoiceLineCommandIsNotConstructed = errors.New(
	"UpdateInvoiceLineCommand must be created via NewUpdateInvoiceLineCommand constructor",
)

// UpdateInvoiceLineCommand represents a request to replace a line item on a
// draft invoice at a given position.
type UpdateInvoiceLineCommand struct { //nolint:recvcheck //using for validation
	invoiceID kernel.UUID
	index     int
	line      invoice.LineItem

	guard guard.ConstructorGuard
}

// NewUpdateInvoiceLineCommand creates a command to replace a line item.
// Index is zero-based; the invoice aggregate enforces the upper bound.
func NewUpdateInvoiceLineCommand(
	invoiceID kernel.UUID,
	index int,
	line invoice.LineItem,
) (UpdateInvoiceLineCommand, error) {
	if err := errors.Join(
		invoiceID.Validate(),
		line.Validate(),
	); err != nil {
		return UpdateInvoiceLineCommand{}, err
	}
	if index < 0 {
		return UpdateInvoiceLineCommand{}, errs.NewValueIsInvalidError("index")
	}

	return UpdateInvoiceLineCommand{
		invoiceID: invoiceID,
		index:     index,
		line:      line,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateInvoiceLineCommand) Validate() error {
	return c.guard.Validate(ErrUpdateInvoiceLineCommandIsNotConstructed)
}

// InvoiceID returns the invoice to edit.
func (c UpdateInvoiceLineCommand) InvoiceID() kernel.UUID {
	return c.invoiceID
}

// Index returns the zero-based position of the line to replace.
func (c UpdateInvoiceLineCommand) Index() int {
	return c.index
}

// Line returns the replacement line item.
func (c UpdateInvoiceLineCommand) Line() invoice.LineItem {
	return c.line
}

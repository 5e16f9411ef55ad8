package commands

import (
	"errors"

	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/pkg/errs"
	"courierdesk/internal/pkg/guard"
)

var ErrRemoveInvoiceLineCommandIsNotConstructed = errors.New(
	"RemoveInvoiceLineCommand must be created via NewRemoveInvoiceLineCommand constructor",
)

// RemoveInvoiceLineCommand represents a request to delete a line item from a
// draft invoice at a given position.
type RemoveInvoiceLineCommand struct { //nolint:recvcheck //using for validation
	invoiceID kernel.UUID
	index     int

	guard guard.ConstructorGuard
}

// NewRemoveInvoiceLineCommand creates a command to delete a line item.
// Index is zero-based; the invoice aggregate enforces the upper bound.
func NewRemoveInvoiceLineCommand(invoiceID kernel.UUID, index int) (RemoveInvoiceLineCommand, error) {
	if err := invoiceID.Validate(); err != nil {
		return RemoveInvoiceLineCommand{}, err
	}
	if index < 0 {
		return RemoveInvoiceLineCommand{}, errs.NewValueIsInvalidError("index")
	}

	return RemoveInvoiceLineCommand{
		invoiceID: invoiceID,
		index:     index,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveInvoiceLineCommand) Validate() error {
	return c.guard.Validate(ErrRemoveInvoiceLineCommandIsNotConstructed)
}

// InvoiceID returns the invoice to edit.
func (c RemoveInvoiceLineCommand) InvoiceID() kernel.UUID {
	return c.invoiceID
}

// Index returns the zero-based position of the line to delete.
func (c RemoveInvoiceLineCommand) Index() int {
	return c.index
}

package commands

import (
	"errors"
	"time"

	"courierdesk/internal/core/domain/model/invoice"
	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/pkg/errs"
	"courierdesk/internal/pkg/guard"
)

var ErrCreateInvoiceCommandIsNotConstructed = errors.New(
	"CreateInvoiceCommand must be created via NewCreateInvoiceCommand constructor",
)

// CreateInvoiceCommand represents a request to open a draft invoice for a
// client, optionally seeded with initial line items.
//
// Example:
//
//	line, _ := invoice.NewLineItem("Express delivery", 2, price)
//	cmd, err := NewCreateInvoiceCommand(clientID, issuedAt, dueAt, []invoice.LineItem{line})
//	if err != nil {
//	    return fmt.Errorf("invalid invoice data: %w", err)
//	}
type CreateInvoiceCommand struct { //nolint:recvcheck //using for validation
	invoiceID kernel.UUID
	clientID  kernel.UUID
	issuedAt  time.Time
	dueAt     time.Time
	lines     []invoice.LineItem

	guard guard.ConstructorGuard
}

// NewCreateInvoiceCommand creates a command to open a draft invoice.
// Automatically generates a unique ID for the invoice. dueAt must not precede
// issuedAt.
func NewCreateInvoiceCommand(
	clientID kernel.UUID,
	issuedAt time.Time,
	dueAt time.Time,
	lines []invoice.LineItem,
) (CreateInvoiceCommand, error) {
	if err := clientID.Validate(); err != nil {
		return CreateInvoiceCommand{}, err
	}
	if issuedAt.IsZero() {
		return CreateInvoiceCommand{}, errs.NewValueIsRequiredError("issuedAt")
	}
	if dueAt.Before(issuedAt) {
		return CreateInvoiceCommand{}, errs.NewValueIsInvalidError("dueAt")
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return CreateInvoiceCommand{}, err
		}
	}

	return CreateInvoiceCommand{
		invoiceID: kernel.NewUUID(),
		clientID:  clientID,
		issuedAt:  issuedAt,
		dueAt:     dueAt,
		lines:     lines,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrCreateInvoiceCommandIsNotConstructed)
}

// InvoiceID returns the generated identifier for the new invoice.
func (c CreateInvoiceCommand) InvoiceID() kernel.UUID {
	return c.invoiceID
}

// ClientID returns the billed client.
func (c CreateInvoiceCommand) ClientID() kernel.UUID {
	return c.clientID
}

// IssuedAt returns the issue timestamp.
func (c CreateInvoiceCommand) IssuedAt() time.Time {
	return c.issuedAt
}

// DueAt returns the payment deadline.
func (c CreateInvoiceCommand) DueAt() time.Time {
	return c.dueAt
}

// Lines returns the initial line items.
func (c CreateInvoiceCommand) Lines() []invoice.LineItem {
	return c.lines
}

package commands

import (
	"errors"
	"time"

	"courierdesk/internal/core/domain/model/invoice"
	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/pkg/errs"
	"courierdesk/internal/pkg/guard"
)

var ErrTransitionInvoiceCommandIsNotConstructed = errors.New(
	"TransitionInvoiceCommand must be created via NewTransitionInvoiceCommand constructor",
)

// TransitionInvoiceCommand represents a request to advance an invoice through
// its billing lifecycle: sending a draft, registering payment, flagging an
// overdue invoice or cancelling.
type TransitionInvoiceCommand struct { //nolint:recvcheck //using for validation
	invoiceID  kernel.UUID
	target     invoice.Status
	occurredAt time.Time

	guard guard.ConstructorGuard
}

// NewTransitionInvoiceCommand creates a command to move an invoice to the
// target status. occurredAt is the payment timestamp for "paid" and the
// reference clock for "overdue"; other targets ignore it.
func NewTransitionInvoiceCommand(
	invoiceID kernel.UUID,
	target invoice.Status,
	occurredAt time.Time,
) (TransitionInvoiceCommand, error) {
	if err := errors.Join(
		invoiceID.Validate(),
		target.Validate(),
	); err != nil {
		return TransitionInvoiceCommand{}, err
	}
	if target == invoice.Draft {
		return TransitionInvoiceCommand{}, errs.NewValueIsInvalidError("target")
	}
	if (target == invoice.Paid || target == invoice.Overdue) && occurredAt.IsZero() {
		return TransitionInvoiceCommand{}, errs.NewValueIsRequiredError("occurredAt")
	}

	return TransitionInvoiceCommand{
		invoiceID:  invoiceID,
		target:     target,
		occurredAt: occurredAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrTransitionInvoiceCommandIsNotConstructed)
}

// InvoiceID returns the invoice to transition.
func (c TransitionInvoiceCommand) InvoiceID() kernel.UUID {
	return c.invoiceID
}

// Target returns the requested billing status.
func (c TransitionInvoiceCommand) Target() invoice.Status {
	return c.target
}

// OccurredAt returns the timestamp associated with the transition.
func (c TransitionInvoiceCommand) OccurredAt() time.Time {
	return c.occurredAt
}

package commands

import (
	"errors"
	"time"

	"courierdesk/internal/pkg/errs"
	"courierdesk/internal/pkg/guard"
)

var ErrMarkOverdueInvoicesCommandIsNotConstructed = errors.New(
	"MarkOverdueInvoicesCommand must be created via NewMarkOverdueInvoicesCommand constructor",
)

// MarkOverdueInvoicesCommand triggers the overdue sweep: every sent invoice
// whose payment deadline has passed is flagged overdue.
type MarkOverdueInvoicesCommand struct { //nolint:recvcheck //using for validation
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewMarkOverdueInvoicesCommand creates a command to run the overdue sweep
// relative to the given clock reading.
func NewMarkOverdueInvoicesCommand(asOf time.Time) (MarkOverdueInvoicesCommand, error) {
	if asOf.IsZero() {
		return MarkOverdueInvoicesCommand{}, errs.NewValueIsRequiredError("asOf")
	}

	return MarkOverdueInvoicesCommand{
		asOf:  asOf,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOverdueInvoicesCommand) Validate() error {
	return c.guard.Validate(ErrMarkOverdueInvoicesCommandIsNotConstructed)
}

// AsOf returns the clock reading the sweep compares deadlines against.
func (c MarkOverdueInvoicesCommand) AsOf() time.Time {
	return c.asOf
}

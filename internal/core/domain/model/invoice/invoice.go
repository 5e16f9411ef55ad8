// Package invoice provides the Invoice aggregate root: an ordered list of
// service line items, the billing status machine, and the derivation of
// subtotal, tax, and total.
//
// Monetary values stay exact (kernel.Money over shopspring/decimal) through
// every intermediate step; two-decimal rounding happens only when an amount
// leaves the core through serialization.
package invoice

import (
	"errors"
	"fmt"
	"time"

	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/pkg/errs"
	"courierdesk/internal/pkg/guard"
)

// TaxRate is the fixed-rate tax policy applied to every invoice subtotal.
// It is a policy constant of the billing domain, not a per-invoice field.
const TaxRate = 0.15

// ErrInvoiceIsNotConstructed is returned when using an improperly initialized Invoice.
var ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via NewInvoice constructor")

// Totals is the derived monetary summary of an invoice:
// Amount is the subtotal over line totals, Tax is Amount × TaxRate,
// and Total is Amount + Tax. All three are exact; rounding is the
// serialization boundary's job.
type Totals struct {
	Amount kernel.Money
	Tax    kernel.Money
	Total  kernel.Money
}

// Invoice is the aggregate root for a client bill.
//
// Invariants:
//   - amount always equals the sum of line totals, tax always equals
//     amount × TaxRate, and total always equals amount + tax; all three are
//     derived on every read instead of stored
//   - line items are editable only while the invoice is in Draft status;
//     any edit afterwards fails with *errs.InvoiceLockedError
//   - status changes only along the closed table in Status
type Invoice struct {
	id       kernel.UUID
	clientID kernel.UUID
	lines    []LineItem
	status   Status
	issuedAt time.Time
	dueAt    time.Time
	paidAt   *time.Time
	version  int
	guard    guard.ConstructorGuard
}

// NewInvoice creates an empty Invoice in Draft status for the given client.
// The due date must not precede the issue date.
func NewInvoice(id kernel.UUID, clientID kernel.UUID, issuedAt time.Time, dueAt time.Time) (*Invoice, error) {
	inv := &Invoice{
		status:   Draft,
		issuedAt: issuedAt,
		dueAt:    dueAt,
		version:  1,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		inv.setID(id),
		inv.setClientID(clientID),
	); err != nil {
		return nil, err
	}
	if dueAt.Before(issuedAt) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"due date", fmt.Errorf("due %s precedes issue %s",
				dueAt.Format(time.RFC3339), issuedAt.Format(time.RFC3339)))
	}

	return inv, nil
}

// RestoreInvoice reconstructs an Invoice from persistent storage.
func RestoreInvoice(
	id kernel.UUID,
	clientID kernel.UUID,
	lines []LineItem,
	status Status,
	issuedAt time.Time,
	dueAt time.Time,
	paidAt *time.Time,
	version int,
) (*Invoice, error) {
	if err := errors.Join(
		id.Validate(),
		clientID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if version < 1 {
		return nil, errs.NewVersionIsInvalidError("invoice version", fmt.Errorf("%d is not a positive version", version))
	}

	return &Invoice{
		id:       id,
		clientID: clientID,
		lines:    lines,
		status:   status,
		issuedAt: issuedAt,
		dueAt:    dueAt,
		paidAt:   paidAt,
		version:  version,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Invoice instance was properly constructed.
func (i *Invoice) Validate() error {
	if i == nil {
		return ErrInvoiceIsNotConstructed
	}
	return i.guard.Validate(ErrInvoiceIsNotConstructed)
}

// ID returns the invoice's unique identifier.
func (i *Invoice) ID() kernel.UUID {
	return i.id
}

// ClientID returns the owning client reference.
func (i *Invoice) ClientID() kernel.UUID {
	return i.clientID
}

// Lines returns a fresh copy of the ordered line items.
func (i *Invoice) Lines() []LineItem {
	lines := make([]LineItem, len(i.lines))
	copy(lines, i.lines)
	return lines
}

// Status returns the billing status.
func (i *Invoice) Status() Status {
	return i.status
}

// IssuedAt returns the issue timestamp.
func (i *Invoice) IssuedAt() time.Time {
	return i.issuedAt
}

// DueAt returns the payment due timestamp.
func (i *Invoice) DueAt() time.Time {
	return i.dueAt
}

// PaidAt returns the payment timestamp, or nil until paid.
func (i *Invoice) PaidAt() *time.Time {
	return i.paidAt
}

// Version returns the optimistic-concurrency version stamp.
func (i *Invoice) Version() int {
	return i.version
}

// BumpVersion advances the version stamp. Called by repositories after a
// successful compare-and-swap commit.
func (i *Invoice) BumpVersion() {
	i.version++
}

// Recompute derives the invoice totals from its line items:
// subtotal as Σ(quantity × unit price), tax as subtotal × TaxRate, and total
// as subtotal + tax. The derivation is pure and idempotent: calling it any
// number of times on the same lines yields identical totals.
func (i *Invoice) Recompute() Totals {
	amount := kernel.ZeroMoney()
	for _, line := range i.lines {
		amount = amount.Add(line.Total())
	}
	tax := amount.MulRate(TaxRate)

	return Totals{
		Amount: amount,
		Tax:    tax,
		Total:  amount.Add(tax),
	}
}

// AddLine appends a line item. Fails with *errs.InvoiceLockedError unless the
// invoice is still a draft.
func (i *Invoice) AddLine(line LineItem) error {
	if err := i.Validate(); err != nil {
		return err
	}
	if err := i.ensureEditable(); err != nil {
		return err
	}
	if err := line.Validate(); err != nil {
		return err
	}

	i.lines = append(i.lines, line)
	return nil
}

// UpdateLine replaces the line item at index. Fails with
// *errs.InvoiceLockedError unless the invoice is still a draft.
func (i *Invoice) UpdateLine(index int, line LineItem) error {
	if err := i.Validate(); err != nil {
		return err
	}
	if err := i.ensureEditable(); err != nil {
		return err
	}
	if err := line.Validate(); err != nil {
		return err
	}
	if index < 0 || index >= len(i.lines) {
		return errs.NewValueIsOutOfRangeError("line index", index, 0, len(i.lines)-1)
	}

	i.lines[index] = line
	return nil
}

// RemoveLine deletes the line item at index. Fails with
// *errs.InvoiceLockedError unless the invoice is still a draft.
func (i *Invoice) RemoveLine(index int) error {
	if err := i.Validate(); err != nil {
		return err
	}
	if err := i.ensureEditable(); err != nil {
		return err
	}
	if index < 0 || index >= len(i.lines) {
		return errs.NewValueIsOutOfRangeError("line index", index, 0, len(i.lines)-1)
	}

	i.lines = append(i.lines[:index], i.lines[index+1:]...)
	return nil
}

// MarkSent locks the line items and moves the invoice to Sent.
func (i *Invoice) MarkSent() error {
	return i.transitionTo(Sent)
}

// MarkPaid moves the invoice to Paid and stamps the payment timestamp.
// Marking an already-paid invoice again is an idempotent no-op.
func (i *Invoice) MarkPaid(paidAt time.Time) error {
	if err := i.Validate(); err != nil {
		return err
	}
	if i.status == Paid {
		return nil
	}

	newStatus, err := i.status.TransitionTo(Paid)
	if err != nil {
		return err
	}

	i.status = newStatus
	i.paidAt = &paidAt
	return nil
}

// MarkOverdue moves a sent invoice past its due date to Overdue.
// Returns an error if the due date has not passed yet.
func (i *Invoice) MarkOverdue(now time.Time) error {
	if err := i.Validate(); err != nil {
		return err
	}
	if i.status == Overdue {
		return nil
	}
	if !now.After(i.dueAt) {
		return errs.NewValueIsInvalidErrorWithCause(
			"overdue", fmt.Errorf("due date %s has not passed", i.dueAt.Format(time.RFC3339)))
	}

	return i.transitionTo(Overdue)
}

// Cancel withdraws the invoice.
func (i *Invoice) Cancel() error {
	return i.transitionTo(Cancelled)
}

func (i *Invoice) transitionTo(target Status) error {
	if err := i.Validate(); err != nil {
		return err
	}
	if i.status == target {
		return nil
	}

	newStatus, err := i.status.TransitionTo(target)
	if err != nil {
		return err
	}

	i.status = newStatus
	return nil
}

func (i *Invoice) ensureEditable() error {
	if i.status != Draft {
		return errs.NewInvoiceLockedError(i.status.String())
	}
	return nil
}

func (i *Invoice) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Invoice) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	i.clientID = clientID
	return nil
}

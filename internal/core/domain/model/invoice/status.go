package invoice

import (
	"fmt"

	"courierdesk/internal/pkg/errs"
)

// Status represents the billing state of an invoice.
// Like the shipment lifecycle it is a closed state machine:
//
//	draft ──> sent ──> paid
//	  │         │ ╲
//	  │         │  ──> overdue ──> paid
//	  │         │            │
//	  └─────────┴────────────┴──> cancelled
//
// paid and cancelled are terminal. Line items may only be edited in draft.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Draft invoices are editable; nothing has been sent to the client.
	Draft

	// Sent invoices await payment; line items are locked.
	Sent

	// Paid is the terminal happy-path status.
	Paid

	// Overdue invoices are sent invoices past their due date.
	Overdue

	// Cancelled is the terminal status for withdrawn invoices.
	Cancelled
)

func getStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:     "draft",
		Sent:      "sent",
		Paid:      "paid",
		Overdue:   "overdue",
		Cancelled: "cancelled",
	}
}

func legalSuccessors() map[Status][]Status {
	return map[Status][]Status{
		Draft:     {Sent, Cancelled},
		Sent:      {Paid, Overdue, Cancelled},
		Overdue:   {Paid, Cancelled},
		Paid:      {},
		Cancelled: {},
	}
}

// StatusFromString parses the wire representation of an invoice status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"invoice status",
		fmt.Errorf("%q is not a valid invoice status", s),
	)
}

// Validate checks if the Status value is one of the declared invoice statuses.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("invoice status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	successors, ok := legalSuccessors()[s]
	return ok && len(successors) == 0
}

// TransitionTo validates a transition from s to target and returns the new status.
// Repeating the current status is handled by the Invoice aggregate as a no-op.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	for _, successor := range legalSuccessors()[s] {
		if successor == target {
			return target, nil
		}
	}
	return Unknown, errs.NewIllegalTransitionError(s.String(), target.String())
}

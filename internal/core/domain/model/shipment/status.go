package shipment

import (
	"fmt"

	"courierdesk/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
// It implements a state machine with a closed transition table so that a
// shipment can only move along defined business paths.
//
// State transitions:
//
//	pending ──> picked_up ──> in_transit ──> out_for_delivery ──> delivered
//	   │                        ▲   │ ▲            │   │
//	   │                        │   │ └────────────┘   │ (failed attempt)
//	   │                        │   └──> returned <────┘ (after attempt threshold)
//	   └──> cancelled           └── (retry loop via in_transit)
//
// delivered, returned, and cancelled are terminal: no further transitions
// are legal from them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a newly registered shipment.
	// Only pending shipments may be cancelled or left without a courier.
	Pending

	// PickedUp indicates the assigned courier has collected the shipment.
	PickedUp

	// InTransit indicates the shipment is moving between facilities.
	InTransit

	// OutForDelivery indicates the courier is attempting final delivery.
	// Returning to InTransit after a failed attempt and coming out again
	// counts as a new delivery attempt.
	OutForDelivery

	// Delivered is the terminal happy-path status.
	Delivered

	// Returned is the terminal status for shipments sent back to the sender
	// after exhausting delivery attempts.
	Returned

	// Cancelled is the terminal status for shipments cancelled before pickup.
	Cancelled
)

// ReturnAttemptThreshold is the number of delivery attempts after which a
// shipment may be transitioned to Returned.
const ReturnAttemptThreshold = 3

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		PickedUp:       "picked_up",
		InTransit:      "in_transit",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Returned:       "returned",
		Cancelled:      "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "pending",
		PickedUp:       "picked_up",
		InTransit:      "in_transit",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Returned:       "returned",
		Cancelled:      "cancelled",
	}
}

// legalSuccessors is the closed transition table of the shipment state machine.
// Every valid status has an entry; terminal statuses map to an empty set, which
// is what makes them terminal. Keeping the table exhaustive over the declared
// statuses is verified by a test.
func legalSuccessors() map[Status][]Status {
	return map[Status][]Status{
		Pending:        {PickedUp, Cancelled},
		PickedUp:       {InTransit},
		InTransit:      {OutForDelivery, Returned},
		OutForDelivery: {Delivered, InTransit, Returned},
		Delivered:      {},
		Returned:       {},
		Cancelled:      {},
	}
}

// StatusFromString parses the wire representation of a status (e.g. "in_transit").
// Returns an error for unrecognized values instead of silently accepting them.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid shipment status", s),
	)
}

// Validate checks if the Status value is one of the declared shipment statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
// Implements fmt.Stringer and is safe on any Status value.
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

// CanTransitionTo reports whether target is in the legal-successor set of s.
// A terminal status has an empty successor set and therefore never permits
// a transition.
func (s Status) CanTransitionTo(target Status) bool {
	for _, successor := range legalSuccessors()[s] {
		if successor == target {
			return true
		}
	}
	return false
}

// TransitionTo validates a transition from s to target and returns the new status.
//
// Returns:
//   - (target, nil) when the transition is in the legal-successor set
//   - (Unknown, *errs.IllegalTransitionError) otherwise
//
// Idempotent repeats (target == s) are handled one level above by the
// Shipment aggregate, which treats them as a no-op success rather than
// consulting the table.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewIllegalTransitionError(s.String(), target.String())
	}
	return target, nil
}

package client

import (
	"fmt"

	"courierdesk/internal/pkg/errs"
)

// Status represents the account state of a client.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Active clients can register shipments and receive invoices.
	Active

	// Inactive clients are kept for history but take no new business.
	Inactive

	// PendingApproval clients have registered but are not yet vetted.
	PendingApproval
)

func getStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Active:          "active",
		Inactive:        "inactive",
		PendingApproval: "pending",
	}
}

// StatusFromString parses the wire representation of a client status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"client status",
		fmt.Errorf("%q is not a valid client status", s),
	)
}

// Validate checks if the Status value is one of the declared client statuses.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("client status", fmt.Errorf("%d is not a valid status", s))
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

package courier

import (
	"fmt"

	"courierdesk/internal/pkg/errs"
)

// Status represents the availability of a courier.
// Unlike the shipment lifecycle, courier availability is not a strict state
// machine: dispatch may move a courier between any of the three states.
// What matters to the domain is that an offline courier can never be
// assigned new shipments.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Available means the courier can take new shipments.
	Available

	// Busy means the courier is out on deliveries but still assignable.
	Busy

	// Offline means the courier is off shift; assignment fails.
	Offline
)

func getStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available: "available",
		Busy:      "busy",
		Offline:   "offline",
	}
}

// StatusFromString parses the wire representation of a courier status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"courier status",
		fmt.Errorf("%q is not a valid courier status", s),
	)
}

// Validate checks if the Status value is one of the declared courier statuses.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("courier status", fmt.Errorf("%d is not a valid status", s))
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

// IsAssignable reports whether a courier in this status may take new shipments.
// Busy couriers remain assignable; only offline couriers are excluded.
func (s Status) IsAssignable() bool {
	return s == Available || s == Busy
}

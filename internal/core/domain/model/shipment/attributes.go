package shipment

import (
	"fmt"

	"courierdesk/internal/pkg/errs"
)

// ServiceTier is the commercial delivery tier booked for a shipment.
type ServiceTier int

const (
	// TierUnknown represents an invalid or undefined service tier.
	TierUnknown ServiceTier = iota
	// Economy is the slowest, cheapest tier.
	Economy
	// Standard is the default tier.
	Standard
	// Express is the fastest tier.
	Express
)

func getServiceTierStrings() map[ServiceTier]string {
	//nolint:exhaustive // TierUnknown is intentionally excluded as it's invalid
	return map[ServiceTier]string{
		Economy:  "economy",
		Standard: "standard",
		Express:  "express",
	}
}

// ServiceTierFromString parses the wire representation of a service tier.
func ServiceTierFromString(s string) (ServiceTier, error) {
	for tier, str := range getServiceTierStrings() {
		if str == s {
			return tier, nil
		}
	}
	return TierUnknown, errs.NewValueIsInvalidErrorWithCause(
		"service tier",
		fmt.Errorf("%q is not a valid service tier", s),
	)
}

// Validate checks if the tier is one of the declared service tiers.
func (t ServiceTier) Validate() error {
	if _, ok := getServiceTierStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("service tier", fmt.Errorf("%d is not a valid tier", t))
	}
	return nil
}

// String returns the wire representation of the tier.
func (t ServiceTier) String() string {
	if str, ok := getServiceTierStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// Priority is the handling priority of a shipment.
type Priority int

const (
	// PriorityUnknown represents an invalid or undefined priority.
	PriorityUnknown Priority = iota
	// Low priority shipments may be deferred behind all others.
	Low
	// Normal is the default priority.
	Normal
	// High priority shipments are handled before normal ones.
	High
	// Urgent shipments are handled first.
	Urgent
)

func getPriorityStrings() map[Priority]string {
	//nolint:exhaustive // PriorityUnknown is intentionally excluded as it's invalid
	return map[Priority]string{
		Low:    "low",
		Normal: "normal",
		High:   "high",
		Urgent: "urgent",
	}
}

// PriorityFromString parses the wire representation of a priority.
func PriorityFromString(s string) (Priority, error) {
	for priority, str := range getPriorityStrings() {
		if str == s {
			return priority, nil
		}
	}
	return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause(
		"priority",
		fmt.Errorf("%q is not a valid priority", s),
	)
}

// Validate checks if the priority is one of the declared priorities.
func (p Priority) Validate() error {
	if _, ok := getPriorityStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

// String returns the wire representation of the priority.
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "unknown"
}

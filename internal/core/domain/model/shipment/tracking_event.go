package shipment

import (
	"errors"
	"time"

	"courierdesk/internal/pkg/errs"
)

// Tracking event validation errors.
var (
	// ErrEventLocationIsRequired is returned when a tracking event is created without a location label.
	ErrEventLocationIsRequired = errs.NewValueIsRequiredError("event location")
	// ErrEventTimestampIsRequired is returned when a tracking event is created with a zero timestamp.
	ErrEventTimestampIsRequired = errs.NewValueIsRequiredError("event timestamp")
)

// TrackingEvent is one immutable record in a shipment timeline: the status the
// shipment entered, where it happened, a free-text description, and when.
// The optional courier name annotates events produced while a courier was
// handling the shipment.
//
// TrackingEvent is a value object: once appended to a timeline it is never
// mutated, and Timeline() hands out copies rather than aliases.
type TrackingEvent struct {
	status      Status
	location    string
	description string
	timestamp   time.Time
	courierName string
}

// NewTrackingEvent creates a TrackingEvent with the given context.
// The courierName may be empty for events not produced by a courier
// (e.g. registration or facility scans).
func NewTrackingEvent(
	status Status,
	location string,
	description string,
	timestamp time.Time,
	courierName string,
) (TrackingEvent, error) {
	var validationErrors []error
	if err := status.Validate(); err != nil {
		validationErrors = append(validationErrors, err)
	}
	if location == "" {
		validationErrors = append(validationErrors, ErrEventLocationIsRequired)
	}
	if timestamp.IsZero() {
		validationErrors = append(validationErrors, ErrEventTimestampIsRequired)
	}
	if len(validationErrors) > 0 {
		return TrackingEvent{}, errors.Join(validationErrors...)
	}

	return TrackingEvent{
		status:      status,
		location:    location,
		description: description,
		timestamp:   timestamp,
		courierName: courierName,
	}, nil
}

// Status returns the shipment status recorded by the event.
func (e TrackingEvent) Status() Status {
	return e.status
}

// Location returns the human-readable location label of the event.
func (e TrackingEvent) Location() string {
	return e.location
}

// Description returns the free-text description of the event.
func (e TrackingEvent) Description() string {
	return e.description
}

// Timestamp returns when the event occurred.
func (e TrackingEvent) Timestamp() time.Time {
	return e.timestamp
}

// CourierName returns the optional courier annotation; empty if none.
func (e TrackingEvent) CourierName() string {
	return e.courierName
}

// Validate checks that the event was created through NewTrackingEvent.
func (e TrackingEvent) Validate() error {
	if e.location == "" || e.timestamp.IsZero() {
		return errs.NewValueIsRequiredError("tracking event must be created via NewTrackingEvent")
	}
	return e.status.Validate()
}

package commands

import (
	"errors"
	"time"

	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/pkg/errs"
	"courierdesk/internal/pkg/guard"
)

var ErrAppendTrackingEventCommandIsNotConstructed = errors.New(
	"AppendTrackingEventCommand must be created via NewAppendTrackingEventCommand constructor",
)

// AppendTrackingEventCommand represents a request to annotate a shipment's
// timeline without changing its status, e.g. a location scan at a sorting hub.
type AppendTrackingEventCommand struct { //nolint:recvcheck //using for validation
	shipmentID  kernel.UUID
	location    string
	description string
	courierName string
	occurredAt  time.Time

	guard guard.ConstructorGuard
}

// NewAppendTrackingEventCommand creates a command to append an annotation
// event to a shipment's timeline.
func NewAppendTrackingEventCommand(
	shipmentID kernel.UUID,
	location string,
	description string,
	courierName string,
	occurredAt time.Time,
) (AppendTrackingEventCommand, error) {
	if err := shipmentID.Validate(); err != nil {
		return AppendTrackingEventCommand{}, err
	}
	if location == "" {
		return AppendTrackingEventCommand{}, errs.NewValueIsRequiredError("location")
	}
	if occurredAt.IsZero() {
		return AppendTrackingEventCommand{}, errs.NewValueIsRequiredError("occurredAt")
	}

	return AppendTrackingEventCommand{
		shipmentID:  shipmentID,
		location:    location,
		description: description,
		courierName: courierName,
		occurredAt:  occurredAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AppendTrackingEventCommand) Validate() error {
	return c.guard.Validate(ErrAppendTrackingEventCommandIsNotConstructed)
}

// ShipmentID returns the shipment to annotate.
func (c AppendTrackingEventCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Location returns where the scan was recorded.
func (c AppendTrackingEventCommand) Location() string {
	return c.location
}

// Description returns the optional free-text annotation.
func (c AppendTrackingEventCommand) Description() string {
	return c.description
}

// CourierName returns the optional name of the reporting courier.
func (c AppendTrackingEventCommand) CourierName() string {
	return c.courierName
}

// OccurredAt returns the event timestamp.
func (c AppendTrackingEventCommand) OccurredAt() time.Time {
	return c.occurredAt
}

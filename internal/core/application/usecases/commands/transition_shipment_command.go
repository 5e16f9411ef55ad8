package commands

import (
	"errors"
	"time"

	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/core/domain/model/shipment"
	"courierdesk/internal/pkg/errs"
	"courierdesk/internal/pkg/guard"
)

var ErrTransitionShipmentCommandIsNotConstructed = errors.New(
	"TransitionShipmentCommand must be created via NewTransitionShipmentCommand constructor",
)

// TransitionShipmentCommand represents a request to advance a shipment to a
// new lifecycle status, recording a tracking event alongside the change.
type TransitionShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID  kernel.UUID
	target      shipment.Status
	location    string
	description string
	courierName string
	occurredAt  time.Time

	guard guard.ConstructorGuard
}

// NewTransitionShipmentCommand creates a command to move a shipment to the
// target status. Location and timestamp describe the tracking event written
// into the timeline; description and courierName are optional annotations.
func NewTransitionShipmentCommand(
	shipmentID kernel.UUID,
	target shipment.Status,
	location string,
	description string,
	courierName string,
	occurredAt time.Time,
) (TransitionShipmentCommand, error) {
	if err := errors.Join(
		shipmentID.Validate(),
		target.Validate(),
	); err != nil {
		return TransitionShipmentCommand{}, err
	}
	if location == "" {
		return TransitionShipmentCommand{}, errs.NewValueIsRequiredError("location")
	}
	if occurredAt.IsZero() {
		return TransitionShipmentCommand{}, errs.NewValueIsRequiredError("occurredAt")
	}

	return TransitionShipmentCommand{
		shipmentID:  shipmentID,
		target:      target,
		location:    location,
		description: description,
		courierName: courierName,
		occurredAt:  occurredAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionShipmentCommand) Validate() error {
	return c.guard.Validate(ErrTransitionShipmentCommandIsNotConstructed)
}

// ShipmentID returns the shipment to transition.
func (c TransitionShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Target returns the requested lifecycle status.
func (c TransitionShipmentCommand) Target() shipment.Status {
	return c.target
}

// Location returns where the status change was observed.
func (c TransitionShipmentCommand) Location() string {
	return c.location
}

// Description returns the optional free-text annotation.
func (c TransitionShipmentCommand) Description() string {
	return c.description
}

// CourierName returns the optional name of the courier reporting the event.
func (c TransitionShipmentCommand) CourierName() string {
	return c.courierName
}

// OccurredAt returns the event timestamp.
func (c TransitionShipmentCommand) OccurredAt() time.Time {
	return c.occurredAt
}

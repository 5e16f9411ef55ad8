package commands

import (
	"errors"

	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/pkg/errs"
	"courierdesk/internal/pkg/guard"
)

var ErrRecordDeliveryCommandIsNotConstructed = errors.New(
	"RecordDeliveryCommand must be created via NewRecordDeliveryCommand constructor",
)

// RecordDeliveryCommand credits a completed delivery to the courier assigned
// to a delivered shipment: the delivery fee joins the courier's monthly
// earnings and the customer rating feeds the running average.
type RecordDeliveryCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	fee        kernel.Money
	rating     float64

	guard guard.ConstructorGuard
}

// NewRecordDeliveryCommand creates a command to credit a delivery to the
// assigned courier. Rating must fall within the 0 to 5 scale.
func NewRecordDeliveryCommand(shipmentID kernel.UUID, fee kernel.Money, rating float64) (RecordDeliveryCommand, error) {
	if err := shipmentID.Validate(); err != nil {
		return RecordDeliveryCommand{}, err
	}
	if rating < 0 || rating > 5 {
		return RecordDeliveryCommand{}, errs.NewValueIsOutOfRangeError("rating", rating, 0, 5)
	}

	return RecordDeliveryCommand{
		shipmentID: shipmentID,
		fee:        fee,
		rating:     rating,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrRecordDeliveryCommandIsNotConstructed)
}

// ShipmentID returns the delivered shipment.
func (c RecordDeliveryCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Fee returns the delivery fee credited to the courier.
func (c RecordDeliveryCommand) Fee() kernel.Money {
	return c.fee
}

// Rating returns the customer's rating for this delivery.
func (c RecordDeliveryCommand) Rating() float64 {
	return c.rating
}

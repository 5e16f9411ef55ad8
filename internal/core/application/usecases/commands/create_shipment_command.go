package commands

import (
	"errors"
	"time"

	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/core/domain/model/shipment"
	"courierdesk/internal/pkg/errs"
	"courierdesk/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a request to register a new shipment for a
// client. The shipment starts in pending status with an empty timeline and a
// freshly derived tracking code.
//
// Example:
//
//	cmd, err := NewCreateShipmentCommand(
//	    kernel.NewUUID(), clientID, sender, recipient,
//	    2.5, dims, declared, shipment.Standard, shipment.Normal, time.Now())
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register shipment: %w", err)
//	}
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID    kernel.UUID
	clientID      kernel.UUID
	sender        kernel.Contact
	recipient     kernel.Contact
	weight        float64
	dimensions    kernel.Dimensions
	declaredValue kernel.Money
	serviceTier   shipment.ServiceTier
	priority      shipment.Priority
	createdAt     time.Time

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment.
// All field validation is delegated to the value objects; errors are joined.
func NewCreateShipmentCommand(
	shipmentID kernel.UUID,
	clientID kernel.UUID,
	sender kernel.Contact,
	recipient kernel.Contact,
	weight float64,
	dimensions kernel.Dimensions,
	declaredValue kernel.Money,
	serviceTier shipment.ServiceTier,
	priority shipment.Priority,
	createdAt time.Time,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		weight:        weight,
		declaredValue: declaredValue,
		createdAt:     createdAt,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setClientID(clientID),
		cmd.setSender(sender),
		cmd.setRecipient(recipient),
		cmd.setDimensions(dimensions),
		cmd.setServiceTier(serviceTier),
		cmd.setPriority(priority),
	); err != nil {
		return CreateShipmentCommand{}, err
	}
	if createdAt.IsZero() {
		return CreateShipmentCommand{}, errs.NewValueIsRequiredError("createdAt")
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier for the new shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// ClientID returns the owning client reference.
func (c CreateShipmentCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Sender returns the sender contact.
func (c CreateShipmentCommand) Sender() kernel.Contact {
	return c.sender
}

// Recipient returns the recipient contact.
func (c CreateShipmentCommand) Recipient() kernel.Contact {
	return c.recipient
}

// Weight returns the package weight in kilograms.
func (c CreateShipmentCommand) Weight() float64 {
	return c.weight
}

// Dimensions returns the package dimensions.
func (c CreateShipmentCommand) Dimensions() kernel.Dimensions {
	return c.dimensions
}

// DeclaredValue returns the declared monetary value.
func (c CreateShipmentCommand) DeclaredValue() kernel.Money {
	return c.declaredValue
}

// ServiceTier returns the booked service tier.
func (c CreateShipmentCommand) ServiceTier() shipment.ServiceTier {
	return c.serviceTier
}

// Priority returns the handling priority.
func (c CreateShipmentCommand) Priority() shipment.Priority {
	return c.priority
}

// CreatedAt returns the registration timestamp.
func (c CreateShipmentCommand) CreatedAt() time.Time {
	return c.createdAt
}

func (c *CreateShipmentCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *CreateShipmentCommand) setClientID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.clientID = id
	return nil
}

func (c *CreateShipmentCommand) setSender(sender kernel.Contact) error {
	if err := sender.Validate(); err != nil {
		return err
	}
	c.sender = sender
	return nil
}

func (c *CreateShipmentCommand) setRecipient(recipient kernel.Contact) error {
	if err := recipient.Validate(); err != nil {
		return err
	}
	c.recipient = recipient
	return nil
}

func (c *CreateShipmentCommand) setDimensions(dimensions kernel.Dimensions) error {
	if err := dimensions.Validate(); err != nil {
		return err
	}
	c.dimensions = dimensions
	return nil
}

func (c *CreateShipmentCommand) setServiceTier(tier shipment.ServiceTier) error {
	if err := tier.Validate(); err != nil {
		return err
	}
	c.serviceTier = tier
	return nil
}

func (c *CreateShipmentCommand) setPriority(priority shipment.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	c.priority = priority
	return nil
}

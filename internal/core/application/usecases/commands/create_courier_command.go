package commands

import (
	"errors"

	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/pkg/errs"
	"courierdesk/internal/pkg/guard"
)

var ErrCreateCourierCommandIsNotConstructed = errors.New(
	"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
)

// CreateCourierCommand represents a request to register a new courier.
// New couriers start in "available" status with zeroed delivery statistics.
//
// Example:
//
//	contact, _ := kernel.NewContact("Dana Reyes", "+15550100", "12 Dock Rd")
//	cmd, err := NewCreateCourierCommand(contact, "bike")
//	if err != nil {
//	    return fmt.Errorf("invalid courier data: %w", err)
//	}
//
//	handler := NewCreateCourierCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create courier: %w", err)
//	}
//	fmt.Printf("Created courier with ID: %s", cmd.CourierID())
type CreateCourierCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	contact   kernel.Contact
	vehicle   string

	guard guard.ConstructorGuard
}

// NewCreateCourierCommand creates a command to register a new courier.
// Automatically generates a unique ID for the courier.
func NewCreateCourierCommand(contact kernel.Contact, vehicle string) (CreateCourierCommand, error) {
	command := CreateCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCourierID(kernel.NewUUID()),
		command.setContact(contact),
		command.setVehicle(vehicle),
	); err != nil {
		return CreateCourierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

// CourierID returns the generated identifier for the new courier.
func (c CreateCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Contact returns the courier's contact details.
func (c CreateCourierCommand) Contact() kernel.Contact {
	return c.contact
}

// Vehicle returns the courier's vehicle label.
func (c CreateCourierCommand) Vehicle() string {
	return c.vehicle
}

func (c *CreateCourierCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.courierID = id
	return nil
}

func (c *CreateCourierCommand) setContact(contact kernel.Contact) error {
	if err := contact.Validate(); err != nil {
		return err
	}
	c.contact = contact
	return nil
}

func (c *CreateCourierCommand) setVehicle(vehicle string) error {
	if vehicle == "" {
		return errs.NewValueIsRequiredError("vehicle")
	}
	c.vehicle = vehicle
	return nil
}

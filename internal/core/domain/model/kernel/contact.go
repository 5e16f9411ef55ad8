package kernel

import (
	"errors"

	"courierdesk/internal/pkg/errs"
)

// Contact validation errors.
var (
	// ErrContactNameIsRequired is returned when a contact is created without a name.
	ErrContactNameIsRequired = errs.NewValueIsRequiredError("contact name")
	// ErrContactPhoneIsRequired is returned when a contact is created without a phone number.
	ErrContactPhoneIsRequired = errs.NewValueIsRequiredError("contact phone")
	// ErrContactAddressIsRequired is returned when a contact is created without an address.
	ErrContactAddressIsRequired = errs.NewValueIsRequiredError("contact address")
)

// Contact is a value object holding the name, phone, and address triple used
// for shipment senders and recipients and for client/courier contact details.
//
// Contact is immutable after construction. The zero value is invalid and must
// be created via NewContact.
//
// Example:
//
//	sender, err := kernel.NewContact("Acme Ltd", "+1-555-0101", "12 Dock St")
//	if err != nil {
//	    // handle validation error
//	}
type Contact struct {
	name    string
	phone   string
	address string
}

// NewContact creates a Contact after validating that all three fields are non-empty.
// Field errors are joined so the caller sees every missing field at once.
func NewContact(name string, phone string, address string) (Contact, error) {
	var validationErrors []error
	if name == "" {
		validationErrors = append(validationErrors, ErrContactNameIsRequired)
	}
	if phone == "" {
		validationErrors = append(validationErrors, ErrContactPhoneIsRequired)
	}
	if address == "" {
		validationErrors = append(validationErrors, ErrContactAddressIsRequired)
	}
	if len(validationErrors) > 0 {
		return Contact{}, errors.Join(validationErrors...)
	}

	return Contact{name: name, phone: phone, address: address}, nil
}

// Name returns the contact's display name.
func (c Contact) Name() string {
	return c.name
}

// Phone returns the contact's phone number.
func (c Contact) Phone() string {
	return c.phone
}

// Address returns the contact's address line.
func (c Contact) Address() string {
	return c.address
}

// Validate checks that the contact was created through NewContact.
func (c Contact) Validate() error {
	if c.name == "" || c.phone == "" || c.address == "" {
		return errs.NewValueIsRequiredError("contact must be created via NewContact")
	}
	return nil
}

// IsEqual compares two contacts field by field.
func (c Contact) IsEqual(other Contact) bool {
	return c.name == other.name && c.phone == other.phone && c.address == other.address
}

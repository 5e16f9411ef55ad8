package invoice

import (
	"errors"
	"fmt"

	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/pkg/errs"
)

// ErrLineDescriptionIsRequired is returned when a line item is created without a description.
var ErrLineDescriptionIsRequired = errs.NewValueIsRequiredError("line description")

// LineItem is a single billable service line on an invoice.
// It is a value object: editing a line replaces it wholesale, and the line
// total is always derived from quantity × unit price rather than stored.
type LineItem struct {
	description string
	quantity    int
	unitPrice   kernel.Money
}

// NewLineItem creates a LineItem after validating its fields.
// Quantity must be positive and the unit price non-negative.
func NewLineItem(description string, quantity int, unitPrice kernel.Money) (LineItem, error) {
	var validationErrors []error
	if description == "" {
		validationErrors = append(validationErrors, ErrLineDescriptionIsRequired)
	}
	if quantity <= 0 {
		validationErrors = append(validationErrors, errs.NewValueIsInvalidErrorWithCause(
			"line quantity", fmt.Errorf("%d is not greater than 0", quantity)))
	}
	if unitPrice.IsNegative() {
		validationErrors = append(validationErrors, errs.NewValueIsInvalidError("line unit price"))
	}
	if len(validationErrors) > 0 {
		return LineItem{}, errors.Join(validationErrors...)
	}

	return LineItem{description: description, quantity: quantity, unitPrice: unitPrice}, nil
}

// Description returns the service description.
func (l LineItem) Description() string {
	return l.description
}

// Quantity returns the billed quantity.
func (l LineItem) Quantity() int {
	return l.quantity
}

// UnitPrice returns the price per unit.
func (l LineItem) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Total returns quantity × unit price, recomputed on every call so it can
// never drift from its operands.
func (l LineItem) Total() kernel.Money {
	return l.unitPrice.MulInt(l.quantity)
}

// Validate checks that the line was created through NewLineItem.
func (l LineItem) Validate() error {
	if l.description == "" || l.quantity <= 0 {
		return errs.NewValueIsRequiredError("line item must be created via NewLineItem")
	}
	return nil
}

package courier

import (
	"errors"
	"fmt"

	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/pkg/errs"
	"courierdesk/internal/pkg/guard"
)

const (
	// minRating and maxRating bound the courier rating scale.
	minRating = 0.0
	maxRating = 5.0
)

// Domain errors for courier operations.
var (
	// ErrVehicleIsRequired is returned when creating a courier without a vehicle descriptor.
	ErrVehicleIsRequired = errs.NewValueIsRequiredError("vehicle")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Courier represents a delivery courier in the back-office.
// It is an aggregate root managing courier identity, availability, and rolling
// delivery stats. Couriers never own shipments: a shipment references its
// courier by ID, and a courier's workload is derived by a reverse lookup when
// listing shipments.
//
// Example usage:
//
//	contact, _ := kernel.NewContact("Alice", "+1-555-0102", "North depot")
//	c, err := courier.NewCourier(kernel.NewUUID(), contact, "van")
//	if err != nil {
//	    // handle construction error
//	}
//	// Courier starts available and ready for assignment.
type Courier struct {
	id              kernel.UUID
	contact         kernel.Contact
	status          Status
	vehicle         string
	totalDeliveries int
	rating          float64
	monthlyEarnings kernel.Money
	version         int
	guard           guard.ConstructorGuard
}

// NewCourier creates a Courier in Available status with zeroed stats.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - contact: courier contact details (must be constructed via kernel.NewContact)
//   - vehicle: vehicle descriptor such as "bicycle", "motorbike", "van" (must be non-empty)
func NewCourier(id kernel.UUID, contact kernel.Contact, vehicle string) (*Courier, error) {
	c := &Courier{
		status:          Available,
		monthlyEarnings: kernel.ZeroMoney(),
		version:         1,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setContact(contact),
		c.setVehicle(vehicle),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCourier reconstructs a Courier from persistent storage,
// including its availability status and rolling stats.
func RestoreCourier(
	id kernel.UUID,
	contact kernel.Contact,
	status Status,
	vehicle string,
	totalDeliveries int,
	rating float64,
	monthlyEarnings kernel.Money,
	version int,
) (*Courier, error) {
	if err := errors.Join(
		id.Validate(),
		contact.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if totalDeliveries < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"totalDeliveries", fmt.Errorf("%d is negative", totalDeliveries))
	}
	if rating < minRating || rating > maxRating {
		return nil, errs.NewValueIsOutOfRangeError("rating", rating, minRating, maxRating)
	}
	if version < 1 {
		return nil, errs.NewVersionIsInvalidError("courier version", fmt.Errorf("%d is not a positive version", version))
	}

	return &Courier{
		id:              id,
		contact:         contact,
		status:          status,
		vehicle:         vehicle,
		totalDeliveries: totalDeliveries,
		rating:          rating,
		monthlyEarnings: monthlyEarnings,
		version:         version,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Courier instance was properly constructed.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares two couriers by their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Contact returns the courier's contact details.
func (c *Courier) Contact() kernel.Contact {
	return c.contact
}

// Status returns the courier's availability status.
func (c *Courier) Status() Status {
	return c.status
}

// Vehicle returns the vehicle descriptor.
func (c *Courier) Vehicle() string {
	return c.vehicle
}

// TotalDeliveries returns the number of completed deliveries.
func (c *Courier) TotalDeliveries() int {
	return c.totalDeliveries
}

// Rating returns the courier's rolling rating on a 0–5 scale.
func (c *Courier) Rating() float64 {
	return c.rating
}

// MonthlyEarnings returns the courier's earnings for the current month.
func (c *Courier) MonthlyEarnings() kernel.Money {
	return c.monthlyEarnings
}

// Version returns the optimistic-concurrency version stamp.
func (c *Courier) Version() int {
	return c.version
}

// BumpVersion advances the version stamp. Called by repositories after a
// successful compare-and-swap commit.
func (c *Courier) BumpVersion() {
	c.version++
}

// IsAssignable reports whether the courier may take new shipments.
func (c *Courier) IsAssignable() bool {
	return c.status.IsAssignable()
}

// SetStatus moves the courier to the given availability status.
// Courier availability is dispatch-controlled and not a strict state machine,
// so any valid status is accepted.
func (c *Courier) SetStatus(status Status) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

// RecordDelivery updates the rolling stats after a completed delivery:
// increments the delivery counter, adds the delivery fee to monthly earnings,
// and folds the delivery rating into the running average.
func (c *Courier) RecordDelivery(fee kernel.Money, deliveryRating float64) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if deliveryRating < minRating || deliveryRating > maxRating {
		return errs.NewValueIsOutOfRangeError("rating", deliveryRating, minRating, maxRating)
	}

	c.rating = (c.rating*float64(c.totalDeliveries) + deliveryRating) / float64(c.totalDeliveries+1)
	c.totalDeliveries++
	c.monthlyEarnings = c.monthlyEarnings.Add(fee)
	return nil
}

// ResetMonthlyEarnings zeroes the monthly earnings counter at the start of a
// new billing month.
func (c *Courier) ResetMonthlyEarnings() {
	c.monthlyEarnings = kernel.ZeroMoney()
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setContact(contact kernel.Contact) error {
	if err := contact.Validate(); err != nil {
		return err
	}
	c.contact = contact
	return nil
}

func (c *Courier) setVehicle(vehicle string) error {
	if vehicle == "" {
		return ErrVehicleIsRequired
	}
	c.vehicle = vehicle
	return nil
}

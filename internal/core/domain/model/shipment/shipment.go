package shipment

import (
	"errors"
	"fmt"
	"time"

	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/pkg/errs"
	"courierdesk/internal/pkg/guard"
)

// Domain errors for shipment operations.
var (
	// ErrShipmentIsNotConstructed is returned when using an improperly initialized Shipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")
	// ErrTrackingCodeIsRequired is returned when creating a shipment without a tracking code.
	ErrTrackingCodeIsRequired = errs.NewValueIsRequiredError("tracking code")
	// ErrWeightIsInvalid is returned when creating a shipment with a non-positive weight.
	ErrWeightIsInvalid = errs.NewValueIsInvalidError("weight")
	// ErrCourierIsRequiredForPickup is the cause attached to a pickup transition
	// attempted while no courier is assigned.
	ErrCourierIsRequiredForPickup = errors.New("shipment has no assigned courier")
	// ErrAttemptThresholdNotReached is the cause attached to a return transition
	// attempted before the delivery-attempt threshold was exceeded.
	ErrAttemptThresholdNotReached = errors.New("delivery attempt threshold not reached")
)

// Shipment is the aggregate root for a single package tracked end-to-end.
// It owns its tracking timeline (composition: events never outlive or get
// shared outside the shipment) and holds a weak reference, by ID only, to the
// assigned courier.
//
// Invariants maintained by the aggregate:
//   - status is always one of the declared Status values
//   - the timeline is ordered by timestamp ascending and append-only
//   - the most recent event's status equals the current status
//   - deliveryAttempts is never negative
//   - a courier may be unset only while the shipment is pending
//
// All mutations go through TransitionTo, AppendEvent, and Assign; the
// presentation layer never writes fields directly.
type Shipment struct {
	id               kernel.UUID
	trackingCode     string
	clientID         kernel.UUID
	sender           kernel.Contact
	recipient        kernel.Contact
	weight           float64
	dimensions       kernel.Dimensions
	declaredValue    kernel.Money
	serviceTier      ServiceTier
	priority         Priority
	status           Status
	courierID        *kernel.UUID
	currentLocation  string
	deliveryAttempts int
	createdAt        time.Time
	updatedAt        time.Time
	estimatedAt      *time.Time
	deliveredAt      *time.Time
	events           []TrackingEvent
	version          int
	guard            guard.ConstructorGuard
}

// NewShipment creates a Shipment in Pending status with an empty timeline.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - trackingCode: human-readable tracking code (must be non-empty)
//   - clientID: owning client reference (must be a valid UUID)
//   - sender, recipient: contact triples (must be constructed via kernel.NewContact)
//   - weight: package weight in kilograms (must be positive)
//   - dimensions: package dimensions (must be constructed via kernel.NewDimensions)
//   - declaredValue: declared monetary value
//   - tier, priority: service tier and handling priority
//   - createdAt: registration timestamp
//
// All validation errors are joined so the caller sees every problem at once.
func NewShipment(
	id kernel.UUID,
	trackingCode string,
	clientID kernel.UUID,
	sender kernel.Contact,
	recipient kernel.Contact,
	weight float64,
	dimensions kernel.Dimensions,
	declaredValue kernel.Money,
	tier ServiceTier,
	priority Priority,
	createdAt time.Time,
) (*Shipment, error) {
	s := &Shipment{
		status:    Pending,
		version:   1,
		createdAt: createdAt,
		updatedAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setTrackingCode(trackingCode),
		s.setClientID(clientID),
		s.setSender(sender),
		s.setRecipient(recipient),
		s.setWeight(weight),
		s.setDimensions(dimensions),
		s.setServiceTier(tier),
		s.setPriority(priority),
	); err != nil {
		return nil, err
	}

	s.declaredValue = declaredValue
	s.currentLocation = sender.Address()
	return s, nil
}

// RestoreShipment reconstructs a Shipment from persistent storage without
// re-running creation-time rules (a restored shipment may legitimately be in
// any status with any attempt count). The events slice must already be in
// ascending timestamp order; the repository is responsible for loading it
// that way.
func RestoreShipment(
	id kernel.UUID,
	trackingCode string,
	clientID kernel.UUID,
	sender kernel.Contact,
	recipient kernel.Contact,
	weight float64,
	dimensions kernel.Dimensions,
	declaredValue kernel.Money,
	tier ServiceTier,
	priority Priority,
	status Status,
	courierID *kernel.UUID,
	currentLocation string,
	deliveryAttempts int,
	createdAt time.Time,
	updatedAt time.Time,
	estimatedAt *time.Time,
	deliveredAt *time.Time,
	events []TrackingEvent,
	version int,
) (*Shipment, error) {
	if err := errors.Join(
		id.Validate(),
		clientID.Validate(),
		status.Validate(),
		tier.Validate(),
		priority.Validate(),
	); err != nil {
		return nil, err
	}
	if deliveryAttempts < 0 {
		return nil, errs.NewValueIsOutOfRangeError("deliveryAttempts", deliveryAttempts, 0, ReturnAttemptThreshold)
	}
	if version < 1 {
		return nil, errs.NewVersionIsInvalidError("shipment version", fmt.Errorf("%d is not a positive version", version))
	}

	return &Shipment{
		id:               id,
		trackingCode:     trackingCode,
		clientID:         clientID,
		sender:           sender,
		recipient:        recipient,
		weight:           weight,
		dimensions:       dimensions,
		declaredValue:    declaredValue,
		serviceTier:      tier,
		priority:         priority,
		status:           status,
		courierID:        courierID,
		currentLocation:  currentLocation,
		deliveryAttempts: deliveryAttempts,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
		estimatedAt:      estimatedAt,
		deliveredAt:      deliveredAt,
		events:           events,
		version:          version,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Shipment instance was properly constructed.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// TrackingCode returns the human-readable tracking code.
func (s *Shipment) TrackingCode() string {
	return s.trackingCode
}

// ClientID returns the owning client reference.
func (s *Shipment) ClientID() kernel.UUID {
	return s.clientID
}

// Sender returns the sender contact.
func (s *Shipment) Sender() kernel.Contact {
	return s.sender
}

// Recipient returns the recipient contact.
func (s *Shipment) Recipient() kernel.Contact {
	return s.recipient
}

// Weight returns the package weight in kilograms.
func (s *Shipment) Weight() float64 {
	return s.weight
}

// Dimensions returns the package dimensions.
func (s *Shipment) Dimensions() kernel.Dimensions {
	return s.dimensions
}

// DeclaredValue returns the declared monetary value.
func (s *Shipment) DeclaredValue() kernel.Money {
	return s.declaredValue
}

// ServiceTier returns the booked service tier.
func (s *Shipment) ServiceTier() ServiceTier {
	return s.serviceTier
}

// Priority returns the handling priority.
func (s *Shipment) Priority() Priority {
	return s.priority
}

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status {
	return s.status
}

// Courier returns the assigned courier's ID, or nil while unassigned.
// This is a weak reference: the courier is looked up by ID, never owned.
func (s *Shipment) Courier() *kernel.UUID {
	return s.courierID
}

// CurrentLocation returns the most recent location label.
func (s *Shipment) CurrentLocation() string {
	return s.currentLocation
}

// DeliveryAttempts returns how many final-delivery attempts have been made.
func (s *Shipment) DeliveryAttempts() int {
	return s.deliveryAttempts
}

// CreatedAt returns the registration timestamp.
func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// UpdatedAt returns the timestamp of the last mutation.
func (s *Shipment) UpdatedAt() time.Time {
	return s.updatedAt
}

// EstimatedDelivery returns the estimated delivery timestamp, or nil if unset.
func (s *Shipment) EstimatedDelivery() *time.Time {
	return s.estimatedAt
}

// ActualDelivery returns the actual delivery timestamp, or nil until delivered.
func (s *Shipment) ActualDelivery() *time.Time {
	return s.deliveredAt
}

// Version returns the optimistic-concurrency version stamp.
func (s *Shipment) Version() int {
	return s.version
}

// BumpVersion advances the version stamp. Called by repositories after a
// successful compare-and-swap commit, never by application code.
func (s *Shipment) BumpVersion() {
	s.version++
}

// SetEstimatedDelivery records the estimated delivery timestamp.
func (s *Shipment) SetEstimatedDelivery(estimatedAt time.Time) {
	s.estimatedAt = &estimatedAt
}

// Assign records a weak reference to the courier handling this shipment.
// Availability checks belong to the CourierAssignmentService; the aggregate
// only refuses assignment once it has reached a terminal status.
func (s *Shipment) Assign(courierID kernel.UUID) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := courierID.Validate(); err != nil {
		return err
	}
	if s.status.IsTerminal() {
		return errs.NewIllegalTransitionErrorWithCause(
			s.status.String(), s.status.String(),
			errors.New("cannot assign a courier to a shipment in a terminal status"),
		)
	}

	s.courierID = &courierID
	return nil
}

// TransitionTo moves the shipment to target and appends event to the timeline.
//
// Contract:
//   - target == current status: no-op success, nothing is appended (tolerates
//     duplicate webhook-style calls)
//   - target outside the legal-successor set, or current status terminal:
//     *errs.IllegalTransitionError
//   - event.Status() must equal target, so the newest event always matches the
//     shipment status
//   - event timestamps must be monotonic: *errs.OutOfOrderEventError otherwise
//   - target == PickedUp requires an assigned courier
//   - target == Returned requires deliveryAttempts >= ReturnAttemptThreshold
//   - target == OutForDelivery increments deliveryAttempts on each attempt
//   - target == Delivered stamps ActualDelivery with the event timestamp
//
// All checks run before any field is written, so a failed transition leaves
// the shipment untouched and the status update plus timeline append are
// observed as one atomic unit.
func (s *Shipment) TransitionTo(target Status, event TrackingEvent) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if target == s.status {
		return nil
	}

	newStatus, err := s.status.TransitionTo(target)
	if err != nil {
		return err
	}

	if target == PickedUp && s.courierID == nil {
		return errs.NewIllegalTransitionErrorWithCause(
			s.status.String(), target.String(), ErrCourierIsRequiredForPickup)
	}
	if target == Returned && s.deliveryAttempts < ReturnAttemptThreshold {
		return errs.NewIllegalTransitionErrorWithCause(
			s.status.String(), target.String(), ErrAttemptThresholdNotReached)
	}

	if err = event.Validate(); err != nil {
		return err
	}
	if event.Status() != target {
		return errs.NewValueIsInvalidErrorWithCause(
			"event status",
			fmt.Errorf("event carries %s but transition targets %s", event.Status(), target),
		)
	}
	if err = s.validateEventOrder(event); err != nil {
		return err
	}

	// A retry is an out_for_delivery entry with a prior attempt already on the
	// timeline; it must be detected before the new event is appended.
	retry := target == OutForDelivery && s.hasPriorAttempt()

	// All checks passed; apply the transition as one unit.
	s.status = newStatus
	s.events = append(s.events, event)
	s.currentLocation = event.Location()
	s.updatedAt = event.Timestamp()

	if retry {
		s.deliveryAttempts++
	}
	if target == Delivered {
		deliveredAt := event.Timestamp()
		s.deliveredAt = &deliveredAt
	}

	return nil
}

// AppendEvent records a timeline annotation that does not change the status,
// such as a facility scan or a location update en route. The event must carry
// the current status so the newest event always matches the shipment, and its
// timestamp must not precede the timeline tail.
func (s *Shipment) AppendEvent(event TrackingEvent) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := event.Validate(); err != nil {
		return err
	}
	if event.Status() != s.status {
		return errs.NewValueIsInvalidErrorWithCause(
			"event status",
			fmt.Errorf("event carries %s but shipment is %s", event.Status(), s.status),
		)
	}
	if err := s.validateEventOrder(event); err != nil {
		return err
	}

	s.events = append(s.events, event)
	s.currentLocation = event.Location()
	s.updatedAt = event.Timestamp()
	return nil
}

// Timeline returns a fresh read-only view of the tracking events in ascending
// timestamp order. Each call copies the underlying immutable log, so callers
// can range over or re-slice the result without affecting the shipment.
func (s *Shipment) Timeline() []TrackingEvent {
	events := make([]TrackingEvent, len(s.events))
	copy(events, s.events)
	return events
}

// LastEvent returns the most recent tracking event and whether one exists.
func (s *Shipment) LastEvent() (TrackingEvent, bool) {
	if len(s.events) == 0 {
		return TrackingEvent{}, false
	}
	return s.events[len(s.events)-1], true
}

// hasPriorAttempt reports whether the timeline already records an
// out_for_delivery entry, i.e. at least one delivery attempt was made.
func (s *Shipment) hasPriorAttempt() bool {
	for _, event := range s.events {
		if event.Status() == OutForDelivery {
			return true
		}
	}
	return false
}

func (s *Shipment) validateEventOrder(event TrackingEvent) error {
	last, ok := s.LastEvent()
	if ok && event.Timestamp().Before(last.Timestamp()) {
		return errs.NewOutOfOrderEventError(last.Timestamp(), event.Timestamp())
	}
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setTrackingCode(trackingCode string) error {
	if trackingCode == "" {
		return ErrTrackingCodeIsRequired
	}
	s.trackingCode = trackingCode
	return nil
}

func (s *Shipment) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	s.clientID = clientID
	return nil
}

func (s *Shipment) setSender(sender kernel.Contact) error {
	if err := sender.Validate(); err != nil {
		return err
	}
	s.sender = sender
	return nil
}

func (s *Shipment) setRecipient(recipient kernel.Contact) error {
	if err := recipient.Validate(); err != nil {
		return err
	}
	s.recipient = recipient
	return nil
}

func (s *Shipment) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%v is not greater than 0", weight))
	}
	s.weight = weight
	return nil
}

func (s *Shipment) setDimensions(dimensions kernel.Dimensions) error {
	if err := dimensions.Validate(); err != nil {
		return err
	}
	s.dimensions = dimensions
	return nil
}

func (s *Shipment) setServiceTier(tier ServiceTier) error {
	if err := tier.Validate(); err != nil {
		return err
	}
	s.serviceTier = tier
	return nil
}

func (s *Shipment) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	s.priority = priority
	return nil
}

package shipment_test

import (
	"testing"
	"time"

	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/core/domain/model/shipment"
	"courierdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContact(t *testing.T, name string) kernel.Contact {
	t.Helper()
	contact, err := kernel.NewContact(name, "+1-555-0100", "221B Baker Street")
	require.NoError(t, err)
	return contact
}

func testShipment(t *testing.T) *shipment.Shipment {
	t.Helper()

	id := kernel.NewUUID()
	dims, err := kernel.NewDimensions(30, 20, 10)
	require.NoError(t, err)
	declared, err := kernel.NewMoneyFromString("150.00")
	require.NoError(t, err)

	s, err := shipment.NewShipment(
		id,
		shipment.NewTrackingCode(id),
		kernel.NewUUID(),
		testContact(t, "Ada Sender"),
		testContact(t, "Bob Recipient"),
		2.5,
		dims,
		declared,
		shipment.Express,
		shipment.Normal,
		time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return s
}

func event(t *testing.T, status shipment.Status, at time.Time) shipment.TrackingEvent {
	t.Helper()
	e, err := shipment.NewTrackingEvent(status, "Sorting Hub", "scan", at, "")
	require.NoError(t, err)
	return e
}

// advanceTo walks the shipment along the happy path up to target.
func advanceTo(t *testing.T, s *shipment.Shipment, target shipment.Status) time.Time {
	t.Helper()

	path := []shipment.Status{shipment.PickedUp, shipment.InTransit, shipment.OutForDelivery, shipment.Delivered}
	at := s.CreatedAt()
	require.NoError(t, s.Assign(kernel.NewUUID()))
	for _, status := range path {
		at = at.Add(time.Hour)
		require.NoError(t, s.TransitionTo(status, event(t, status, at)))
		if status == target {
			break
		}
	}
	return at
}

func TestNewShipment(t *testing.T) {
	t.Run("should create a pending shipment with an empty timeline", func(t *testing.T) {
		s := testShipment(t)

		require.NoError(t, s.Validate())
		assert.Equal(t, shipment.Pending, s.Status())
		assert.Nil(t, s.Courier())
		assert.Empty(t, s.Timeline())
		assert.Zero(t, s.DeliveryAttempts())
		assert.Equal(t, 1, s.Version())
		assert.Equal(t, s.Sender().Address(), s.CurrentLocation())
	})

	t.Run("should fail with non-positive weight", func(t *testing.T) {
		id := kernel.NewUUID()
		dims, _ := kernel.NewDimensions(30, 20, 10)

		_, err := shipment.NewShipment(
			id, shipment.NewTrackingCode(id), kernel.NewUUID(),
			testContact(t, "Ada"), testContact(t, "Bob"),
			0, dims, kernel.ZeroMoney(),
			shipment.Standard, shipment.Normal, time.Now(),
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "weight")
	})

	t.Run("should fail with empty tracking code", func(t *testing.T) {
		dims, _ := kernel.NewDimensions(30, 20, 10)

		_, err := shipment.NewShipment(
			kernel.NewUUID(), "", kernel.NewUUID(),
			testContact(t, "Ada"), testContact(t, "Bob"),
			1, dims, kernel.ZeroMoney(),
			shipment.Standard, shipment.Normal, time.Now(),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, shipment.ErrTrackingCodeIsRequired)
	})
}

func TestShipmentTransitionTo(t *testing.T) {
	t.Run("should walk the happy path through to delivered", func(t *testing.T) {
		s := testShipment(t)

		deliveredAt := advanceTo(t, s, shipment.Delivered)

		assert.Equal(t, shipment.Delivered, s.Status())
		assert.Len(t, s.Timeline(), 4)
		require.NotNil(t, s.ActualDelivery())
		assert.Equal(t, deliveredAt, *s.ActualDelivery())

		last, ok := s.LastEvent()
		require.True(t, ok)
		assert.Equal(t, shipment.Delivered, last.Status())
	})

	t.Run("should reject skipping intermediate statuses", func(t *testing.T) {
		s := testShipment(t)
		require.NoError(t, s.Assign(kernel.NewUUID()))

		err := s.TransitionTo(shipment.Delivered, event(t, shipment.Delivered, time.Now()))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrIllegalTransition)
		assert.Equal(t, shipment.Pending, s.Status())
		assert.Empty(t, s.Timeline())
	})

	t.Run("should treat a repeated target as a no-op", func(t *testing.T) {
		s := testShipment(t)
		advanceTo(t, s, shipment.InTransit)
		timelineLen := len(s.Timeline())

		err := s.TransitionTo(shipment.InTransit, event(t, shipment.InTransit, time.Now()))

		require.NoError(t, err)
		assert.Len(t, s.Timeline(), timelineLen)
	})

	t.Run("should reject pickup without an assigned courier", func(t *testing.T) {
		s := testShipment(t)

		err := s.TransitionTo(shipment.PickedUp, event(t, shipment.PickedUp, time.Now()))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrIllegalTransition)
		assert.ErrorIs(t, err, shipment.ErrCourierIsRequiredForPickup)
	})

	t.Run("should reject transitions out of a terminal status", func(t *testing.T) {
		s := testShipment(t)
		at := advanceTo(t, s, shipment.Delivered)

		err := s.TransitionTo(shipment.InTransit, event(t, shipment.InTransit, at.Add(time.Hour)))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrIllegalTransition)
	})

	t.Run("should reject an event whose status does not match the target", func(t *testing.T) {
		s := testShipment(t)
		require.NoError(t, s.Assign(kernel.NewUUID()))

		err := s.TransitionTo(shipment.PickedUp, event(t, shipment.InTransit, time.Now()))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, shipment.Pending, s.Status())
	})

	t.Run("should reject an event older than the timeline tail", func(t *testing.T) {
		s := testShipment(t)
		at := advanceTo(t, s, shipment.InTransit)

		err := s.TransitionTo(shipment.OutForDelivery, event(t, shipment.OutForDelivery, at.Add(-time.Minute)))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrOutOfOrderEvent)
		assert.Equal(t, shipment.InTransit, s.Status())
	})

	t.Run("should allow cancelling a pending shipment", func(t *testing.T) {
		s := testShipment(t)

		err := s.TransitionTo(shipment.Cancelled, event(t, shipment.Cancelled, time.Now()))

		require.NoError(t, err)
		assert.Equal(t, shipment.Cancelled, s.Status())
		assert.True(t, s.Status().IsTerminal())
	})
}

func TestShipmentDeliveryAttempts(t *testing.T) {
	// failAttempt cycles out_for_delivery -> in_transit, which counts as one
	// failed attempt once the shipment comes out for delivery again.
	failAttempt := func(t *testing.T, s *shipment.Shipment, at time.Time) time.Time {
		t.Helper()
		at = at.Add(time.Hour)
		require.NoError(t, s.TransitionTo(shipment.InTransit, event(t, shipment.InTransit, at)))
		at = at.Add(time.Hour)
		require.NoError(t, s.TransitionTo(shipment.OutForDelivery, event(t, shipment.OutForDelivery, at)))
		return at
	}

	t.Run("should count retries and allow return after the threshold", func(t *testing.T) {
		s := testShipment(t)
		at := advanceTo(t, s, shipment.OutForDelivery)
		assert.Zero(t, s.DeliveryAttempts())

		for range shipment.ReturnAttemptThreshold {
			at = failAttempt(t, s, at)
		}
		assert.Equal(t, shipment.ReturnAttemptThreshold, s.DeliveryAttempts())

		err := s.TransitionTo(shipment.Returned, event(t, shipment.Returned, at.Add(time.Hour)))

		require.NoError(t, err)
		assert.Equal(t, shipment.Returned, s.Status())
	})

	t.Run("should reject return before the threshold", func(t *testing.T) {
		s := testShipment(t)
		at := advanceTo(t, s, shipment.OutForDelivery)
		at = failAttempt(t, s, at)

		err := s.TransitionTo(shipment.Returned, event(t, shipment.Returned, at.Add(time.Hour)))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrIllegalTransition)
		assert.ErrorIs(t, err, shipment.ErrAttemptThresholdNotReached)
		assert.Equal(t, shipment.OutForDelivery, s.Status())
	})
}

func TestShipmentAppendEvent(t *testing.T) {
	t.Run("should append an annotation carrying the current status", func(t *testing.T) {
		s := testShipment(t)
		at := advanceTo(t, s, shipment.InTransit)

		scan, err := shipment.NewTrackingEvent(
			shipment.InTransit, "Regional Hub", "arrived at facility", at.Add(time.Minute), "")
		require.NoError(t, err)

		require.NoError(t, s.AppendEvent(scan))
		assert.Equal(t, shipment.InTransit, s.Status())
		assert.Equal(t, "Regional Hub", s.CurrentLocation())
		assert.Len(t, s.Timeline(), 3)
	})

	t.Run("should reject an annotation carrying a different status", func(t *testing.T) {
		s := testShipment(t)
		advanceTo(t, s, shipment.InTransit)

		err := s.AppendEvent(event(t, shipment.Delivered, time.Now()))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestShipmentAssign(t *testing.T) {
	t.Run("should record a weak reference to the courier", func(t *testing.T) {
		s := testShipment(t)
		courierID := kernel.NewUUID()

		require.NoError(t, s.Assign(courierID))
		require.NotNil(t, s.Courier())
		assert.True(t, s.Courier().IsEqual(courierID))
	})

	t.Run("should reject assignment in a terminal status", func(t *testing.T) {
		s := testShipment(t)
		require.NoError(t, s.TransitionTo(shipment.Cancelled, event(t, shipment.Cancelled, time.Now())))

		err := s.Assign(kernel.NewUUID())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrIllegalTransition)
	})
}

func TestShipmentTimelineIsolation(t *testing.T) {
	t.Run("should hand out copies of the timeline", func(t *testing.T) {
		s := testShipment(t)
		advanceTo(t, s, shipment.InTransit)

		timeline := s.Timeline()
		timeline[0] = shipment.TrackingEvent{}

		fresh := s.Timeline()
		assert.Equal(t, shipment.PickedUp, fresh[0].Status())
	})
}

func TestUninitializedShipment(t *testing.T) {
	t.Run("should reject operations on a zero-value shipment", func(t *testing.T) {
		var s shipment.Shipment

		err := s.TransitionTo(shipment.PickedUp, shipment.TrackingEvent{})

		require.Error(t, err)
		assert.ErrorIs(t, err, shipment.ErrShipmentIsNotConstructed)
	})
}

package services_test

import (
	"testing"
	"time"

	"courierdesk/internal/core/domain/model/courier"
	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/core/domain/model/shipment"
	"courierdesk/internal/core/domain/services"
	"courierdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testShipment(t *testing.T) *shipment.Shipment {
	t.Helper()

	id := kernel.NewUUID()
	sender, err := kernel.NewContact("Ada Sender", "+1-555-0100", "221B Baker Street")
	require.NoError(t, err)
	recipient, err := kernel.NewContact("Bob Recipient", "+1-555-0101", "742 Evergreen Terrace")
	require.NoError(t, err)
	dims, err := kernel.NewDimensions(30, 20, 10)
	require.NoError(t, err)

	s, err := shipment.NewShipment(
		id, shipment.NewTrackingCode(id), kernel.NewUUID(),
		sender, recipient, 2.5, dims, kernel.ZeroMoney(),
		shipment.Standard, shipment.Normal, time.Now(),
	)
	require.NoError(t, err)
	return s
}

func testCourier(t *testing.T, name string, status courier.Status) *courier.Courier {
	t.Helper()

	contact, err := kernel.NewContact(name, "+1-555-0199", "12 Depot Lane")
	require.NoError(t, err)
	c, err := courier.NewCourier(kernel.NewUUID(), contact, "bike")
	require.NoError(t, err)
	require.NoError(t, c.SetStatus(status))
	return c
}

func TestAssign(t *testing.T) {
	service := services.NewCourierAssignmentService()

	t.Run("should attach an available courier to the shipment", func(t *testing.T) {
		shp := testShipment(t)
		c := testCourier(t, "Grace", courier.Available)

		require.NoError(t, service.Assign(shp, c))
		require.NotNil(t, shp.Courier())
		assert.True(t, shp.Courier().IsEqual(c.ID()))
	})

	t.Run("should allow assigning a busy courier", func(t *testing.T) {
		shp := testShipment(t)
		c := testCourier(t, "Grace", courier.Busy)

		require.NoError(t, service.Assign(shp, c))
	})

	t.Run("should refuse an offline courier and leave the shipment untouched", func(t *testing.T) {
		shp := testShipment(t)
		c := testCourier(t, "Grace", courier.Offline)

		err := service.Assign(shp, c)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrCourierUnavailable)
		assert.Nil(t, shp.Courier())
	})
}

func TestDispatch(t *testing.T) {
	service := services.NewCourierAssignmentService()

	t.Run("should pick the candidate with the lightest workload", func(t *testing.T) {
		shp := testShipment(t)
		loaded := testCourier(t, "Loaded", courier.Busy)
		idle := testCourier(t, "Idle", courier.Available)
		workload := map[string]int{
			loaded.ID().String(): 3,
			idle.ID().String():   0,
		}

		chosen, err := service.Dispatch(shp, []*courier.Courier{loaded, idle}, workload)

		require.NoError(t, err)
		assert.True(t, chosen.IsEqual(idle))
		assert.True(t, shp.Courier().IsEqual(idle.ID()))
	})

	t.Run("should break ties by candidate order", func(t *testing.T) {
		shp := testShipment(t)
		first := testCourier(t, "First", courier.Available)
		second := testCourier(t, "Second", courier.Available)

		chosen, err := service.Dispatch(shp, []*courier.Courier{first, second}, map[string]int{})

		require.NoError(t, err)
		assert.True(t, chosen.IsEqual(first))
	})

	t.Run("should skip offline candidates", func(t *testing.T) {
		shp := testShipment(t)
		offline := testCourier(t, "Offline", courier.Offline)
		busy := testCourier(t, "Busy", courier.Busy)
		workload := map[string]int{
			offline.ID().String(): 0,
			busy.ID().String():    5,
		}

		chosen, err := service.Dispatch(shp, []*courier.Courier{offline, busy}, workload)

		require.NoError(t, err)
		assert.True(t, chosen.IsEqual(busy))
	})

	t.Run("should fail when every candidate is offline", func(t *testing.T) {
		shp := testShipment(t)
		offline := testCourier(t, "Offline", courier.Offline)

		_, err := service.Dispatch(shp, []*courier.Courier{offline}, map[string]int{})

		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrNoCourierCandidates)
		assert.Nil(t, shp.Courier())
	})
}

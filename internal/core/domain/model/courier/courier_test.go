package courier_test

import (
	"testing"

	"courierdesk/internal/core/domain/model/courier"
	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCourier(t *testing.T) *courier.Courier {
	t.Helper()

	contact, err := kernel.NewContact("Grace Rider", "+1-555-0199", "12 Depot Lane")
	require.NoError(t, err)
	c, err := courier.NewCourier(kernel.NewUUID(), contact, "bike")
	require.NoError(t, err)
	return c
}

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestNewCourier(t *testing.T) {
	t.Run("should create an available courier with zeroed stats", func(t *testing.T) {
		c := testCourier(t)

		require.NoError(t, c.Validate())
		assert.Equal(t, courier.Available, c.Status())
		assert.Zero(t, c.TotalDeliveries())
		assert.Zero(t, c.Rating())
		assert.True(t, c.MonthlyEarnings().IsZero())
		assert.True(t, c.IsAssignable())
	})

	t.Run("should fail with an empty vehicle", func(t *testing.T) {
		contact, err := kernel.NewContact("Grace Rider", "+1-555-0199", "12 Depot Lane")
		require.NoError(t, err)

		_, err = courier.NewCourier(kernel.NewUUID(), contact, "")

		require.Error(t, err)
	})
}

func TestCourierSetStatus(t *testing.T) {
	t.Run("should accept any declared availability status", func(t *testing.T) {
		c := testCourier(t)

		require.NoError(t, c.SetStatus(courier.Busy))
		assert.True(t, c.IsAssignable())

		require.NoError(t, c.SetStatus(courier.Offline))
		assert.False(t, c.IsAssignable())

		require.NoError(t, c.SetStatus(courier.Available))
		assert.True(t, c.IsAssignable())
	})

	t.Run("should reject an undeclared status value", func(t *testing.T) {
		c := testCourier(t)

		err := c.SetStatus(courier.Status(42))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestCourierRecordDelivery(t *testing.T) {
	t.Run("should fold ratings into a running average", func(t *testing.T) {
		c := testCourier(t)

		require.NoError(t, c.RecordDelivery(money(t, "10.00"), 5))
		require.NoError(t, c.RecordDelivery(money(t, "15.50"), 4))

		assert.Equal(t, 2, c.TotalDeliveries())
		assert.InDelta(t, 4.5, c.Rating(), 1e-9)
		assert.Equal(t, "25.50", c.MonthlyEarnings().StringFixed())
	})

	t.Run("should reject ratings outside 0..5", func(t *testing.T) {
		c := testCourier(t)

		err := c.RecordDelivery(money(t, "10.00"), 5.5)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Zero(t, c.TotalDeliveries())
	})

	t.Run("should reset monthly earnings without touching stats", func(t *testing.T) {
		c := testCourier(t)
		require.NoError(t, c.RecordDelivery(money(t, "10.00"), 5))

		c.ResetMonthlyEarnings()

		assert.True(t, c.MonthlyEarnings().IsZero())
		assert.Equal(t, 1, c.TotalDeliveries())
		assert.InDelta(t, 5, c.Rating(), 1e-9)
	})
}

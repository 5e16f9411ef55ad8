package kernel_test

import (
	"testing"

	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromString(t *testing.T) {
	t.Run("should parse a valid decimal string", func(t *testing.T) {
		m, err := kernel.NewMoneyFromString("150.00")

		require.NoError(t, err)
		assert.Equal(t, "150.00", m.StringFixed())
	})

	t.Run("should fail on a malformed string", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("not-a-number")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail on a negative amount", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("-1.00")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoneyArithmetic(t *testing.T) {
	t.Run("should multiply unit price by quantity exactly", func(t *testing.T) {
		price, _ := kernel.NewMoneyFromString("50.00")

		total := price.MulInt(3)

		assert.Equal(t, "150.00", total.StringFixed())
	})

	t.Run("should apply a fractional rate without intermediate rounding", func(t *testing.T) {
		amount, _ := kernel.NewMoneyFromString("150.00")

		tax := amount.MulRate(0.15)

		assert.Equal(t, "22.50", tax.StringFixed())
		assert.Equal(t, "172.50", amount.Add(tax).StringFixed())
	})

	t.Run("should keep sub-cent precision until the boundary", func(t *testing.T) {
		amount, _ := kernel.NewMoneyFromString("0.10")

		tax := amount.MulRate(0.15) // 0.015, exact

		assert.Equal(t, "0.015", tax.String())
		assert.Equal(t, "0.02", tax.StringFixed())
	})

	t.Run("zero value is a valid zero amount", func(t *testing.T) {
		var m kernel.Money

		assert.True(t, m.IsZero())
		assert.Equal(t, "0.00", m.StringFixed())
	})
}

func TestNewContact(t *testing.T) {
	t.Run("should create contact with all fields present", func(t *testing.T) {
		c, err := kernel.NewContact("Acme Ltd", "+1-555-0101", "12 Dock St")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "Acme Ltd", c.Name())
		assert.Equal(t, "+1-555-0101", c.Phone())
		assert.Equal(t, "12 Dock St", c.Address())
	})

	t.Run("should join errors for every missing field", func(t *testing.T) {
		_, err := kernel.NewContact("", "", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "contact name")
		assert.Contains(t, err.Error(), "contact phone")
		assert.Contains(t, err.Error(), "contact address")
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var c kernel.Contact

		require.Error(t, c.Validate())
	})
}

func TestNewDimensions(t *testing.T) {
	t.Run("should create dimensions with positive sides", func(t *testing.T) {
		d, err := kernel.NewDimensions(30, 20, 10)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.InDelta(t, 6000.0, d.Volume(), 0.001)
	})

	t.Run("should fail with a non-positive side", func(t *testing.T) {
		_, err := kernel.NewDimensions(30, 0, 10)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

package client_test

import (
	"testing"

	"courierdesk/internal/core/domain/model/client"
	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T) *client.Client {
	t.Helper()

	contact, err := kernel.NewContact("Acme Corp", "+1-555-0123", "1 Industrial Way")
	require.NoError(t, err)
	c, err := client.NewClient(kernel.NewUUID(), contact)
	require.NoError(t, err)
	return c
}

func TestNewClient(t *testing.T) {
	t.Run("should create a client awaiting approval", func(t *testing.T) {
		c := testClient(t)

		require.NoError(t, c.Validate())
		assert.Equal(t, client.PendingApproval, c.Status())
		assert.Equal(t, 1, c.Version())
	})

	t.Run("should fail with an invalid contact", func(t *testing.T) {
		var contact kernel.Contact

		_, err := client.NewClient(kernel.NewUUID(), contact)

		require.Error(t, err)
	})
}

func TestClientSetStatus(t *testing.T) {
	t.Run("should move between declared statuses", func(t *testing.T) {
		c := testClient(t)

		require.NoError(t, c.SetStatus(client.Active))
		assert.Equal(t, client.Active, c.Status())

		require.NoError(t, c.SetStatus(client.Inactive))
		assert.Equal(t, client.Inactive, c.Status())
	})

	t.Run("should reject an undeclared status value", func(t *testing.T) {
		c := testClient(t)

		err := c.SetStatus(client.Status(42))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

package queries_test

import (
	"context"
	"errors"
	"testing"

	"courierdesk/internal/adapters/out/inmem"
	"courierdesk/internal/core/application/usecases/queries"
	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTimelineCache records Set calls and serves a canned view, optionally
// failing every Get to simulate a cache outage.
type stubTimelineCache struct {
	views  map[string]queries.GetTimelineQueryResponse
	getErr error
	sets   int
}

func newStubTimelineCache() *stubTimelineCache {
	return &stubTimelineCache{views: make(map[string]queries.GetTimelineQueryResponse)}
}

func (c *stubTimelineCache) Get(_ context.Context, trackingCode string) (queries.GetTimelineQueryResponse, bool, error) {
	if c.getErr != nil {
		return queries.GetTimelineQueryResponse{}, false, c.getErr
	}
	view, ok := c.views[trackingCode]
	return view, ok, nil
}

func (c *stubTimelineCache) Set(_ context.Context, view queries.GetTimelineQueryResponse) error {
	c.sets++
	c.views[view.TrackingCode] = view
	return nil
}

func TestGetTimelineQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()

	t.Run("should serve a cache hit without touching storage", func(t *testing.T) {
		cache := newStubTimelineCache()
		cached := queries.GetTimelineQueryResponse{TrackingCode: "CD-CACHEDONLY1", Status: "in_transit"}
		cache.views[cached.TrackingCode] = cached

		// empty registry: a fallthrough would fail with not found
		handler := queries.NewGetTimelineQueryHandler(inmem.NewRegistry().ShipmentRepository(), cache)
		q, err := queries.NewGetTimelineQuery(cached.TrackingCode)
		require.NoError(t, err)

		view, err := handler.Handle(ctx, q)

		require.NoError(t, err)
		assert.Equal(t, cached, view)
		assert.Zero(t, cache.sets)
	})

	t.Run("should load on a miss and repopulate the cache", func(t *testing.T) {
		registry := inmem.NewRegistry()
		shp := seedShipment(t, registry, kernel.NewUUID(), "Rita Reed", 2.0)
		cache := newStubTimelineCache()

		handler := queries.NewGetTimelineQueryHandler(registry.ShipmentRepository(), cache)
		q, err := queries.NewGetTimelineQuery(shp.TrackingCode())
		require.NoError(t, err)

		view, err := handler.Handle(ctx, q)

		require.NoError(t, err)
		assert.Equal(t, shp.TrackingCode(), view.TrackingCode)
		assert.Equal(t, shp.Status().String(), view.Status)
		assert.Equal(t, "Rita Reed", view.RecipientName)
		assert.Equal(t, 1, cache.sets)
		assert.Contains(t, cache.views, shp.TrackingCode())
	})

	t.Run("should treat a cache error as a miss", func(t *testing.T) {
		registry := inmem.NewRegistry()
		shp := seedShipment(t, registry, kernel.NewUUID(), "Sam Stone", 1.5)
		cache := newStubTimelineCache()
		cache.getErr = errors.New("connection refused")

		handler := queries.NewGetTimelineQueryHandler(registry.ShipmentRepository(), cache)
		q, err := queries.NewGetTimelineQuery(shp.TrackingCode())
		require.NoError(t, err)

		view, err := handler.Handle(ctx, q)

		require.NoError(t, err)
		assert.Equal(t, shp.TrackingCode(), view.TrackingCode)
	})

	t.Run("should work without a cache", func(t *testing.T) {
		registry := inmem.NewRegistry()
		shp := seedShipment(t, registry, kernel.NewUUID(), "Tess Tran", 3.0)

		handler := queries.NewGetTimelineQueryHandler(registry.ShipmentRepository(), nil)
		q, err := queries.NewGetTimelineQuery(shp.TrackingCode())
		require.NoError(t, err)

		view, err := handler.Handle(ctx, q)

		require.NoError(t, err)
		assert.Equal(t, shp.TrackingCode(), view.TrackingCode)
	})

	t.Run("should fail for an unknown tracking code", func(t *testing.T) {
		handler := queries.NewGetTimelineQueryHandler(inmem.NewRegistry().ShipmentRepository(), nil)
		q, err := queries.NewGetTimelineQuery("CD-DOESNOTEXIST")
		require.NoError(t, err)

		_, err = handler.Handle(ctx, q)

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject an empty tracking code", func(t *testing.T) {
		_, err := queries.NewGetTimelineQuery("")

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

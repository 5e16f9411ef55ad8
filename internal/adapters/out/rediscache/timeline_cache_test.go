package rediscache_test

import (
	"testing"
	"time"

	"courierdesk/internal/adapters/out/rediscache"
	"courierdesk/internal/core/application/usecases/queries"
	"courierdesk/internal/pkg/errs"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCache(t *testing.T, ttl time.Duration) (*rediscache.TimelineCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cache, err := rediscache.NewTimelineCache(client, ttl)
	require.NoError(t, err)
	return cache, server
}

func testView() queries.GetTimelineQueryResponse {
	return queries.GetTimelineQueryResponse{
		TrackingCode:    "CD-4F9A2B7C11D0",
		Status:          "in_transit",
		CurrentLocation: "Central Hub",
		RecipientName:   "Rita Reed",
		Events: []queries.TimelineEventResponse{
			{
				Status:    "picked_up",
				Location:  "12 Origin Way",
				Timestamp: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
			},
		},
	}
}

func TestNewTimelineCache(t *testing.T) {
	t.Run("should require a client", func(t *testing.T) {
		_, err := rediscache.NewTimelineCache(nil, rediscache.DefaultTTL)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestTimelineCache_SetAndGet(t *testing.T) {
	ctx := t.Context()
	cache, _ := testCache(t, rediscache.DefaultTTL)
	view := testView()

	require.NoError(t, cache.Set(ctx, view))

	got, ok, err := cache.Get(ctx, view.TrackingCode)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, view.TrackingCode, got.TrackingCode)
	assert.Equal(t, view.Status, got.Status)
	require.Len(t, got.Events, 1)
	assert.Equal(t, "picked_up", got.Events[0].Status)
	assert.True(t, view.Events[0].Timestamp.Equal(got.Events[0].Timestamp))
}

func TestTimelineCache_GetMiss(t *testing.T) {
	ctx := t.Context()
	cache, _ := testCache(t, rediscache.DefaultTTL)

	_, ok, err := cache.Get(ctx, "CD-DOESNOTEXIST")

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTimelineCache_EntryExpires(t *testing.T) {
	ctx := t.Context()
	cache, server := testCache(t, time.Second)
	view := testView()
	require.NoError(t, cache.Set(ctx, view))

	server.FastForward(2 * time.Second)

	_, ok, err := cache.Get(ctx, view.TrackingCode)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTimelineCache_CorruptedEntryIsDropped(t *testing.T) {
	ctx := t.Context()
	cache, server := testCache(t, rediscache.DefaultTTL)
	view := testView()
	key := "tracking:" + view.TrackingCode
	require.NoError(t, server.Set(key, "{not json"))

	_, ok, err := cache.Get(ctx, view.TrackingCode)

	require.NoError(t, err)
	assert.False(t, ok, "a broken entry must read as a miss")
	assert.False(t, server.Exists(key), "the broken entry must be evicted")
}

func TestTimelineCache_GetReportsServerErrors(t *testing.T) {
	ctx := t.Context()
	cache, server := testCache(t, rediscache.DefaultTTL)
	server.Close()

	_, ok, err := cache.Get(ctx, "CD-4F9A2B7C11D0")

	require.Error(t, err)
	assert.False(t, ok)
}

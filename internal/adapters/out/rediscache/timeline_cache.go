// Package rediscache provides the Redis-backed cache for public tracking
// views. The tracking page is the hottest read path in the system and its
// data only changes when a shipment mutates, so a short TTL keeps the cache
// honest without explicit invalidation.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"courierdesk/internal/core/application/usecases/queries"
	"courierdesk/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL bounds how stale a cached tracking view can get.
const DefaultTTL = 30 * time.Second

const keyPrefix = "tracking:"

// TimelineCache implements queries.TimelineCache on top of Redis.
type TimelineCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTimelineCache creates a tracking view cache over the given Redis client.
// A non-positive ttl falls back to DefaultTTL.
func NewTimelineCache(client *redis.Client, ttl time.Duration) (*TimelineCache, error) {
	if client == nil {
		return nil, errs.NewValueIsRequiredError("client")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &TimelineCache{
		client: client,
		ttl:    ttl,
	}, nil
}

// Get returns the cached tracking view for the code, reporting whether one
// was present. A decode failure counts as a miss: the stale entry is dropped
// and the caller falls through to storage.
func (c *TimelineCache) Get(ctx context.Context, trackingCode string) (queries.GetTimelineQueryResponse, bool, error) {
	raw, err := c.client.Get(ctx, keyPrefix+trackingCode).Bytes()
	if errors.Is(err, redis.Nil) {
		return queries.GetTimelineQueryResponse{}, false, nil
	}
	if err != nil {
		return queries.GetTimelineQueryResponse{}, false, err
	}

	var view queries.GetTimelineQueryResponse
	if err = json.Unmarshal(raw, &view); err != nil {
		_ = c.client.Del(ctx, keyPrefix+trackingCode).Err()
		return queries.GetTimelineQueryResponse{}, false, nil
	}

	return view, true, nil
}

// Set stores the tracking view under its tracking code with the cache TTL.
func (c *TimelineCache) Set(ctx context.Context, view queries.GetTimelineQueryResponse) error {
	raw, err := json.Marshal(view)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, keyPrefix+view.TrackingCode, raw, c.ttl).Err()
}

package queries

import (
	"context"

	"courierdesk/internal/core/domain/model/shipment"
	"courierdesk/internal/core/ports"
)

// TimelineCache caches public tracking views keyed by tracking code.
// A nil cache disables caching; lookups fall through to the repository.
// Cache errors are treated as misses so a cache outage never breaks tracking.
type TimelineCache interface {
	Get(ctx context.Context, trackingCode string) (GetTimelineQueryResponse, bool, error)
	Set(ctx context.Context, view GetTimelineQueryResponse) error
}

// GetTimelineQueryHandler serves the customer-facing tracking page.
// Reads go through the cache first; a miss loads the shipment by tracking
// code and repopulates the cache.
type GetTimelineQueryHandler struct {
	shipmentRepo ports.ShipmentRepository
	cache        TimelineCache
}

// NewGetTimelineQueryHandler creates a handler for tracking lookups.
// cache may be nil to bypass caching entirely.
func NewGetTimelineQueryHandler(shipmentRepo ports.ShipmentRepository, cache TimelineCache) GetTimelineQueryHandler {
	return GetTimelineQueryHandler{
		shipmentRepo: shipmentRepo,
		cache:        cache,
	}
}

// Handle executes the tracking lookup.
// Returns errs.ObjectNotFoundError for unknown tracking codes.
func (h GetTimelineQueryHandler) Handle(
	ctx context.Context,
	q GetTimelineQuery,
) (GetTimelineQueryResponse, error) {
	if err := q.Validate(); err != nil {
		return GetTimelineQueryResponse{}, err
	}

	if h.cache != nil {
		view, ok, err := h.cache.Get(ctx, q.TrackingCode())
		if err == nil && ok {
			return view, nil
		}
	}

	shp, err := h.shipmentRepo.GetByTrackingCode(ctx, q.TrackingCode())
	if err != nil {
		return GetTimelineQueryResponse{}, err
	}

	view := toTimelineResponse(shp)
	if h.cache != nil {
		_ = h.cache.Set(ctx, view)
	}

	return view, nil
}

func toTimelineResponse(shp *shipment.Shipment) GetTimelineQueryResponse {
	timeline := shp.Timeline()
	events := make([]TimelineEventResponse, 0, len(timeline))
	for _, event := range timeline {
		events = append(events, TimelineEventResponse{
			Status:      event.Status().String(),
			Location:    event.Location(),
			Description: event.Description(),
			CourierName: event.CourierName(),
			Timestamp:   event.Timestamp(),
		})
	}

	return GetTimelineQueryResponse{
		TrackingCode:      shp.TrackingCode(),
		Status:            shp.Status().String(),
		CurrentLocation:   shp.CurrentLocation(),
		RecipientName:     shp.Recipient().Name(),
		EstimatedDelivery: shp.EstimatedDelivery(),
		ActualDelivery:    shp.ActualDelivery(),
		Events:            events,
	}
}

package queries

import (
	"errors"
	"time"

	"courierdesk/internal/pkg/errs"
	"courierdesk/internal/pkg/guard"
)

var ErrGetTimelineQueryIsNotConstructed = errors.New(
	"GetTimelineQuery must be created via NewGetTimelineQuery constructor",
)

// GetTimelineQuery retrieves a shipment's public tracking view by its
// tracking code: current status, location and the full event timeline.
// This is the query behind the customer-facing tracking page.
//
// Example:
//
//	q, _ := NewGetTimelineQuery("CD-4F2A91C03B7D")
//	view, err := handler.Handle(ctx, q)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    return echo.NewHTTPError(http.StatusNotFound, "unknown tracking code")
//	}
type GetTimelineQuery struct {
	trackingCode string

	guard guard.ConstructorGuard
}

// NewGetTimelineQuery creates a tracking timeline query.
func NewGetTimelineQuery(trackingCode string) (GetTimelineQuery, error) {
	if trackingCode == "" {
		return GetTimelineQuery{}, errs.NewValueIsRequiredError("trackingCode")
	}

	return GetTimelineQuery{
		trackingCode: trackingCode,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTimelineQuery) Validate() error {
	return q.guard.Validate(ErrGetTimelineQueryIsNotConstructed)
}

// TrackingCode returns the tracking code to look up.
func (q GetTimelineQuery) TrackingCode() string {
	return q.trackingCode
}

// GetTimelineQueryResponse is the public tracking view of one shipment.
// The JSON shape doubles as the cache entry format.
type GetTimelineQueryResponse struct {
	TrackingCode      string                  `json:"trackingCode"`
	Status            string                  `json:"status"`
	CurrentLocation   string                  `json:"currentLocation"`
	RecipientName     string                  `json:"recipientName"`
	EstimatedDelivery *time.Time              `json:"estimatedDelivery,omitempty"`
	ActualDelivery    *time.Time              `json:"actualDelivery,omitempty"`
	Events            []TimelineEventResponse `json:"events"`
}

// TimelineEventResponse is one tracking event in the public view.
type TimelineEventResponse struct {
	Status      string    `json:"status"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	CourierName string    `json:"courierName,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

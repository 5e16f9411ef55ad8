// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases; listing
// queries run through the search/filter/sort/paginate pipeline.
package queries

import (
	"errors"
	"time"

	"courierdesk/internal/pkg/guard"
	"courierdesk/internal/pkg/query"
)

var ErrListShipmentsQueryIsNotConstructed = errors.New(
	"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
)

// ListShipmentsQuery retrieves a page of shipments for the back-office list.
// Supports free-text search over tracking code and contact names, filtering
// by status, service tier, priority and client, and sorting by any listed
// field.
//
// Example:
//
//	params := query.Params{
//	    Filters:   map[string]string{"status": "in_transit"},
//	    SortField: "createdAt",
//	    SortOrder: query.Desc,
//	    Page:      1,
//	    PageSize:  20,
//	}
//	q, _ := NewListShipmentsQuery(params)
//	page, err := handler.Handle(ctx, q)
type ListShipmentsQuery struct {
	params query.Params

	guard guard.ConstructorGuard
}

// NewListShipmentsQuery creates a shipment listing query.
// Field name validation is deferred to the pipeline.
func NewListShipmentsQuery(params query.Params) (ListShipmentsQuery, error) {
	return ListShipmentsQuery{
		params: params,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}

// Params returns the pipeline parameters.
func (q ListShipmentsQuery) Params() query.Params {
	return q.params
}

// ListShipmentsQueryResponse represents one shipment row in the read model.
type ListShipmentsQueryResponse struct {
	ID            string    `json:"id"`
	TrackingCode  string    `json:"trackingCode"`
	ClientID      string    `json:"clientId"`
	SenderName    string    `json:"senderName"`
	RecipientName string    `json:"recipientName"`
	Status        string    `json:"status"`
	ServiceTier   string    `json:"serviceTier"`
	Priority      string    `json:"priority"`
	Weight        float64   `json:"weight"`
	CourierID     string    `json:"courierId,omitempty"`
	Location      string    `json:"location"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

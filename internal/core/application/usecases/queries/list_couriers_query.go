package queries

import (
	"errors"

	"courierdesk/internal/pkg/guard"
	"courierdesk/internal/pkg/query"
)

var ErrListCouriersQueryIsNotConstructed = errors.New(
	"ListCouriersQuery must be created via NewListCouriersQuery constructor",
)

// ListCouriersQuery retrieves a page of couriers with their derived workload:
// the number of active shipments currently assigned to each courier, computed
// by a reverse lookup rather than stored on the courier.
type ListCouriersQuery struct {
	params query.Params

	guard guard.ConstructorGuard
}

// NewListCouriersQuery creates a courier listing query.
func NewListCouriersQuery(params query.Params) (ListCouriersQuery, error) {
	return ListCouriersQuery{
		params: params,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListCouriersQuery) Validate() error {
	return q.guard.Validate(ErrListCouriersQueryIsNotConstructed)
}

// Params returns the pipeline parameters.
func (q ListCouriersQuery) Params() query.Params {
	return q.params
}

// ListCouriersQueryResponse represents one courier row in the read model.
// Workload and earnings are derived at read time.
type ListCouriersQueryResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Phone           string  `json:"phone"`
	Status          string  `json:"status"`
	Vehicle         string  `json:"vehicle"`
	Rating          float64 `json:"rating"`
	TotalDeliveries int     `json:"totalDeliveries"`
	Workload        int     `json:"workload"`
	MonthlyEarnings string  `json:"monthlyEarnings"`
}

package queries

import (
	"errors"

	"courierdesk/internal/pkg/guard"
	"courierdesk/internal/pkg/query"
)

var ErrListClientsQueryIsNotConstructed = errors.New(
	"ListClientsQuery must be created via NewListClientsQuery constructor",
)

// ListClientsQuery retrieves a page of client accounts with derived activity
// counters: total packages shipped and total amount spent on paid invoices.
// Counters are computed at read time, never stored on the client aggregate.
type ListClientsQuery struct {
	params query.Params

	guard guard.ConstructorGuard
}

// NewListClientsQuery creates a client listing query.
func NewListClientsQuery(params query.Params) (ListClientsQuery, error) {
	return ListClientsQuery{
		params: params,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListClientsQuery) Validate() error {
	return q.guard.Validate(ErrListClientsQueryIsNotConstructed)
}

// Params returns the pipeline parameters.
func (q ListClientsQuery) Params() query.Params {
	return q.params
}

// ListClientsQueryResponse represents one client row in the read model.
type ListClientsQueryResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Status        string `json:"status"`
	TotalPackages int    `json:"totalPackages"`
	TotalSpent    string `json:"totalSpent"`

	totalSpent float64
}

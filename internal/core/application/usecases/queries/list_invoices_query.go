package queries

import (
	"errors"
	"time"

	"courierdesk/internal/pkg/guard"
	"courierdesk/internal/pkg/query"
)

var ErrListInvoicesQueryIsNotConstructed = errors.New(
	"ListInvoicesQuery must be created via NewListInvoicesQuery constructor",
)

// ListInvoicesQuery retrieves a page of invoices with derived totals.
// Subtotal, tax and total are recomputed from line items on every read;
// stored totals do not exist.
type ListInvoicesQuery struct {
	params query.Params

	guard guard.ConstructorGuard
}

// NewListInvoicesQuery creates an invoice listing query.
func NewListInvoicesQuery(params query.Params) (ListInvoicesQuery, error) {
	return ListInvoicesQuery{
		params: params,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListInvoicesQuery) Validate() error {
	return q.guard.Validate(ErrListInvoicesQueryIsNotConstructed)
}

// Params returns the pipeline parameters.
func (q ListInvoicesQuery) Params() query.Params {
	return q.params
}

// ListInvoicesQueryResponse represents one invoice row in the read model.
// Monetary amounts are fixed to two decimal places at this presentation
// boundary.
type ListInvoicesQueryResponse struct {
	ID        string     `json:"id"`
	ClientID  string     `json:"clientId"`
	Status    string     `json:"status"`
	LineCount int        `json:"lineCount"`
	Amount    string     `json:"amount"`
	Tax       string     `json:"tax"`
	Total     string     `json:"total"`
	IssuedAt  time.Time  `json:"issuedAt"`
	DueAt     time.Time  `json:"dueAt"`
	PaidAt    *time.Time `json:"paidAt,omitempty"`

	total float64
}

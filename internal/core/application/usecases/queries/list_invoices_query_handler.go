package queries

import (
	"context"

	"courierdesk/internal/core/domain/model/invoice"
	"courierdesk/internal/core/ports"
	"courierdesk/internal/pkg/query"
)

var invoiceFields = query.Fields[ListInvoicesQueryResponse]{
	"clientId":  func(r ListInvoicesQueryResponse) query.Value { return query.String(r.ClientID) },
	"status":    func(r ListInvoicesQueryResponse) query.Value { return query.String(r.Status) },
	"lineCount": func(r ListInvoicesQueryResponse) query.Value { return query.Number(float64(r.LineCount)) },
	"total":     func(r ListInvoicesQueryResponse) query.Value { return query.Number(r.total) },
	"issuedAt": func(r ListInvoicesQueryResponse) query.Value {
		return query.Number(float64(r.IssuedAt.UnixNano()))
	},
	"dueAt": func(r ListInvoicesQueryResponse) query.Value {
		return query.Number(float64(r.DueAt.UnixNano()))
	},
}

// ListInvoicesQueryHandler serves the invoice list with recomputed totals.
type ListInvoicesQueryHandler struct {
	invoiceRepo ports.InvoiceRepository
}

// NewListInvoicesQueryHandler creates a handler for invoice listing queries.
func NewListInvoicesQueryHandler(invoiceRepo ports.InvoiceRepository) ListInvoicesQueryHandler {
	return ListInvoicesQueryHandler{invoiceRepo: invoiceRepo}
}

// Handle executes the invoice listing query.
func (h ListInvoicesQueryHandler) Handle(
	ctx context.Context,
	q ListInvoicesQuery,
) (query.Result[ListInvoicesQueryResponse], error) {
	if err := q.Validate(); err != nil {
		return query.Result[ListInvoicesQueryResponse]{}, err
	}

	invoices, err := h.invoiceRepo.GetAll(ctx)
	if err != nil {
		return query.Result[ListInvoicesQueryResponse]{}, err
	}

	rows := make([]ListInvoicesQueryResponse, 0, len(invoices))
	for _, inv := range invoices {
		rows = append(rows, toInvoiceResponse(inv))
	}

	return query.Apply(rows, invoiceFields, q.Params())
}

func toInvoiceResponse(inv *invoice.Invoice) ListInvoicesQueryResponse {
	totals := inv.Recompute()
	total, _ := totals.Total.Decimal().Float64()
	return ListInvoicesQueryResponse{
		ID:        inv.ID().String(),
		ClientID:  inv.ClientID().String(),
		Status:    inv.Status().String(),
		LineCount: len(inv.Lines()),
		Amount:    totals.Amount.StringFixed(),
		Tax:       totals.Tax.StringFixed(),
		Total:     totals.Total.StringFixed(),
		IssuedAt:  inv.IssuedAt(),
		DueAt:     inv.DueAt(),
		PaidAt:    inv.PaidAt(),
		total:     total,
	}
}

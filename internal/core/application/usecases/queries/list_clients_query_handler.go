package queries

import (
	"context"

	"courierdesk/internal/core/domain/model/invoice"
	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/core/ports"
	"courierdesk/internal/pkg/query"
)

var clientFields = query.Fields[ListClientsQueryResponse]{
	"name":          func(r ListClientsQueryResponse) query.Value { return query.String(r.Name) },
	"status":        func(r ListClientsQueryResponse) query.Value { return query.String(r.Status) },
	"address":       func(r ListClientsQueryResponse) query.Value { return query.String(r.Address) },
	"totalPackages": func(r ListClientsQueryResponse) query.Value { return query.Number(float64(r.TotalPackages)) },
	"totalSpent":    func(r ListClientsQueryResponse) query.Value { return query.Number(r.totalSpent) },
}

// ListClientsQueryHandler serves the client roster with derived activity
// counters. Package counts come from shipments; spend totals sum the
// recomputed totals of the client's paid invoices.
type ListClientsQueryHandler struct {
	clientRepo   ports.ClientRepository
	shipmentRepo ports.ShipmentRepository
	invoiceRepo  ports.InvoiceRepository
}

// NewListClientsQueryHandler creates a handler for client listing queries.
func NewListClientsQueryHandler(
	clientRepo ports.ClientRepository,
	shipmentRepo ports.ShipmentRepository,
	invoiceRepo ports.InvoiceRepository,
) ListClientsQueryHandler {
	return ListClientsQueryHandler{
		clientRepo:   clientRepo,
		shipmentRepo: shipmentRepo,
		invoiceRepo:  invoiceRepo,
	}
}

// Handle executes the client listing query.
func (h ListClientsQueryHandler) Handle(
	ctx context.Context,
	q ListClientsQuery,
) (query.Result[ListClientsQueryResponse], error) {
	if err := q.Validate(); err != nil {
		return query.Result[ListClientsQueryResponse]{}, err
	}

	clients, err := h.clientRepo.GetAll(ctx)
	if err != nil {
		return query.Result[ListClientsQueryResponse]{}, err
	}

	shipments, err := h.shipmentRepo.GetAll(ctx)
	if err != nil {
		return query.Result[ListClientsQueryResponse]{}, err
	}
	packages := make(map[string]int, len(clients))
	for _, shp := range shipments {
		packages[shp.ClientID().String()]++
	}

	rows := make([]ListClientsQueryResponse, 0, len(clients))
	for _, c := range clients {
		invoices, lookupErr := h.invoiceRepo.GetAllByClient(ctx, c.ID())
		if lookupErr != nil {
			return query.Result[ListClientsQueryResponse]{}, lookupErr
		}

		spent := kernel.ZeroMoney()
		for _, inv := range invoices {
			if inv.Status() != invoice.Paid {
				continue
			}
			spent = spent.Add(inv.Recompute().Total)
		}

		contact := c.Contact()
		totalSpent, _ := spent.Decimal().Float64()
		rows = append(rows, ListClientsQueryResponse{
			ID:            c.ID().String(),
			Name:          contact.Name(),
			Phone:         contact.Phone(),
			Address:       contact.Address(),
			Status:        c.Status().String(),
			TotalPackages: packages[c.ID().String()],
			TotalSpent:    spent.StringFixed(),
			totalSpent:    totalSpent,
		})
	}

	return query.Apply(rows, clientFields, q.Params())
}

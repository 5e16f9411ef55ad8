package queries

import (
	"context"

	"courierdesk/internal/core/domain/model/courier"
	"courierdesk/internal/core/ports"
	"courierdesk/internal/pkg/query"
)

var courierFields = query.Fields[ListCouriersQueryResponse]{
	"name":            func(r ListCouriersQueryResponse) query.Value { return query.String(r.Name) },
	"status":          func(r ListCouriersQueryResponse) query.Value { return query.String(r.Status) },
	"vehicle":         func(r ListCouriersQueryResponse) query.Value { return query.String(r.Vehicle) },
	"rating":          func(r ListCouriersQueryResponse) query.Value { return query.Number(r.Rating) },
	"totalDeliveries": func(r ListCouriersQueryResponse) query.Value { return query.Number(float64(r.TotalDeliveries)) },
	"workload":        func(r ListCouriersQueryResponse) query.Value { return query.Number(float64(r.Workload)) },
}

// ListCouriersQueryHandler serves the courier roster with derived workloads.
// Each courier's active shipment count comes from a reverse lookup over
// shipments; nothing is stored on the courier aggregate.
type ListCouriersQueryHandler struct {
	courierRepo  ports.CourierRepository
	shipmentRepo ports.ShipmentRepository
}

// NewListCouriersQueryHandler creates a handler for courier listing queries.
func NewListCouriersQueryHandler(
	courierRepo ports.CourierRepository,
	shipmentRepo ports.ShipmentRepository,
) ListCouriersQueryHandler {
	return ListCouriersQueryHandler{
		courierRepo:  courierRepo,
		shipmentRepo: shipmentRepo,
	}
}

// Handle executes the courier listing query.
func (h ListCouriersQueryHandler) Handle(
	ctx context.Context,
	q ListCouriersQuery,
) (query.Result[ListCouriersQueryResponse], error) {
	if err := q.Validate(); err != nil {
		return query.Result[ListCouriersQueryResponse]{}, err
	}

	couriers, err := h.courierRepo.GetAll(ctx)
	if err != nil {
		return query.Result[ListCouriersQueryResponse]{}, err
	}

	rows := make([]ListCouriersQueryResponse, 0, len(couriers))
	for _, c := range couriers {
		assigned, lookupErr := h.shipmentRepo.GetAllAssignedTo(ctx, c.ID())
		if lookupErr != nil {
			return query.Result[ListCouriersQueryResponse]{}, lookupErr
		}
		rows = append(rows, toCourierResponse(c, len(assigned)))
	}

	return query.Apply(rows, courierFields, q.Params())
}

func toCourierResponse(c *courier.Courier, workload int) ListCouriersQueryResponse {
	return ListCouriersQueryResponse{
		ID:              c.ID().String(),
		Name:            c.Contact().Name(),
		Phone:           c.Contact().Phone(),
		Status:          c.Status().String(),
		Vehicle:         c.Vehicle(),
		Rating:          c.Rating(),
		TotalDeliveries: c.TotalDeliveries(),
		Workload:        workload,
		MonthlyEarnings: c.MonthlyEarnings().StringFixed(),
	}
}

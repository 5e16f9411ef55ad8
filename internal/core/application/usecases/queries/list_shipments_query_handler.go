package queries

import (
	"context"

	"courierdesk/internal/core/domain/model/shipment"
	"courierdesk/internal/core/ports"
	"courierdesk/internal/pkg/query"
)

// shipmentFields exposes shipment read-model fields to the pipeline.
// Timestamps sort as numbers; everything else compares as text.
var shipmentFields = query.Fields[ListShipmentsQueryResponse]{
	"trackingCode":  func(r ListShipmentsQueryResponse) query.Value { return query.String(r.TrackingCode) },
	"clientId":      func(r ListShipmentsQueryResponse) query.Value { return query.String(r.ClientID) },
	"senderName":    func(r ListShipmentsQueryResponse) query.Value { return query.String(r.SenderName) },
	"recipientName": func(r ListShipmentsQueryResponse) query.Value { return query.String(r.RecipientName) },
	"status":        func(r ListShipmentsQueryResponse) query.Value { return query.String(r.Status) },
	"serviceTier":   func(r ListShipmentsQueryResponse) query.Value { return query.String(r.ServiceTier) },
	"priority":      func(r ListShipmentsQueryResponse) query.Value { return query.String(r.Priority) },
	"weight":        func(r ListShipmentsQueryResponse) query.Value { return query.Number(r.Weight) },
	"courierId":     func(r ListShipmentsQueryResponse) query.Value { return query.String(r.CourierID) },
	"location":      func(r ListShipmentsQueryResponse) query.Value { return query.String(r.Location) },
	"createdAt": func(r ListShipmentsQueryResponse) query.Value {
		return query.Number(float64(r.CreatedAt.UnixNano()))
	},
	"updatedAt": func(r ListShipmentsQueryResponse) query.Value {
		return query.Number(float64(r.UpdatedAt.UnixNano()))
	},
}

// ListShipmentsQueryHandler serves the back-office shipment list.
// Loads shipments through the repository port and runs the listing pipeline
// in memory, keeping the read model storage-agnostic.
type ListShipmentsQueryHandler struct {
	shipmentRepo ports.ShipmentRepository
}

// NewListShipmentsQueryHandler creates a handler for shipment listing queries.
func NewListShipmentsQueryHandler(shipmentRepo ports.ShipmentRepository) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{shipmentRepo: shipmentRepo}
}

// Handle executes the shipment listing query.
// Returns one page of shipment rows plus pre-pagination totals.
func (h ListShipmentsQueryHandler) Handle(
	ctx context.Context,
	q ListShipmentsQuery,
) (query.Result[ListShipmentsQueryResponse], error) {
	if err := q.Validate(); err != nil {
		return query.Result[ListShipmentsQueryResponse]{}, err
	}

	shipments, err := h.shipmentRepo.GetAll(ctx)
	if err != nil {
		return query.Result[ListShipmentsQueryResponse]{}, err
	}

	rows := make([]ListShipmentsQueryResponse, 0, len(shipments))
	for _, shp := range shipments {
		rows = append(rows, toShipmentResponse(shp))
	}

	return query.Apply(rows, shipmentFields, q.Params())
}

func toShipmentResponse(shp *shipment.Shipment) ListShipmentsQueryResponse {
	row := ListShipmentsQueryResponse{
		ID:            shp.ID().String(),
		TrackingCode:  shp.TrackingCode(),
		ClientID:      shp.ClientID().String(),
		SenderName:    shp.Sender().Name(),
		RecipientName: shp.Recipient().Name(),
		Status:        shp.Status().String(),
		ServiceTier:   shp.ServiceTier().String(),
		Priority:      shp.Priority().String(),
		Weight:        shp.Weight(),
		Location:      shp.CurrentLocation(),
		CreatedAt:     shp.CreatedAt(),
		UpdatedAt:     shp.UpdatedAt(),
	}
	if shp.Courier() != nil {
		row.CourierID = shp.Courier().String()
	}
	return row
}

package inmem

import (
	"time"

	"courierdesk/internal/core/domain/model/client"
	"courierdesk/internal/core/domain/model/courier"
	"courierdesk/internal/core/domain/model/invoice"
	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/core/domain/model/shipment"
)

func copyUUIDPtr(id *kernel.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	copied := *id
	return &copied
}

func copyTimePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	copied := *t
	return &copied
}

// Clones round-trip aggregates through their Restore constructors so stored
// state never shares memory with caller-held pointers.

func cloneShipment(shp *shipment.Shipment) (*shipment.Shipment, error) {
	return shipment.RestoreShipment(
		shp.ID(),
		shp.TrackingCode(),
		shp.ClientID(),
		shp.Sender(),
		shp.Recipient(),
		shp.Weight(),
		shp.Dimensions(),
		shp.DeclaredValue(),
		shp.ServiceTier(),
		shp.Priority(),
		shp.Status(),
		copyUUIDPtr(shp.Courier()),
		shp.CurrentLocation(),
		shp.DeliveryAttempts(),
		shp.CreatedAt(),
		shp.UpdatedAt(),
		copyTimePtr(shp.EstimatedDelivery()),
		copyTimePtr(shp.ActualDelivery()),
		shp.Timeline(),
		shp.Version(),
	)
}

func cloneCourier(c *courier.Courier) (*courier.Courier, error) {
	return courier.RestoreCourier(
		c.ID(),
		c.Contact(),
		c.Status(),
		c.Vehicle(),
		c.TotalDeliveries(),
		c.Rating(),
		c.MonthlyEarnings(),
		c.Version(),
	)
}

func cloneClient(c *client.Client) (*client.Client, error) {
	return client.RestoreClient(c.ID(), c.Contact(), c.Status(), c.Version())
}

func cloneInvoice(inv *invoice.Invoice) (*invoice.Invoice, error) {
	return invoice.RestoreInvoice(
		inv.ID(),
		inv.ClientID(),
		inv.Lines(),
		inv.Status(),
		inv.IssuedAt(),
		inv.DueAt(),
		copyTimePtr(inv.PaidAt()),
		inv.Version(),
	)
}

// Package inmem provides an in-memory implementation of the storage ports.
// The registry backs local development and tests: aggregates are stored as
// deep copies so callers never alias stored state, writes within a unit of
// work are staged and applied atomically on commit, and updates enforce the
// same optimistic version check as the database-backed repositories.
package inmem

import (
	"sort"
	"sync"

	"courierdesk/internal/core/domain/model/client"
	"courierdesk/internal/core/domain/model/courier"
	"courierdesk/internal/core/domain/model/invoice"
	"courierdesk/internal/core/domain/model/shipment"
	"courierdesk/internal/core/ports"
)

// Registry is the in-memory aggregate store. It implements
// ports.UnitOfWorkFactory; repositories obtained outside a unit of work apply
// writes immediately.
type Registry struct {
	mu        sync.RWMutex
	shipments map[string]*shipment.Shipment
	couriers  map[string]*courier.Courier
	clients   map[string]*client.Client
	invoices  map[string]*invoice.Invoice
}

// NewRegistry creates an empty in-memory registry.
func NewRegistry() *Registry {
	return &Registry{
		shipments: make(map[string]*shipment.Shipment),
		couriers:  make(map[string]*courier.Courier),
		clients:   make(map[string]*client.Client),
		invoices:  make(map[string]*invoice.Invoice),
	}
}

// Create produces a new unit of work over this registry.
func (r *Registry) Create() ports.UnitOfWork {
	return &unitOfWork{registry: r}
}

// ShipmentRepository returns a repository that reads committed state and
// applies writes immediately.
func (r *Registry) ShipmentRepository() ports.ShipmentRepository {
	return &shipmentRepository{registry: r}
}

// CourierRepository returns a repository that reads committed state and
// applies writes immediately.
func (r *Registry) CourierRepository() ports.CourierRepository {
	return &courierRepository{registry: r}
}

// ClientRepository returns a repository that reads committed state and
// applies writes immediately.
func (r *Registry) ClientRepository() ports.ClientRepository {
	return &clientRepository{registry: r}
}

// InvoiceRepository returns a repository that reads committed state and
// applies writes immediately.
func (r *Registry) InvoiceRepository() ports.InvoiceRepository {
	return &invoiceRepository{registry: r}
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

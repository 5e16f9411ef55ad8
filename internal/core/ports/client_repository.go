package ports

import (
	"context"

	"courierdesk/internal/core/domain/model/client"
	"courierdesk/internal/core/domain/model/kernel"
)

// ClientRepository defines the persistence contract for client aggregates.
// Client aggregate counters (total packages, total spent) are not stored here;
// the list queries derive them from shipments and invoices on read.
type ClientRepository interface {
	// Add persists a new client aggregate to storage.
	Add(ctx context.Context, aggregate *client.Client) error

	// Update persists changes to an existing client aggregate.
	Update(ctx context.Context, aggregate *client.Client) error

	// Get retrieves a client by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*client.Client, error)

	// GetAll retrieves every client for the listing query pipeline.
	GetAll(ctx context.Context) ([]*client.Client, error)
}

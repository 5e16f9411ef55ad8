package ports

import (
	"context"
	"time"

	"courierdesk/internal/core/domain/model/invoice"
	"courierdesk/internal/core/domain/model/kernel"
)

// InvoiceRepository defines the persistence contract for invoice aggregates,
// including their ordered line items.
type InvoiceRepository interface {
	// Add persists a new invoice aggregate to storage.
	Add(ctx context.Context, aggregate *invoice.Invoice) error

	// Update persists changes to an existing invoice aggregate.
	Update(ctx context.Context, aggregate *invoice.Invoice) error

	// Get retrieves an invoice by its unique identifier, with its line items
	// in order.
	Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error)

	// GetAll retrieves every invoice for the listing query pipeline.
	GetAll(ctx context.Context) ([]*invoice.Invoice, error)

	// GetAllByClient retrieves the invoices owned by the given client.
	// Used when deriving the client's total-spent aggregate.
	GetAllByClient(ctx context.Context, clientID kernel.UUID) ([]*invoice.Invoice, error)

	// GetAllSentPastDue retrieves sent invoices whose due date precedes now.
	// Used by the overdue sweep.
	GetAllSentPastDue(ctx context.Context, now time.Time) ([]*invoice.Invoice, error)
}

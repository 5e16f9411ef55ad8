package inmem

import (
	"context"
	"time"

	"courierdesk/internal/core/domain/model/invoice"
	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/pkg/errs"
)

// invoiceRepository implements ports.InvoiceRepository over the registry.
type invoiceRepository struct {
	registry *Registry
	uow      *unitOfWork
}

// Add stages a new invoice. Duplicate IDs fail the commit-time check.
func (r *invoiceRepository) Add(_ context.Context, aggregate *invoice.Invoice) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	stored, err := cloneInvoice(aggregate)
	if err != nil {
		return err
	}
	key := aggregate.ID().String()

	return r.uow.stage(r.registry, stagedWrite{
		check: func() error {
			if _, ok := r.registry.invoices[key]; ok {
				return errs.NewValueIsInvalidError("invoice id")
			}
			return nil
		},
		apply: func() {
			r.registry.invoices[key] = stored
		},
	})
}

// Update stages a compare-and-swap write; a version mismatch surfaces as
// errs.StaleWriteError when the write is applied.
func (r *invoiceRepository) Update(_ context.Context, aggregate *invoice.Invoice) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	stored, err := cloneInvoice(aggregate)
	if err != nil {
		return err
	}
	stored.BumpVersion()
	key := aggregate.ID().String()
	expected := aggregate.Version()

	return r.uow.stage(r.registry, stagedWrite{
		check: func() error {
			current, ok := r.registry.invoices[key]
			if !ok {
				return errs.NewObjectNotFoundError("invoice", key)
			}
			if current.Version() != expected {
				return errs.NewStaleWriteError("invoice", expected, current.Version())
			}
			return nil
		},
		apply: func() {
			r.registry.invoices[key] = stored
			aggregate.BumpVersion()
		},
	})
}

// Get retrieves an invoice by ID.
func (r *invoiceRepository) Get(_ context.Context, id kernel.UUID) (*invoice.Invoice, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.registry.mu.RLock()
	defer r.registry.mu.RUnlock()

	stored, ok := r.registry.invoices[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("invoice", id.String())
	}
	return cloneInvoice(stored)
}

// GetAll retrieves every invoice in stable ID order.
func (r *invoiceRepository) GetAll(ctx context.Context) ([]*invoice.Invoice, error) {
	return r.findAll(ctx, func(*invoice.Invoice) bool { return true })
}

// GetAllByClient retrieves all invoices billed to the client.
func (r *invoiceRepository) GetAllByClient(ctx context.Context, clientID kernel.UUID) ([]*invoice.Invoice, error) {
	if err := clientID.Validate(); err != nil {
		return nil, err
	}

	return r.findAll(ctx, func(inv *invoice.Invoice) bool {
		return inv.ClientID().IsEqual(clientID)
	})
}

// GetAllSentPastDue retrieves sent invoices whose payment deadline has passed.
func (r *invoiceRepository) GetAllSentPastDue(ctx context.Context, now time.Time) ([]*invoice.Invoice, error) {
	return r.findAll(ctx, func(inv *invoice.Invoice) bool {
		return inv.Status() == invoice.Sent && now.After(inv.DueAt())
	})
}

func (r *invoiceRepository) findAll(_ context.Context, match func(*invoice.Invoice) bool) ([]*invoice.Invoice, error) {
	r.registry.mu.RLock()
	defer r.registry.mu.RUnlock()

	invoices := make([]*invoice.Invoice, 0, len(r.registry.invoices))
	for _, key := range sortedKeys(r.registry.invoices) {
		stored := r.registry.invoices[key]
		if !match(stored) {
			continue
		}
		inv, err := cloneInvoice(stored)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, nil
}

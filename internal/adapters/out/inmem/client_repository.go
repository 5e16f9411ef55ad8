package inmem

import (
	"context"

	"courierdesk/internal/core/domain/model/client"
	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/pkg/errs"
)

// clientRepository implements ports.ClientRepository over the registry.
type clientRepository struct {
	registry *Registry
	uow      *unitOfWork
}

// Add stages a new client. Duplicate IDs fail the commit-time check.
func (r *clientRepository) Add(_ context.Context, aggregate *client.Client) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	stored, err := cloneClient(aggregate)
	if err != nil {
		return err
	}
	key := aggregate.ID().String()

	return r.uow.stage(r.registry, stagedWrite{
		check: func() error {
			if _, ok := r.registry.clients[key]; ok {
				return errs.NewValueIsInvalidError("client id")
			}
			return nil
		},
		apply: func() {
			r.registry.clients[key] = stored
		},
	})
}

// Update stages a compare-and-swap write; a version mismatch surfaces as
// errs.StaleWriteError when the write is applied.
func (r *clientRepository) Update(_ context.Context, aggregate *client.Client) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	stored, err := cloneClient(aggregate)
	if err != nil {
		return err
	}
	stored.BumpVersion()
	key := aggregate.ID().String()
	expected := aggregate.Version()

	return r.uow.stage(r.registry, stagedWrite{
		check: func() error {
			current, ok := r.registry.clients[key]
			if !ok {
				return errs.NewObjectNotFoundError("client", key)
			}
			if current.Version() != expected {
				return errs.NewStaleWriteError("client", expected, current.Version())
			}
			return nil
		},
		apply: func() {
			r.registry.clients[key] = stored
			aggregate.BumpVersion()
		},
	})
}

// Get retrieves a client by ID.
func (r *clientRepository) Get(_ context.Context, id kernel.UUID) (*client.Client, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.registry.mu.RLock()
	defer r.registry.mu.RUnlock()

	stored, ok := r.registry.clients[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("client", id.String())
	}
	return cloneClient(stored)
}

// GetAll retrieves every client in stable ID order.
func (r *clientRepository) GetAll(_ context.Context) ([]*client.Client, error) {
	r.registry.mu.RLock()
	defer r.registry.mu.RUnlock()

	clients := make([]*client.Client, 0, len(r.registry.clients))
	for _, key := range sortedKeys(r.registry.clients) {
		c, err := cloneClient(r.registry.clients[key])
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, nil
}

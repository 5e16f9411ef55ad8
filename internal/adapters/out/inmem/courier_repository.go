package inmem

import (
	"context"

	"courierdesk/internal/core/domain/model/courier"
	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/pkg/errs"
)

// courierRepository implements ports.CourierRepository over the registry.
type courierRepository struct {
	registry *Registry
	uow      *unitOfWork
}

// Add stages a new courier. Duplicate IDs fail the commit-time check.
func (r *courierRepository) Add(_ context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	stored, err := cloneCourier(aggregate)
	if err != nil {
		return err
	}
	key := aggregate.ID().String()

	return r.uow.stage(r.registry, stagedWrite{
		check: func() error {
			if _, ok := r.registry.couriers[key]; ok {
				return errs.NewValueIsInvalidError("courier id")
			}
			return nil
		},
		apply: func() {
			r.registry.couriers[key] = stored
		},
	})
}

// Update stages a compare-and-swap write; a version mismatch surfaces as
// errs.StaleWriteError when the write is applied.
func (r *courierRepository) Update(_ context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	stored, err := cloneCourier(aggregate)
	if err != nil {
		return err
	}
	stored.BumpVersion()
	key := aggregate.ID().String()
	expected := aggregate.Version()

	return r.uow.stage(r.registry, stagedWrite{
		check: func() error {
			current, ok := r.registry.couriers[key]
			if !ok {
				return errs.NewObjectNotFoundError("courier", key)
			}
			if current.Version() != expected {
				return errs.NewStaleWriteError("courier", expected, current.Version())
			}
			return nil
		},
		apply: func() {
			r.registry.couriers[key] = stored
			aggregate.BumpVersion()
		},
	})
}

// Get retrieves a courier by ID.
func (r *courierRepository) Get(_ context.Context, id kernel.UUID) (*courier.Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.registry.mu.RLock()
	defer r.registry.mu.RUnlock()

	stored, ok := r.registry.couriers[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("courier", id.String())
	}
	return cloneCourier(stored)
}

// GetAll retrieves every courier in stable ID order.
func (r *courierRepository) GetAll(ctx context.Context) ([]*courier.Courier, error) {
	return r.findAll(ctx, func(*courier.Courier) bool { return true })
}

// GetAllAssignable retrieves couriers eligible for new assignments.
func (r *courierRepository) GetAllAssignable(ctx context.Context) ([]*courier.Courier, error) {
	return r.findAll(ctx, func(c *courier.Courier) bool {
		return c.IsAssignable()
	})
}

func (r *courierRepository) findAll(_ context.Context, match func(*courier.Courier) bool) ([]*courier.Courier, error) {
	r.registry.mu.RLock()
	defer r.registry.mu.RUnlock()

	couriers := make([]*courier.Courier, 0, len(r.registry.couriers))
	for _, key := range sortedKeys(r.registry.couriers) {
		stored := r.registry.couriers[key]
		if !match(stored) {
			continue
		}
		c, err := cloneCourier(stored)
		if err != nil {
			return nil, err
		}
		couriers = append(couriers, c)
	}
	return couriers, nil
}

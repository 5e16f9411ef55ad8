package inmem

import (
	"context"

	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/core/domain/model/shipment"
	"courierdesk/internal/pkg/errs"
)

// shipmentRepository implements ports.ShipmentRepository over the registry.
type shipmentRepository struct {
	registry *Registry
	uow      *unitOfWork
}

// Add stages a new shipment. Duplicate IDs fail the commit-time check.
func (r *shipmentRepository) Add(_ context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	stored, err := cloneShipment(aggregate)
	if err != nil {
		return err
	}
	key := aggregate.ID().String()

	return r.uow.stage(r.registry, stagedWrite{
		check: func() error {
			if _, ok := r.registry.shipments[key]; ok {
				return errs.NewValueIsInvalidError("shipment id")
			}
			return nil
		},
		apply: func() {
			r.registry.shipments[key] = stored
		},
	})
}

// Update stages a compare-and-swap write. A version mismatch surfaces as
// errs.StaleWriteError when the write is applied; on success the caller's
// aggregate version is advanced to match stored state.
func (r *shipmentRepository) Update(_ context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	stored, err := cloneShipment(aggregate)
	if err != nil {
		return err
	}
	stored.BumpVersion()
	key := aggregate.ID().String()
	expected := aggregate.Version()

	return r.uow.stage(r.registry, stagedWrite{
		check: func() error {
			current, ok := r.registry.shipments[key]
			if !ok {
				return errs.NewObjectNotFoundError("shipment", key)
			}
			if current.Version() != expected {
				return errs.NewStaleWriteError("shipment", expected, current.Version())
			}
			return nil
		},
		apply: func() {
			r.registry.shipments[key] = stored
			aggregate.BumpVersion()
		},
	})
}

// Get retrieves a shipment by ID.
func (r *shipmentRepository) Get(_ context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.registry.mu.RLock()
	defer r.registry.mu.RUnlock()

	stored, ok := r.registry.shipments[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("shipment", id.String())
	}
	return cloneShipment(stored)
}

// GetByTrackingCode retrieves a shipment by its public tracking code.
func (r *shipmentRepository) GetByTrackingCode(_ context.Context, trackingCode string) (*shipment.Shipment, error) {
	if trackingCode == "" {
		return nil, errs.NewValueIsRequiredError("trackingCode")
	}

	r.registry.mu.RLock()
	defer r.registry.mu.RUnlock()

	for _, stored := range r.registry.shipments {
		if stored.TrackingCode() == trackingCode {
			return cloneShipment(stored)
		}
	}
	return nil, errs.NewObjectNotFoundError("shipment", trackingCode)
}

// GetAll retrieves every shipment in stable ID order.
func (r *shipmentRepository) GetAll(ctx context.Context) ([]*shipment.Shipment, error) {
	return r.findAll(ctx, func(*shipment.Shipment) bool { return true })
}

// GetAllInPendingStatus retrieves all shipments awaiting assignment.
func (r *shipmentRepository) GetAllInPendingStatus(ctx context.Context) ([]*shipment.Shipment, error) {
	return r.findAll(ctx, func(shp *shipment.Shipment) bool {
		return shp.Status() == shipment.Pending
	})
}

// GetAllAssignedTo retrieves the courier's active, non-terminal shipments.
func (r *shipmentRepository) GetAllAssignedTo(ctx context.Context, courierID kernel.UUID) ([]*shipment.Shipment, error) {
	if err := courierID.Validate(); err != nil {
		return nil, err
	}

	return r.findAll(ctx, func(shp *shipment.Shipment) bool {
		return shp.Courier() != nil &&
			shp.Courier().IsEqual(courierID) &&
			!shp.Status().IsTerminal()
	})
}

func (r *shipmentRepository) findAll(_ context.Context, match func(*shipment.Shipment) bool) ([]*shipment.Shipment, error) {
	r.registry.mu.RLock()
	defer r.registry.mu.RUnlock()

	shipments := make([]*shipment.Shipment, 0, len(r.registry.shipments))
	for _, key := range sortedKeys(r.registry.shipments) {
		stored := r.registry.shipments[key]
		if !match(stored) {
			continue
		}
		shp, err := cloneShipment(stored)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, shp)
	}
	return shipments, nil
}

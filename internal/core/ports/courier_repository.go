package ports

import (
	"context"

	"courierdesk/internal/core/domain/model/courier"
	"courierdesk/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
// Update implementations perform the same optimistic-concurrency check as
// ShipmentRepository.Update.
type CourierRepository interface {
	// Add persists a new courier aggregate to storage.
	Add(ctx context.Context, aggregate *courier.Courier) error

	// Update persists changes to an existing courier aggregate.
	Update(ctx context.Context, aggregate *courier.Courier) error

	// Get retrieves a courier by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetAll retrieves every courier for the listing query pipeline.
	GetAll(ctx context.Context) ([]*courier.Courier, error)

	// GetAllAssignable retrieves couriers that may take new shipments,
	// i.e. every courier that is not offline.
	GetAllAssignable(ctx context.Context) ([]*courier.Courier, error)
}

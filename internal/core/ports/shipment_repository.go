// Package ports defines repository interfaces for the courier back-office.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability: the state
// machine and query engine stay storage-agnostic, and both the in-memory
// registry and the Postgres adapter satisfy the same contracts.
package ports

import (
	"context"

	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates,
// including their owned tracking timelines.
//
// Update implementations must perform an optimistic-concurrency check: the
// stored version must equal the aggregate's version, otherwise the write fails
// with *errs.StaleWriteError. On success the stored version is advanced and
// the aggregate's version stamp is bumped, so the status update and timeline
// append of a transition are committed as one atomic unit.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate,
	// subject to the optimistic-concurrency check described above.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment by its unique identifier, with its complete
	// timeline in ascending timestamp order.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetByTrackingCode retrieves a shipment by its human-readable tracking code.
	// Used by the public tracking lookup.
	GetByTrackingCode(ctx context.Context, trackingCode string) (*shipment.Shipment, error)

	// GetAll retrieves every shipment. List views run the query pipeline over
	// this snapshot rather than pushing search/sort into storage.
	GetAll(ctx context.Context) ([]*shipment.Shipment, error)

	// GetAllInPendingStatus retrieves shipments awaiting courier assignment.
	// Used by the auto-assignment sweep.
	GetAllInPendingStatus(ctx context.Context) ([]*shipment.Shipment, error)

	// GetAllAssignedTo retrieves the shipments currently referencing the given
	// courier. This reverse lookup is how courier workload is derived; there is
	// no maintained inverse collection on the courier side.
	GetAllAssignedTo(ctx context.Context, courierID kernel.UUID) ([]*shipment.Shipment, error)
}

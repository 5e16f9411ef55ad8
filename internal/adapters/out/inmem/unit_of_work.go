package inmem

import (
	"context"
	"errors"

	"courierdesk/internal/core/ports"
)

// ErrNoActiveTransaction is returned by Commit and Rollback when Begin was
// never called or the transaction already finished.
var ErrNoActiveTransaction = errors.New("no active transaction")

// stagedWrite is one buffered mutation. Checks run for every staged write
// before any apply, so a failing version check leaves the registry untouched.
type stagedWrite struct {
	check func() error
	apply func()
}

// unitOfWork buffers writes against the registry and applies them atomically
// on Commit. Reads always see committed state.
type unitOfWork struct {
	registry *Registry
	active   bool
	staged   []stagedWrite
}

// Begin starts the transaction. Beginning an already active unit of work is a
// no-op, matching the database-backed implementation.
func (uow *unitOfWork) Begin(_ context.Context) error {
	if uow.active {
		return nil
	}
	uow.active = true
	uow.staged = nil
	return nil
}

// Commit applies all staged writes under a single registry lock.
// Version checks run first across every staged write; any failure aborts the
// whole transaction with no partial effects.
func (uow *unitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}
	uow.active = false

	uow.registry.mu.Lock()
	defer uow.registry.mu.Unlock()

	for _, write := range uow.staged {
		if err := write.check(); err != nil {
			uow.staged = nil
			return err
		}
	}
	for _, write := range uow.staged {
		write.apply()
	}
	uow.staged = nil
	return nil
}

// Rollback discards all staged writes.
func (uow *unitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}
	uow.active = false
	uow.staged = nil
	return nil
}

// ShipmentRepository returns a shipment repository staging into this unit of work.
func (uow *unitOfWork) ShipmentRepository() ports.ShipmentRepository {
	return &shipmentRepository{registry: uow.registry, uow: uow}
}

// CourierRepository returns a courier repository staging into this unit of work.
func (uow *unitOfWork) CourierRepository() ports.CourierRepository {
	return &courierRepository{registry: uow.registry, uow: uow}
}

// ClientRepository returns a client repository staging into this unit of work.
func (uow *unitOfWork) ClientRepository() ports.ClientRepository {
	return &clientRepository{registry: uow.registry, uow: uow}
}

// InvoiceRepository returns an invoice repository staging into this unit of work.
func (uow *unitOfWork) InvoiceRepository() ports.InvoiceRepository {
	return &invoiceRepository{registry: uow.registry, uow: uow}
}

// stage buffers a write when the unit of work is active, or applies it
// immediately under the registry lock otherwise.
func (uow *unitOfWork) stage(registry *Registry, write stagedWrite) error {
	if uow != nil && uow.active {
		uow.staged = append(uow.staged, write)
		return nil
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()
	if err := write.check(); err != nil {
		return err
	}
	write.apply()
	return nil
}

// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"courierdesk/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// CourierRepoFactory provides access to the courier repository within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// ClientRepoFactory provides access to the client repository within a transaction.
	ClientRepoFactory interface {
		ClientRepository() ports.ClientRepository
	}

	// InvoiceRepoFactory provides access to the invoice repository within a transaction.
	InvoiceRepoFactory interface {
		InvoiceRepository() ports.InvoiceRepository
	}

	// ShipmentUoW manages transactions for shipment-only operations.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// CourierUoW manages transactions for courier-only operations.
	CourierUoW interface {
		TxManager
		CourierRepoFactory
	}

	// CourierUoWFactory creates new courier unit of work instances.
	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// ClientUoW manages transactions for client-only operations.
	ClientUoW interface {
		TxManager
		ClientRepoFactory
	}

	// ClientUoWFactory creates new client unit of work instances.
	ClientUoWFactory interface {
		Create() ClientUoW
	}

	// InvoiceUoW manages transactions for invoice-only operations.
	InvoiceUoW interface {
		TxManager
		InvoiceRepoFactory
	}

	// InvoiceUoWFactory creates new invoice unit of work instances.
	InvoiceUoWFactory interface {
		Create() InvoiceUoW
	}

	// AssignmentUoW manages transactions spanning shipment and courier aggregates.
	// Used by the assignment commands, which read couriers and write shipments.
	AssignmentUoW interface {
		TxManager
		ShipmentRepoFactory
		CourierRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// ShipmentClientUoW manages transactions spanning shipment and client aggregates.
	// Used when registering a shipment, which validates the owning client.
	ShipmentClientUoW interface {
		TxManager
		ShipmentRepoFactory
		ClientRepoFactory
	}

	// ShipmentClientUoWFactory creates new shipment/client unit of work instances.
	ShipmentClientUoWFactory interface {
		Create() ShipmentClientUoW
	}

	// InvoiceClientUoW manages transactions spanning invoice and client aggregates.
	// Used when creating an invoice, which validates the owning client.
	InvoiceClientUoW interface {
		TxManager
		InvoiceRepoFactory
		ClientRepoFactory
	}

	// InvoiceClientUoWFactory creates new invoice/client unit of work instances.
	InvoiceClientUoWFactory interface {
		Create() InvoiceClientUoW
	}
)

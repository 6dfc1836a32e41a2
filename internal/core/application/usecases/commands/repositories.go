// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler asks only for the repositories it actually
// touches, so tests can fake the narrowest possible surface.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// AllocationRepoFactory provides access to the allocation repository within a transaction.
	AllocationRepoFactory interface {
		AllocationRepository() ports.AllocationRepository
	}

	// PickingRepoFactory provides access to the picking repository within a transaction.
	PickingRepoFactory interface {
		PickingRepository() ports.PickingRepository
	}

	// PackingRepoFactory provides access to the packing repository within a transaction.
	PackingRepoFactory interface {
		PackingRepository() ports.PackingRepository
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// AuditRepoFactory provides access to the audit repository within a transaction.
	AuditRepoFactory interface {
		AuditRepository() ports.AuditRepository
	}

	// OrderUoW manages transactions for order-and-audit operations:
	// creation, approval, and the other pure status moves.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		AuditRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// AllocationUoW manages transactions for the allocation stage, which
	// writes reservation records and order counters together.
	AllocationUoW interface {
		TxManager
		OrderRepoFactory
		AllocationRepoFactory
		AuditRepoFactory
	}

	// AllocationUoWFactory creates new allocation unit of work instances.
	AllocationUoWFactory interface {
		Create() AllocationUoW
	}

	// PickingUoW manages transactions for the picking stage. Task
	// generation reads the order's reservations; recorded picks update
	// both the task lines and the order counters.
	PickingUoW interface {
		TxManager
		OrderRepoFactory
		AllocationRepoFactory
		PickingRepoFactory
		AuditRepoFactory
	}

	// PickingUoWFactory creates new picking unit of work instances.
	PickingUoWFactory interface {
		Create() PickingUoW
	}

	// PackingUoW manages transactions for the packing stage.
	PackingUoW interface {
		TxManager
		OrderRepoFactory
		PickingRepoFactory
		PackingRepoFactory
		AuditRepoFactory
	}

	// PackingUoWFactory creates new packing unit of work instances.
	PackingUoWFactory interface {
		Create() PackingUoW
	}

	// ShippingUoW manages transactions for the shipping stage. Delivery
	// confirmation also consumes the order's reservations.
	ShippingUoW interface {
		TxManager
		OrderRepoFactory
		AllocationRepoFactory
		PackingRepoFactory
		ShipmentRepoFactory
		AuditRepoFactory
	}

	// ShippingUoWFactory creates new shipping unit of work instances.
	ShippingUoWFactory interface {
		Create() ShippingUoW
	}

	// CancellationUoW manages the cancel command, which may touch every
	// aggregate of the order at once.
	CancellationUoW interface {
		TxManager
		OrderRepoFactory
		AllocationRepoFactory
		PickingRepoFactory
		PackingRepoFactory
		ShipmentRepoFactory
		AuditRepoFactory
	}

	// CancellationUoWFactory creates new cancellation unit of work instances.
	CancellationUoWFactory interface {
		Create() CancellationUoW
	}
)

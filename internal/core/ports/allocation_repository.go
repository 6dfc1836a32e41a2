package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/kernel"
)

// AllocationRepository defines the persistence contract for inventory
// reservation records.
type AllocationRepository interface {
	// Add persists a new reservation record.
	Add(ctx context.Context, aggregate *allocation.Allocation) error

	// Update persists a status change on an existing reservation record.
	Update(ctx context.Context, aggregate *allocation.Allocation) error

	// Get retrieves a reservation record by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*allocation.Allocation, error)

	// GetAllForOrder retrieves every reservation record of an order,
	// regardless of status, ordered by creation time.
	GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*allocation.Allocation, error)

	// GetActiveForOrder retrieves the order's reservations still holding
	// stock.
	GetActiveForOrder(ctx context.Context, orderID kernel.UUID) ([]*allocation.Allocation, error)
}

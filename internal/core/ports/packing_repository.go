package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packing"
)

// PackingRepository defines the persistence contract for packing tasks and
// their packages.
type PackingRepository interface {
	// Add persists a new packing task.
	Add(ctx context.Context, aggregate *packing.Task) error

	// Update persists changes to an existing packing task, packages and
	// their contents included.
	Update(ctx context.Context, aggregate *packing.Task) error

	// Get retrieves a packing task with its packages.
	Get(ctx context.Context, id kernel.UUID) (*packing.Task, error)

	// GetForOrder retrieves the packing task created for an order.
	GetForOrder(ctx context.Context, orderID kernel.UUID) (*packing.Task, error)
}

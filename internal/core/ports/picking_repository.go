package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/picking"
)

// PickingRepository defines the persistence contract for picking tasks.
type PickingRepository interface {
	// Add persists a new picking task with all its lines.
	Add(ctx context.Context, aggregate *picking.Task) error

	// Update persists changes to an existing picking task.
	Update(ctx context.Context, aggregate *picking.Task) error

	// Get retrieves a picking task with its lines.
	Get(ctx context.Context, id kernel.UUID) (*picking.Task, error)

	// GetForOrder retrieves the picking task generated for an order.
	GetForOrder(ctx context.Context, orderID kernel.UUID) (*picking.Task, error)

	// GetAllOpen retrieves every task that is pending or in progress,
	// ordered by creation time.
	GetAllOpen(ctx context.Context) ([]*picking.Task, error)
}

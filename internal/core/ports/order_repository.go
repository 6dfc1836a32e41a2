// Package ports defines the contracts between the application core and the
// infrastructure adapters: repositories for the fulfillment aggregates, the
// unit of work for transaction control, and the inventory adapter boundary.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate with all its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, item
	// counters included.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items, taking a row lock on the
	// order for the duration of the transaction. All commands touching an
	// order go through Get first, which serializes them per order.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInStatus retrieves every order currently in the given status,
	// ordered by creation time.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// CountByStatus returns the number of orders per status.
	CountByStatus(ctx context.Context) (map[order.Status]int64, error)
}

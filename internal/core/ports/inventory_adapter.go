package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// StockLocation is one location's availability for a SKU, as reported by
// the inventory system.
type StockLocation struct {
	LocationCode string
	Available    decimal.Decimal
}

// ReserveRequest asks the inventory system to hold quantity of a SKU at a
// location. Reference identifies the business operation making the hold
// (one order line placement); reserving twice with the same reference must
// return the original reservation instead of holding stock twice.
type ReserveRequest struct {
	Reference    string
	SKU          string
	LocationCode string
	Quantity     decimal.Decimal
}

// Reservation is the inventory system's confirmation of a hold. ID is the
// handle used to release it.
type Reservation struct {
	ID           string
	SKU          string
	LocationCode string
	Quantity     decimal.Decimal
}

// InventoryAdapter is the boundary to the warehouse inventory system. The
// core never talks to stock tables directly; every availability check,
// reservation, and release crosses this interface.
//
// Implementations must make Reserve idempotent per reference and Release
// idempotent per reservation ID, because the allocate and cancel commands
// may be retried after partial failure. Infrastructure failures are
// reported as *errs.AdapterError so handlers can tell them apart from
// business rejections.
type InventoryAdapter interface {
	// CheckAvailability reports every location with positive stock for the
	// SKU, in a deterministic order. An empty result means the SKU is
	// unknown or out of stock everywhere.
	CheckAvailability(ctx context.Context, sku string) ([]StockLocation, error)

	// Reserve places a hold. It fails if the location no longer has the
	// quantity; it never holds a partial quantity.
	Reserve(ctx context.Context, req ReserveRequest) (Reservation, error)

	// Release cancels a hold and returns the quantity to availability.
	// Releasing an unknown or already released reservation is a no-op.
	Release(ctx context.Context, reservationID string) error
}

package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipments.
type ShipmentRepository interface {
	// Add persists a new shipment with its package snapshot.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment with its packages.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetForOrder retrieves the shipment created for an order.
	GetForOrder(ctx context.Context, orderID kernel.UUID) (*shipment.Shipment, error)
}

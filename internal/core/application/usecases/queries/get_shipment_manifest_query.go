package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

var (
	ErrGetShipmentManifestQueryIsNotConstructed = errors.New(
		"GetShipmentManifestQuery must be created via NewGetShipmentManifestQuery constructor",
	)
)

// GetShipmentManifestQuery retrieves the shipment created for an order with
// its package snapshot: what left the warehouse, in which containers, at
// what weight.
type GetShipmentManifestQuery struct {
	orderID kernel.UUID
}

// NewGetShipmentManifestQuery creates a manifest query for an order.
func NewGetShipmentManifestQuery(orderID kernel.UUID) (GetShipmentManifestQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetShipmentManifestQuery{}, err
	}
	return GetShipmentManifestQuery{orderID: orderID}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentManifestQuery) Validate() error {
	if q.orderID.Validate() != nil {
		return ErrGetShipmentManifestQueryIsNotConstructed
	}
	return nil
}

// OrderID returns the order whose shipment to read.
func (q GetShipmentManifestQuery) OrderID() kernel.UUID { return q.orderID }

// GetShipmentManifestQueryResponse is the shipment manifest read model.
type GetShipmentManifestQueryResponse struct {
	ID             kernel.UUID
	Number         string
	OrderNumber    string
	Carrier        string
	TrackingNumber string
	Status         string
	TotalWeight    decimal.Decimal
	Packages       []ManifestPackage
	CreatedAt      time.Time
	ShippedAt      *time.Time
	DeliveredAt    *time.Time
}

// ManifestPackage is one container on the manifest.
type ManifestPackage struct {
	PackageNumber string
	Weight        decimal.Decimal
	Length        decimal.Decimal
	Width         decimal.Decimal
	Height        decimal.Decimal
}

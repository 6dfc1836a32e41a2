package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

var (
	ErrGetPackingSummaryQueryIsNotConstructed = errors.New(
		"GetPackingSummaryQuery must be created via NewGetPackingSummaryQuery constructor",
	)
)

// GetPackingSummaryQuery retrieves the packing task created for an order
// together with its packages: container type, status, item count, and the
// projected weight of what is inside.
type GetPackingSummaryQuery struct {
	orderID kernel.UUID
}

// NewGetPackingSummaryQuery creates a packing summary query for an order.
func NewGetPackingSummaryQuery(orderID kernel.UUID) (GetPackingSummaryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetPackingSummaryQuery{}, err
	}
	return GetPackingSummaryQuery{orderID: orderID}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPackingSummaryQuery) Validate() error {
	if q.orderID.Validate() != nil {
		return ErrGetPackingSummaryQueryIsNotConstructed
	}
	return nil
}

// OrderID returns the order whose packing task to read.
func (q GetPackingSummaryQuery) OrderID() kernel.UUID { return q.orderID }

// GetPackingSummaryQueryResponse is the packing progress read model.
type GetPackingSummaryQueryResponse struct {
	ID          kernel.UUID
	Number      string
	OrderNumber string
	Status      string
	Packages    []PackingSummaryPackage
	CreatedAt   time.Time
}

// PackingSummaryPackage is one container in the packing summary.
type PackingSummaryPackage struct {
	ID        kernel.UUID
	Number    string
	Type      string
	Status    string
	Length    decimal.Decimal
	Width     decimal.Decimal
	Height    decimal.Decimal
	MaxWeight decimal.Decimal
	Weight    decimal.Decimal
	ItemCount int
}

// Package queries contains read operations for retrieving fulfillment state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries bypass the domain model and read optimized projections straight
// from the database.
package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderSummaryQueryIsNotConstructed = errors.New(
		"GetOrderSummaryQuery must be created via NewGetOrderSummaryQuery constructor",
	)
)

// GetOrderSummaryQuery retrieves one order with its lines and fulfillment
// counters. This is the main read model behind the order detail endpoint.
//
// Example:
//
//	query, err := NewGetOrderSummaryQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetOrderSummaryQueryHandler(db)
//
//	summary, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve order summary: %w", err)
//	}
type GetOrderSummaryQuery struct {
	orderID kernel.UUID
}

// NewGetOrderSummaryQuery creates a query for one order's summary.
func NewGetOrderSummaryQuery(orderID kernel.UUID) (GetOrderSummaryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderSummaryQuery{}, err
	}
	return GetOrderSummaryQuery{orderID: orderID}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderSummaryQuery) Validate() error {
	if q.orderID.Validate() != nil {
		return ErrGetOrderSummaryQueryIsNotConstructed
	}
	return nil
}

// OrderID returns the order to summarize.
func (q GetOrderSummaryQuery) OrderID() kernel.UUID { return q.orderID }

// GetOrderSummaryQueryResponse is the order header read model.
type GetOrderSummaryQueryResponse struct {
	ID           kernel.UUID
	Number       string
	WarehouseID  kernel.UUID
	Priority     string
	Status       string
	CancelReason string
	TotalAmount  decimal.Decimal
	Items        []OrderSummaryItem
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OrderSummaryItem is one order line with its counter cascade.
type OrderSummaryItem struct {
	ID                kernel.UUID
	SKU               string
	Name              string
	QuantityOrdered   decimal.Decimal
	QuantityAllocated decimal.Decimal
	QuantityPicked    decimal.Decimal
	QuantityPacked    decimal.Decimal
	UnitPrice         decimal.Decimal
	LineTotal         decimal.Decimal
}

package queries

import (
	"context"
	"database/sql"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderSummaryQueryHandler reads one order and its lines with raw SQL.
type GetOrderSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderSummaryQueryHandler creates a handler for order summary queries.
func NewGetOrderSummaryQueryHandler(db *gorm.DB) GetOrderSummaryQueryHandler {
	return GetOrderSummaryQueryHandler{db: db}
}

// Handle executes the query. Returns ErrObjectNotFound when the order does
// not exist.
func (h GetOrderSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderSummaryQuery,
) (GetOrderSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	var response GetOrderSummaryQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			warehouse_id,
			priority,
			status,
			cancel_reason,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var (
		id          uuid.UUID
		warehouseID uuid.UUID
		priority    int
		status      int
	)
	err := row.Scan(&id, &response.Number, &warehouseID, &priority, &status,
		&response.CancelReason, &response.CreatedAt, &response.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderSummaryQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}
	if err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	response.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}
	response.WarehouseID, err = kernel.UUIDFromBytes(warehouseID[:])
	if err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}
	response.Priority = order.Priority(priority).String()
	response.Status = order.Status(status).String()

	items, total, err := h.loadItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}
	response.Items = items
	response.TotalAmount = total

	return response, nil
}

func (h GetOrderSummaryQueryHandler) loadItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]OrderSummaryItem, decimal.Decimal, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sku,
			name,
			quantity_ordered,
			quantity_allocated,
			quantity_picked,
			quantity_packed,
			unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY sku
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, decimal.Zero, err
	}
	defer rows.Close()

	items := make([]OrderSummaryItem, 0)
	total := decimal.Zero

	for rows.Next() {
		var item OrderSummaryItem
		var id uuid.UUID

		err = rows.Scan(&id, &item.SKU, &item.Name, &item.QuantityOrdered,
			&item.QuantityAllocated, &item.QuantityPicked,
			&item.QuantityPacked, &item.UnitPrice)
		if err != nil {
			return nil, decimal.Zero, err
		}

		item.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, decimal.Zero, err
		}
		item.LineTotal = item.QuantityOrdered.Mul(item.UnitPrice)
		total = total.Add(item.LineTotal)
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, decimal.Zero, err
	}

	return items, total, nil
}

// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. The order aggregate spans two tables: the order header
// and its item lines with their fulfillment counters.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Number       string         `gorm:"uniqueIndex"`
	WarehouseID  uuid.UUID      `gorm:"type:uuid;index"`
	Priority     int            `gorm:"type:smallint"`
	Status       int            `gorm:"type:smallint;index"`
	CancelReason string
	Items        []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents a single order line and its counter cascade.
type OrderItemDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID           uuid.UUID       `gorm:"type:uuid;index"`
	ProductID         uuid.UUID       `gorm:"type:uuid"`
	SKU               string          `gorm:"index"`
	Name              string
	QuantityOrdered   decimal.Decimal `gorm:"type:numeric(18,3)"`
	UnitPrice         decimal.Decimal `gorm:"type:numeric(18,2)"`
	UnitWeight        decimal.Decimal `gorm:"type:numeric(18,3)"`
	QuantityAllocated decimal.Decimal `gorm:"type:numeric(18,3)"`
	QuantityPicked    decimal.Decimal `gorm:"type:numeric(18,3)"`
	QuantityPacked    decimal.Decimal `gorm:"type:numeric(18,3)"`
}

// TableName overrides GORM's default naming convention to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:                item.ID().Bytes(),
			OrderID:           aggregate.ID().Bytes(),
			ProductID:         item.ProductID().Bytes(),
			SKU:               item.SKU(),
			Name:              item.Name(),
			QuantityOrdered:   item.QuantityOrdered(),
			UnitPrice:         item.UnitPrice(),
			UnitWeight:        item.UnitWeight(),
			QuantityAllocated: item.QuantityAllocated(),
			QuantityPicked:    item.QuantityPicked(),
			QuantityPacked:    item.QuantityPacked(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		Number:       aggregate.Number(),
		WarehouseID:  aggregate.WarehouseID().Bytes(),
		Priority:     int(aggregate.Priority()),
		Status:       int(aggregate.Status()),
		CancelReason: aggregate.CancelReason(),
		Items:        items,
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	warehouseID, err := kernel.UUIDFromBytes(dto.WarehouseID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := toDomainItem(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, dto.Number, warehouseID,
		order.Priority(dto.Priority), order.Status(dto.Status),
		dto.CancelReason, items, dto.CreatedAt, dto.UpdatedAt)
}

func toDomainItem(dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(id, productID, dto.SKU, dto.Name,
		dto.QuantityOrdered, dto.UnitPrice, dto.UnitWeight,
		dto.QuantityAllocated, dto.QuantityPicked, dto.QuantityPacked)
}

// Package allocationrepo provides data transfer objects and mapping functions
// for reservation record persistence.
package allocationrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AllocationDTO represents the database structure for persisting reservation
// records. One row per hold placed in the inventory system.
type AllocationDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID       `gorm:"type:uuid;index"`
	OrderItemID   uuid.UUID       `gorm:"type:uuid"`
	SKU           string          `gorm:"index"`
	LocationCode  string
	Quantity      decimal.Decimal `gorm:"type:numeric(18,3)"`
	ReservationID string
	Status        int             `gorm:"type:smallint;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName overrides GORM's default naming convention to use "allocations".
func (AllocationDTO) TableName() string {
	return "allocations"
}

func fromDomain(aggregate *allocation.Allocation) AllocationDTO {
	return AllocationDTO{
		ID:            aggregate.ID().Bytes(),
		OrderID:       aggregate.OrderID().Bytes(),
		OrderItemID:   aggregate.OrderItemID().Bytes(),
		SKU:           aggregate.SKU(),
		LocationCode:  aggregate.LocationCode(),
		Quantity:      aggregate.Quantity(),
		ReservationID: aggregate.ReservationID(),
		Status:        int(aggregate.Status()),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
	}
}

func toDomain(dto AllocationDTO) (*allocation.Allocation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	orderItemID, err := kernel.UUIDFromBytes(dto.OrderItemID[:])
	if err != nil {
		return nil, err
	}

	return allocation.RestoreAllocation(id, orderID, orderItemID, dto.SKU,
		dto.LocationCode, dto.Quantity, dto.ReservationID,
		allocation.Status(dto.Status), dto.CreatedAt, dto.UpdatedAt)
}

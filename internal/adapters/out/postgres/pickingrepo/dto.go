// Package pickingrepo provides data transfer objects and mapping functions
// for picking task persistence. A task row owns its line rows.
package pickingrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/picking"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PickingTaskDTO represents the database structure for persisting picking
// tasks.
type PickingTaskDTO struct {
	ID          uuid.UUID            `gorm:"type:uuid;primaryKey"`
	Number      string               `gorm:"uniqueIndex"`
	OrderID     uuid.UUID            `gorm:"type:uuid;index"`
	WarehouseID uuid.UUID            `gorm:"type:uuid"`
	Status      int                  `gorm:"type:smallint;index"`
	Picker      string
	Items       []PickingTaskItemDTO `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}

// TableName overrides GORM's default naming convention to use "picking_tasks".
func (PickingTaskDTO) TableName() string {
	return "picking_tasks"
}

// PickingTaskItemDTO represents a single pick line: what to pick, from where,
// and how many were actually picked.
type PickingTaskItemDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TaskID         uuid.UUID       `gorm:"type:uuid;index"`
	OrderItemID    uuid.UUID       `gorm:"type:uuid"`
	AllocationID   uuid.UUID       `gorm:"type:uuid"`
	SKU            string
	LocationCode   string
	QuantityToPick decimal.Decimal `gorm:"type:numeric(18,3)"`
	QuantityPicked decimal.Decimal `gorm:"type:numeric(18,3)"`
	Recorded       bool
}

// TableName overrides GORM's default naming convention.
func (PickingTaskItemDTO) TableName() string {
	return "picking_task_items"
}

func fromDomain(task *picking.Task) PickingTaskDTO {
	items := make([]PickingTaskItemDTO, 0, len(task.Items()))
	for _, item := range task.Items() {
		items = append(items, PickingTaskItemDTO{
			ID:             item.ID().Bytes(),
			TaskID:         task.ID().Bytes(),
			OrderItemID:    item.OrderItemID().Bytes(),
			AllocationID:   item.AllocationID().Bytes(),
			SKU:            item.SKU(),
			LocationCode:   item.LocationCode(),
			QuantityToPick: item.QuantityToPick(),
			QuantityPicked: item.QuantityPicked(),
			Recorded:       item.IsRecorded(),
		})
	}

	return PickingTaskDTO{
		ID:          task.ID().Bytes(),
		Number:      task.Number(),
		OrderID:     task.OrderID().Bytes(),
		WarehouseID: task.WarehouseID().Bytes(),
		Status:      int(task.Status()),
		Picker:      task.Picker(),
		Items:       items,
		CreatedAt:   task.CreatedAt(),
		UpdatedAt:   task.UpdatedAt(),
		CompletedAt: task.CompletedAt(),
	}
}

func toDomain(dto PickingTaskDTO) (*picking.Task, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	warehouseID, err := kernel.UUIDFromBytes(dto.WarehouseID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*picking.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := toDomainItem(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return picking.RestoreTask(id, dto.Number, orderID, warehouseID,
		picking.Status(dto.Status), dto.Picker, items,
		dto.CreatedAt, dto.UpdatedAt, dto.CompletedAt)
}

func toDomainItem(dto PickingTaskItemDTO) (*picking.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderItemID, err := kernel.UUIDFromBytes(dto.OrderItemID[:])
	if err != nil {
		return nil, err
	}
	allocationID, err := kernel.UUIDFromBytes(dto.AllocationID[:])
	if err != nil {
		return nil, err
	}

	return picking.RestoreItem(id, orderItemID, allocationID, dto.SKU,
		dto.LocationCode, dto.QuantityToPick, dto.QuantityPicked, dto.Recorded)
}

// Package packingrepo provides data transfer objects and mapping functions
// for packing task persistence. The aggregate spans three tables: the task,
// its packages, and the content lines inside each package.
package packingrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PackingTaskDTO represents the database structure for persisting packing
// tasks.
type PackingTaskDTO struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey"`
	Number      string       `gorm:"uniqueIndex"`
	OrderID     uuid.UUID    `gorm:"type:uuid;index"`
	WarehouseID uuid.UUID    `gorm:"type:uuid"`
	Status      int          `gorm:"type:smallint;index"`
	Packages    []PackageDTO `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}

// TableName overrides GORM's default naming convention to use "packing_tasks".
func (PackingTaskDTO) TableName() string {
	return "packing_tasks"
}

// PackageDTO represents a single container and its weight cap.
type PackageDTO struct {
	ID        uuid.UUID        `gorm:"type:uuid;primaryKey"`
	TaskID    uuid.UUID        `gorm:"type:uuid;index"`
	Number    string           `gorm:"uniqueIndex"`
	Type      int              `gorm:"type:smallint"`
	Length    decimal.Decimal  `gorm:"type:numeric(18,2)"`
	Width     decimal.Decimal  `gorm:"type:numeric(18,2)"`
	Height    decimal.Decimal  `gorm:"type:numeric(18,2)"`
	MaxWeight decimal.Decimal  `gorm:"type:numeric(18,3)"`
	Status    int              `gorm:"type:smallint"`
	Items     []PackageItemDTO `gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention to use "packages".
func (PackageDTO) TableName() string {
	return "packages"
}

// PackageItemDTO represents a packed quantity of one order line.
type PackageItemDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PackageID   uuid.UUID       `gorm:"type:uuid;index"`
	OrderItemID uuid.UUID       `gorm:"type:uuid"`
	SKU         string
	Quantity    decimal.Decimal `gorm:"type:numeric(18,3)"`
	UnitWeight  decimal.Decimal `gorm:"type:numeric(18,3)"`
}

// TableName overrides GORM's default naming convention.
func (PackageItemDTO) TableName() string {
	return "package_items"
}

func fromDomain(task *packing.Task) PackingTaskDTO {
	packages := make([]PackageDTO, 0, len(task.Packages()))
	for _, pkg := range task.Packages() {
		packages = append(packages, fromDomainPackage(task.ID(), pkg))
	}

	return PackingTaskDTO{
		ID:          task.ID().Bytes(),
		Number:      task.Number(),
		OrderID:     task.OrderID().Bytes(),
		WarehouseID: task.WarehouseID().Bytes(),
		Status:      int(task.Status()),
		Packages:    packages,
		CreatedAt:   task.CreatedAt(),
		UpdatedAt:   task.UpdatedAt(),
		CompletedAt: task.CompletedAt(),
	}
}

func fromDomainPackage(taskID kernel.UUID, pkg *packing.Package) PackageDTO {
	items := make([]PackageItemDTO, 0, len(pkg.Items()))
	for _, item := range pkg.Items() {
		items = append(items, PackageItemDTO{
			ID:          item.ID().Bytes(),
			PackageID:   pkg.ID().Bytes(),
			OrderItemID: item.OrderItemID().Bytes(),
			SKU:         item.SKU(),
			Quantity:    item.Quantity(),
			UnitWeight:  item.UnitWeight(),
		})
	}

	return PackageDTO{
		ID:        pkg.ID().Bytes(),
		TaskID:    taskID.Bytes(),
		Number:    pkg.Number(),
		Type:      int(pkg.Type()),
		Length:    pkg.Dimensions().Length(),
		Width:     pkg.Dimensions().Width(),
		Height:    pkg.Dimensions().Height(),
		MaxWeight: pkg.MaxWeight(),
		Status:    int(pkg.Status()),
		Items:     items,
	}
}

func toDomain(dto PackingTaskDTO) (*packing.Task, error) {
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

	packages := make([]*packing.Package, 0, len(dto.Packages))
	for _, pkgDTO := range dto.Packages {
		pkg, pkgErr := toDomainPackage(pkgDTO)
		if pkgErr != nil {
			return nil, pkgErr
		}
		packages = append(packages, pkg)
	}

	return packing.RestoreTask(id, dto.Number, orderID, warehouseID,
		packing.Status(dto.Status), packages,
		dto.CreatedAt, dto.UpdatedAt, dto.CompletedAt)
}

func toDomainPackage(dto PackageDTO) (*packing.Package, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*packing.PackageItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		orderItemID, itemErr := kernel.UUIDFromBytes(itemDTO.OrderItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		item, itemErr := packing.NewPackageItem(itemID, orderItemID,
			itemDTO.SKU, itemDTO.Quantity, itemDTO.UnitWeight)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	dimensions, err := packing.NewDimensions(dto.Length, dto.Width, dto.Height)
	if err != nil {
		return nil, err
	}
	return packing.RestorePackage(id, dto.Number, packing.PackageType(dto.Type),
		dimensions, dto.MaxWeight, packing.PackageStatus(dto.Status), items)
}

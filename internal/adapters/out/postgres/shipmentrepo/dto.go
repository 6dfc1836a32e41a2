// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. Shipment items snapshot the finalized packages,
// so they are written once and never updated.
package shipmentrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShipmentDTO represents the database structure for persisting shipments.
// The destination address is embedded in the shipment row.
type ShipmentDTO struct {
	ID             uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Number         string            `gorm:"uniqueIndex"`
	OrderID        uuid.UUID         `gorm:"type:uuid;index"`
	Carrier        string
	TrackingNumber string
	Destination    AddressDTO        `gorm:"embedded;embeddedPrefix:dest_"`
	Status         int               `gorm:"type:smallint;index"`
	Items          []ShipmentItemDTO `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	ShippedAt      *time.Time
	DeliveredAt    *time.Time
}

// TableName overrides GORM's default naming convention to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// AddressDTO represents the embedded destination address columns.
type AddressDTO struct {
	Line1      string
	Line2      string
	City       string
	Region     string
	PostalCode string
	Country    string
}

// ShipmentItemDTO snapshots one finalized package at shipment creation time.
type ShipmentItemDTO struct {
	ID            uint            `gorm:"primaryKey;autoIncrement"`
	ShipmentID    uuid.UUID       `gorm:"type:uuid;index"`
	PackageID     uuid.UUID       `gorm:"type:uuid"`
	PackageNumber string
	Weight        decimal.Decimal `gorm:"type:numeric(18,3)"`
	Length        decimal.Decimal `gorm:"type:numeric(18,2)"`
	Width         decimal.Decimal `gorm:"type:numeric(18,2)"`
	Height        decimal.Decimal `gorm:"type:numeric(18,2)"`
}

// TableName overrides GORM's default naming convention.
func (ShipmentItemDTO) TableName() string {
	return "shipment_items"
}

func fromDomain(s *shipment.Shipment) ShipmentDTO {
	items := make([]ShipmentItemDTO, 0, len(s.Items()))
	for _, item := range s.Items() {
		items = append(items, ShipmentItemDTO{
			ShipmentID:    s.ID().Bytes(),
			PackageID:     item.PackageID().Bytes(),
			PackageNumber: item.PackageNumber(),
			Weight:        item.Weight(),
			Length:        item.Length(),
			Width:         item.Width(),
			Height:        item.Height(),
		})
	}

	destination := s.Destination()
	return ShipmentDTO{
		ID:             s.ID().Bytes(),
		Number:         s.Number(),
		OrderID:        s.OrderID().Bytes(),
		Carrier:        s.Carrier(),
		TrackingNumber: s.TrackingNumber(),
		Destination: AddressDTO{
			Line1:      destination.Line1(),
			Line2:      destination.Line2(),
			City:       destination.City(),
			Region:     destination.Region(),
			PostalCode: destination.PostalCode(),
			Country:    destination.Country(),
		},
		Status:      int(s.Status()),
		Items:       items,
		CreatedAt:   s.CreatedAt(),
		UpdatedAt:   s.UpdatedAt(),
		ShippedAt:   s.ShippedAt(),
		DeliveredAt: s.DeliveredAt(),
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	destination, err := shipment.NewAddress(dto.Destination.Line1,
		dto.Destination.Line2, dto.Destination.City, dto.Destination.Region,
		dto.Destination.PostalCode, dto.Destination.Country)
	if err != nil {
		return nil, err
	}

	items := make([]*shipment.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		packageID, itemErr := kernel.UUIDFromBytes(itemDTO.PackageID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		item, itemErr := shipment.NewShipmentItem(packageID,
			itemDTO.PackageNumber, itemDTO.Weight,
			itemDTO.Length, itemDTO.Width, itemDTO.Height)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return shipment.RestoreShipment(id, dto.Number, orderID, dto.Carrier,
		dto.TrackingNumber, destination, shipment.Status(dto.Status), items,
		dto.CreatedAt, dto.UpdatedAt, dto.ShippedAt, dto.DeliveredAt)
}

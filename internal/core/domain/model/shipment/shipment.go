package shipment

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through the NewShipment or RestoreShipment factory functions.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

// Item is one package on a shipment, with its weight and dimensions
// snapshotted at shipment creation so the manifest stays stable even if
// package data changes later.
type Item struct {
	packageID     kernel.UUID
	packageNumber string
	weight        decimal.Decimal
	length        decimal.Decimal
	width         decimal.Decimal
	height        decimal.Decimal
}

// NewShipmentItem snapshots a finalized package onto a shipment.
func NewShipmentItem(
	packageID kernel.UUID,
	packageNumber string,
	weight decimal.Decimal,
	length decimal.Decimal,
	width decimal.Decimal,
	height decimal.Decimal,
) (*Item, error) {
	if err := errors.Join(
		packageID.Validate(),
		kernel.ValidatePositiveDecimal("package weight", weight),
		kernel.ValidatePositiveDecimal("length", length),
		kernel.ValidatePositiveDecimal("width", width),
		kernel.ValidatePositiveDecimal("height", height),
	); err != nil {
		return nil, err
	}
	if packageNumber == "" {
		return nil, errs.NewValueIsRequiredError("package number")
	}

	return &Item{
		packageID:     packageID,
		packageNumber: packageNumber,
		weight:        weight,
		length:        length,
		width:         width,
		height:        height,
	}, nil
}

// PackageID returns the shipped package's identifier.
func (i *Item) PackageID() kernel.UUID { return i.packageID }

// PackageNumber returns the shipped package's human-readable number.
func (i *Item) PackageNumber() string { return i.packageNumber }

// Weight returns the package's gross weight at shipment time.
func (i *Item) Weight() decimal.Decimal { return i.weight }

// Length returns the package length in centimeters at shipment time.
func (i *Item) Length() decimal.Decimal { return i.length }

// Width returns the package width in centimeters at shipment time.
func (i *Item) Width() decimal.Decimal { return i.width }

// Height returns the package height in centimeters at shipment time.
func (i *Item) Height() decimal.Decimal { return i.height }

// Shipment is the aggregate root of the shipping stage. One shipment covers
// all packages of one order's completed packing task.
type Shipment struct {
	id      kernel.UUID
	number  string
	orderID kernel.UUID

	carrier        string
	trackingNumber string
	destination    Address

	status Status
	items  []*Item

	createdAt   time.Time
	updatedAt   time.Time
	shippedAt   *time.Time
	deliveredAt *time.Time

	guard guard.ConstructorGuard
}

// NewShipment creates a shipment in Created status with number
// SHP-<timestamp>-<suffix>. At least one package is required.
func NewShipment(
	id kernel.UUID,
	orderID kernel.UUID,
	carrier string,
	destination Address,
	items []*Item,
) (*Shipment, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), destination.Validate()); err != nil {
		return nil, err
	}
	if carrier == "" {
		return nil, errs.NewValueIsRequiredError("carrier")
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("shipment packages")
	}

	now := time.Now().UTC()
	return &Shipment{
		id:          id,
		number:      kernel.BusinessNumber("SHP", now, id),
		orderID:     orderID,
		carrier:     carrier,
		destination: destination,
		status:      StatusCreated,
		items:       items,
		createdAt:   now,
		updatedAt:   now,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreShipment reconstructs a shipment from persistence.
func RestoreShipment(
	id kernel.UUID,
	number string,
	orderID kernel.UUID,
	carrier string,
	trackingNumber string,
	destination Address,
	status Status,
	items []*Item,
	createdAt time.Time,
	updatedAt time.Time,
	shippedAt *time.Time,
	deliveredAt *time.Time,
) (*Shipment, error) {
	s, err := NewShipment(id, orderID, carrier, destination, items)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if number == "" {
		return nil, errs.NewValueIsRequiredError("shipment number")
	}

	s.number = number
	s.trackingNumber = trackingNumber
	s.status = status
	s.createdAt = createdAt
	s.updatedAt = updatedAt
	s.shippedAt = shippedAt
	s.deliveredAt = deliveredAt
	return s, nil
}

// Validate ensures the Shipment was built through a factory function.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID { return s.id }

// Number returns the human-readable shipment number.
func (s *Shipment) Number() string { return s.number }

// OrderID returns the order this shipment fulfills.
func (s *Shipment) OrderID() kernel.UUID { return s.orderID }

// Carrier returns the carrier name.
func (s *Shipment) Carrier() string { return s.carrier }

// TrackingNumber returns the carrier tracking number, empty until a label
// is generated.
func (s *Shipment) TrackingNumber() string { return s.trackingNumber }

// Destination returns the shipping address.
func (s *Shipment) Destination() Address { return s.destination }

// Status returns the shipment's lifecycle state.
func (s *Shipment) Status() Status { return s.status }

// Items returns the packages on this shipment.
func (s *Shipment) Items() []*Item { return s.items }

// CreatedAt returns the creation timestamp (UTC).
func (s *Shipment) CreatedAt() time.Time { return s.createdAt }

// UpdatedAt returns the last mutation timestamp (UTC).
func (s *Shipment) UpdatedAt() time.Time { return s.updatedAt }

// ShippedAt returns when the carrier took the packages, nil before transit.
func (s *Shipment) ShippedAt() *time.Time { return s.shippedAt }

// DeliveredAt returns the delivery confirmation time, nil until delivered.
func (s *Shipment) DeliveredAt() *time.Time { return s.deliveredAt }

// TotalWeight returns the summed gross weight of all packages.
func (s *Shipment) TotalWeight() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.items {
		total = total.Add(item.weight)
	}
	return total
}

// AssignTracking records the carrier tracking number and moves the shipment
// to LabelGenerated.
func (s *Shipment) AssignTracking(trackingNumber string) error {
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("tracking number")
	}
	next, err := s.status.TransitionTo(StatusLabelGenerated)
	if err != nil {
		return err
	}
	s.status = next
	s.trackingNumber = trackingNumber
	s.touch()
	return nil
}

// UpdateStatus moves the shipment along its forward-only workflow and stamps
// the transit and delivery times as they happen.
func (s *Shipment) UpdateStatus(requested Status) error {
	next, err := s.status.TransitionTo(requested)
	if err != nil {
		return err
	}
	s.status = next

	now := time.Now().UTC()
	switch next {
	case StatusInTransit:
		s.shippedAt = &now
	case StatusDelivered:
		s.deliveredAt = &now
	}
	s.touch()
	return nil
}

func (s *Shipment) touch() {
	s.updatedAt = time.Now().UTC()
}

package allocation

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrAllocationIsNotConstructed is returned when an Allocation instance was
// not created through the NewAllocation or RestoreAllocation factory functions.
var ErrAllocationIsNotConstructed = errors.New("Allocation must be created via NewAllocation constructor")

// Allocation is one inventory reservation: a quantity of one SKU held at one
// stock location for one order line. The reservationID is the external
// adapter's handle and is the key used to release the hold on cancellation.
type Allocation struct {
	id          kernel.UUID
	orderID     kernel.UUID
	orderItemID kernel.UUID

	sku           string
	locationCode  string
	quantity      decimal.Decimal
	reservationID string

	status Status

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewAllocation creates an active reservation record.
func NewAllocation(
	id kernel.UUID,
	orderID kernel.UUID,
	orderItemID kernel.UUID,
	sku string,
	locationCode string,
	quantity decimal.Decimal,
	reservationID string,
) (*Allocation, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		orderItemID.Validate(),
		kernel.ValidatePositiveDecimal("allocation quantity", quantity),
	); err != nil {
		return nil, err
	}
	if sku == "" {
		return nil, errs.NewValueIsRequiredError("sku")
	}
	if locationCode == "" {
		return nil, errs.NewValueIsRequiredError("location code")
	}
	if reservationID == "" {
		return nil, errs.NewValueIsRequiredError("reservation id")
	}

	now := time.Now().UTC()
	return &Allocation{
		id:            id,
		orderID:       orderID,
		orderItemID:   orderItemID,
		sku:           sku,
		locationCode:  locationCode,
		quantity:      quantity,
		reservationID: reservationID,
		status:        StatusActive,
		createdAt:     now,
		updatedAt:     now,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// RestoreAllocation reconstructs a reservation record from persistence.
func RestoreAllocation(
	id kernel.UUID,
	orderID kernel.UUID,
	orderItemID kernel.UUID,
	sku string,
	locationCode string,
	quantity decimal.Decimal,
	reservationID string,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Allocation, error) {
	alloc, err := NewAllocation(id, orderID, orderItemID, sku, locationCode, quantity, reservationID)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	alloc.status = status
	alloc.createdAt = createdAt
	alloc.updatedAt = updatedAt
	return alloc, nil
}

// Validate ensures the Allocation was built through a factory function.
func (a *Allocation) Validate() error {
	if a == nil {
		return ErrAllocationIsNotConstructed
	}
	return a.guard.Validate(ErrAllocationIsNotConstructed)
}

// ID returns the allocation's unique identifier.
func (a *Allocation) ID() kernel.UUID { return a.id }

// OrderID returns the owning order's identifier.
func (a *Allocation) OrderID() kernel.UUID { return a.orderID }

// OrderItemID returns the order line this reservation backs.
func (a *Allocation) OrderItemID() kernel.UUID { return a.orderItemID }

// SKU returns the reserved product's SKU.
func (a *Allocation) SKU() string { return a.sku }

// LocationCode returns the stock location the quantity is held at.
func (a *Allocation) LocationCode() string { return a.locationCode }

// Quantity returns the reserved quantity.
func (a *Allocation) Quantity() decimal.Decimal { return a.quantity }

// ReservationID returns the external adapter's reservation handle.
func (a *Allocation) ReservationID() string { return a.reservationID }

// Status returns the reservation's lifecycle state.
func (a *Allocation) Status() Status { return a.status }

// CreatedAt returns the creation timestamp (UTC).
func (a *Allocation) CreatedAt() time.Time { return a.createdAt }

// UpdatedAt returns the last mutation timestamp (UTC).
func (a *Allocation) UpdatedAt() time.Time { return a.updatedAt }

// IsActive reports whether the reservation still holds stock.
func (a *Allocation) IsActive() bool { return a.status == StatusActive }

// Release marks the reservation as compensated back to stock. Only active
// reservations can be released; releasing twice is an invalid transition.
func (a *Allocation) Release() error {
	if a.status != StatusActive {
		return errs.NewInvalidTransitionError("Allocation", a.status.String(), StatusReleased.String())
	}
	a.status = StatusReleased
	a.updatedAt = time.Now().UTC()
	return nil
}

// Consume marks the reservation as fulfilled by a delivered shipment.
func (a *Allocation) Consume() error {
	if a.status != StatusActive {
		return errs.NewInvalidTransitionError("Allocation", a.status.String(), StatusConsumed.String())
	}
	a.status = StatusConsumed
	a.updatedAt = time.Now().UTC()
	return nil
}

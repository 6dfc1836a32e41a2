package picking

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem or RestoreItem factory functions.
var ErrItemIsNotConstructed = errors.New("picking Item must be created via NewItem constructor")

// Item is one line of a picking task: pick quantityToPick of one SKU from
// one stock location. The location and quantity come from the reservation
// the line was generated from.
//
// recorded distinguishes "nothing picked yet" from "a zero pick was
// confirmed"; a task completes only when every line has been recorded.
type Item struct {
	id           kernel.UUID
	orderItemID  kernel.UUID
	allocationID kernel.UUID

	sku          string
	locationCode string

	quantityToPick decimal.Decimal
	quantityPicked decimal.Decimal
	recorded       bool

	guard guard.ConstructorGuard
}

// NewItem creates a task line from a reservation.
func NewItem(
	id kernel.UUID,
	orderItemID kernel.UUID,
	allocationID kernel.UUID,
	sku string,
	locationCode string,
	quantityToPick decimal.Decimal,
) (*Item, error) {
	if err := errors.Join(
		id.Validate(),
		orderItemID.Validate(),
		allocationID.Validate(),
		kernel.ValidatePositiveDecimal("quantity to pick", quantityToPick),
	); err != nil {
		return nil, err
	}
	if sku == "" {
		return nil, errs.NewValueIsRequiredError("sku")
	}
	if locationCode == "" {
		return nil, errs.NewValueIsRequiredError("location code")
	}

	return &Item{
		id:             id,
		orderItemID:    orderItemID,
		allocationID:   allocationID,
		sku:            sku,
		locationCode:   locationCode,
		quantityToPick: quantityToPick,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// RestoreItem reconstructs a task line from persistence.
func RestoreItem(
	id kernel.UUID,
	orderItemID kernel.UUID,
	allocationID kernel.UUID,
	sku string,
	locationCode string,
	quantityToPick decimal.Decimal,
	quantityPicked decimal.Decimal,
	recorded bool,
) (*Item, error) {
	item, err := NewItem(id, orderItemID, allocationID, sku, locationCode, quantityToPick)
	if err != nil {
		return nil, err
	}

	item.quantityPicked = quantityPicked
	item.recorded = recorded
	return item, nil
}

// Validate ensures the Item was built through a factory function.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the line's unique identifier.
func (i *Item) ID() kernel.UUID { return i.id }

// OrderItemID returns the order line this pick counts toward.
func (i *Item) OrderItemID() kernel.UUID { return i.orderItemID }

// AllocationID returns the reservation this line was generated from.
func (i *Item) AllocationID() kernel.UUID { return i.allocationID }

// SKU returns the product SKU to pick.
func (i *Item) SKU() string { return i.sku }

// LocationCode returns the stock location to pick from.
func (i *Item) LocationCode() string { return i.locationCode }

// QuantityToPick returns the reserved quantity for this line.
func (i *Item) QuantityToPick() decimal.Decimal { return i.quantityToPick }

// QuantityPicked returns the quantity recorded so far.
func (i *Item) QuantityPicked() decimal.Decimal { return i.quantityPicked }

// IsRecorded reports whether a pick has been confirmed for this line,
// including a confirmed zero pick.
func (i *Item) IsRecorded() bool { return i.recorded }

// recordPick accumulates a picked quantity. Zero quantities are allowed and
// mark the line as a confirmed short pick; the accumulated total may never
// exceed the quantity to pick.
func (i *Item) recordPick(qty decimal.Decimal) error {
	if err := kernel.ValidateNonNegativeDecimal("picked quantity", qty); err != nil {
		return err
	}
	next := i.quantityPicked.Add(qty)
	if next.GreaterThan(i.quantityToPick) {
		return errs.NewValueIsOutOfRangeError("quantity picked", next.String(), "0", i.quantityToPick.String())
	}
	i.quantityPicked = next
	i.recorded = true
	return nil
}

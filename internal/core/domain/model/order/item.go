package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem or RestoreItem factory functions.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one order line: a product, the quantity the customer ordered, and
// the denormalized counters tracking how much of that quantity has been
// allocated, picked, and packed so far.
//
// The base fields (sku, quantity ordered, unit price, unit weight) are
// immutable once the parent Order leaves Created. The counters are mutated
// only by the downstream services, always inside the order's transaction, and
// always respect the cascade of caps:
//
//	allocated ≤ ordered, picked ≤ allocated, packed ≤ picked
type Item struct {
	id        kernel.UUID
	productID kernel.UUID
	sku       string
	name      string

	quantityOrdered decimal.Decimal
	unitPrice       decimal.Decimal
	unitWeight      decimal.Decimal

	quantityAllocated decimal.Decimal
	quantityPicked    decimal.Decimal
	quantityPacked    decimal.Decimal

	guard guard.ConstructorGuard
}

// NewItem creates an order line from customer input.
//
// Validation: sku and name must be present, quantity must be greater than 0,
// unit price and unit weight must be non-negative. All counters start at zero.
func NewItem(
	id kernel.UUID,
	productID kernel.UUID,
	sku string,
	name string,
	quantityOrdered decimal.Decimal,
	unitPrice decimal.Decimal,
	unitWeight decimal.Decimal,
) (*Item, error) {
	if err := errors.Join(
		id.Validate(),
		productID.Validate(),
		validateSKU(sku),
		validateName(name),
		kernel.ValidatePositiveDecimal("quantity ordered", quantityOrdered),
		kernel.ValidateNonNegativeDecimal("unit price", unitPrice),
		kernel.ValidateNonNegativeDecimal("unit weight", unitWeight),
	); err != nil {
		return nil, err
	}

	return &Item{
		id:              id,
		productID:       productID,
		sku:             sku,
		name:            name,
		quantityOrdered: quantityOrdered,
		unitPrice:       unitPrice,
		unitWeight:      unitWeight,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// RestoreItem reconstructs an order line from persistence, counters included.
func RestoreItem(
	id kernel.UUID,
	productID kernel.UUID,
	sku string,
	name string,
	quantityOrdered decimal.Decimal,
	unitPrice decimal.Decimal,
	unitWeight decimal.Decimal,
	quantityAllocated decimal.Decimal,
	quantityPicked decimal.Decimal,
	quantityPacked decimal.Decimal,
) (*Item, error) {
	item, err := NewItem(id, productID, sku, name, quantityOrdered, unitPrice, unitWeight)
	if err != nil {
		return nil, err
	}

	item.quantityAllocated = quantityAllocated
	item.quantityPicked = quantityPicked
	item.quantityPacked = quantityPacked
	return item, nil
}

// Validate ensures the Item was built through a factory function.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID { return i.id }

// ProductID returns the referenced product's identifier.
func (i *Item) ProductID() kernel.UUID { return i.productID }

// SKU returns the product SKU used for inventory tracking.
func (i *Item) SKU() string { return i.sku }

// Name returns the product name captured at order time.
func (i *Item) Name() string { return i.name }

// QuantityOrdered returns the quantity the customer ordered.
func (i *Item) QuantityOrdered() decimal.Decimal { return i.quantityOrdered }

// UnitPrice returns the price per unit.
func (i *Item) UnitPrice() decimal.Decimal { return i.unitPrice }

// UnitWeight returns the weight per unit in kilograms.
func (i *Item) UnitWeight() decimal.Decimal { return i.unitWeight }

// QuantityAllocated returns how much of this line is currently reserved.
func (i *Item) QuantityAllocated() decimal.Decimal { return i.quantityAllocated }

// QuantityPicked returns how much of this line has been picked.
func (i *Item) QuantityPicked() decimal.Decimal { return i.quantityPicked }

// QuantityPacked returns how much of this line has been packed.
func (i *Item) QuantityPacked() decimal.Decimal { return i.quantityPacked }

// LineTotal returns quantity ordered times unit price.
func (i *Item) LineTotal() decimal.Decimal {
	return i.quantityOrdered.Mul(i.unitPrice)
}

// RemainingToAllocate returns the quantity still needing a reservation.
func (i *Item) RemainingToAllocate() decimal.Decimal {
	return i.quantityOrdered.Sub(i.quantityAllocated)
}

// RemainingToPack returns picked minus packed.
func (i *Item) RemainingToPack() decimal.Decimal {
	return i.quantityPicked.Sub(i.quantityPacked)
}

// IsFullyPacked reports whether everything picked has been packed.
// Short-picked lines count as fully packed once the picked quantity is boxed.
func (i *Item) IsFullyPacked() bool {
	return i.quantityPacked.Equal(i.quantityPicked)
}

// AddAllocated increases the allocated counter.
// The sum of active reservations may never exceed the ordered quantity.
func (i *Item) AddAllocated(qty decimal.Decimal) error {
	if err := kernel.ValidatePositiveDecimal("allocation quantity", qty); err != nil {
		return err
	}
	next := i.quantityAllocated.Add(qty)
	if next.GreaterThan(i.quantityOrdered) {
		return errs.NewValueIsOutOfRangeError("quantity allocated", next.String(), "0", i.quantityOrdered.String())
	}
	i.quantityAllocated = next
	return nil
}

// ReleaseAllocated decreases the allocated counter after a reservation is
// released. Releasing more than is currently allocated is a bug.
func (i *Item) ReleaseAllocated(qty decimal.Decimal) error {
	if err := kernel.ValidatePositiveDecimal("release quantity", qty); err != nil {
		return err
	}
	if qty.GreaterThan(i.quantityAllocated) {
		return errs.NewValueIsInvalidErrorWithCause("release quantity",
			fmt.Errorf("releasing %s but only %s allocated", qty, i.quantityAllocated))
	}
	i.quantityAllocated = i.quantityAllocated.Sub(qty)
	return nil
}

// AddPicked increases the picked counter, capped by the allocated quantity.
func (i *Item) AddPicked(qty decimal.Decimal) error {
	if err := kernel.ValidateNonNegativeDecimal("picked quantity", qty); err != nil {
		return err
	}
	next := i.quantityPicked.Add(qty)
	if next.GreaterThan(i.quantityAllocated) {
		return errs.NewValueIsOutOfRangeError("quantity picked", next.String(), "0", i.quantityAllocated.String())
	}
	i.quantityPicked = next
	return nil
}

// AddPacked increases the packed counter, capped by the picked quantity.
func (i *Item) AddPacked(qty decimal.Decimal) error {
	if err := kernel.ValidatePositiveDecimal("packed quantity", qty); err != nil {
		return err
	}
	next := i.quantityPacked.Add(qty)
	if next.GreaterThan(i.quantityPicked) {
		return errs.NewValueIsOutOfRangeError("quantity packed", next.String(), "0", i.quantityPicked.String())
	}
	i.quantityPacked = next
	return nil
}

func validateSKU(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	return nil
}

func validateName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	return nil
}

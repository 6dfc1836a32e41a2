package packing

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrPackageIsNotConstructed is returned when a Package instance was not
// created through the NewPackage or RestorePackage factory functions.
var ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage constructor")

// PackageStatus is the open/sealed state of a single package.
type PackageStatus int

const (
	PackageUnknown PackageStatus = iota

	// PackageOpen accepts items.
	PackageOpen

	// PackageFinalized is sealed; its contents and weight are frozen.
	PackageFinalized
)

// String returns the human-readable name of the package status.
func (s PackageStatus) String() string {
	switch s {
	case PackageOpen:
		return "Open"
	case PackageFinalized:
		return "Finalized"
	}
	return "Unknown"
}

// Validate checks if the PackageStatus value is valid.
func (s PackageStatus) Validate() error {
	if s != PackageOpen && s != PackageFinalized {
		return errs.NewValueIsInvalidErrorWithCause("package status",
			fmt.Errorf("%d is not a valid package status", s))
	}
	return nil
}

// Dimensions are the outer length, width, and height of a container in
// centimeters. All three must be positive.
type Dimensions struct {
	length decimal.Decimal
	width  decimal.Decimal
	height decimal.Decimal
}

// NewDimensions creates validated container dimensions.
func NewDimensions(length, width, height decimal.Decimal) (Dimensions, error) {
	if err := errors.Join(
		kernel.ValidatePositiveDecimal("length", length),
		kernel.ValidatePositiveDecimal("width", width),
		kernel.ValidatePositiveDecimal("height", height),
	); err != nil {
		return Dimensions{}, err
	}
	return Dimensions{length: length, width: width, height: height}, nil
}

// Length returns the container length in centimeters.
func (d Dimensions) Length() decimal.Decimal { return d.length }

// Width returns the container width in centimeters.
func (d Dimensions) Width() decimal.Decimal { return d.width }

// Height returns the container height in centimeters.
func (d Dimensions) Height() decimal.Decimal { return d.height }

// Validate checks the dimensions were created through the constructor.
func (d Dimensions) Validate() error {
	return errors.Join(
		kernel.ValidatePositiveDecimal("length", d.length),
		kernel.ValidatePositiveDecimal("width", d.width),
		kernel.ValidatePositiveDecimal("height", d.height),
	)
}

// PackageItem is one content line of a package. Adding the same order line
// to the same package again accumulates onto the existing line.
type PackageItem struct {
	id          kernel.UUID
	orderItemID kernel.UUID
	sku         string
	quantity    decimal.Decimal
	unitWeight  decimal.Decimal
}

// NewPackageItem creates a content line.
func NewPackageItem(
	id kernel.UUID,
	orderItemID kernel.UUID,
	sku string,
	quantity decimal.Decimal,
	unitWeight decimal.Decimal,
) (*PackageItem, error) {
	if err := errors.Join(
		id.Validate(),
		orderItemID.Validate(),
		kernel.ValidatePositiveDecimal("package item quantity", quantity),
		kernel.ValidateNonNegativeDecimal("unit weight", unitWeight),
	); err != nil {
		return nil, err
	}
	if sku == "" {
		return nil, errs.NewValueIsRequiredError("sku")
	}

	return &PackageItem{
		id:          id,
		orderItemID: orderItemID,
		sku:         sku,
		quantity:    quantity,
		unitWeight:  unitWeight,
	}, nil
}

// ID returns the line's unique identifier.
func (pi *PackageItem) ID() kernel.UUID { return pi.id }

// OrderItemID returns the order line this quantity came from.
func (pi *PackageItem) OrderItemID() kernel.UUID { return pi.orderItemID }

// SKU returns the packed product's SKU.
func (pi *PackageItem) SKU() string { return pi.sku }

// Quantity returns the packed quantity.
func (pi *PackageItem) Quantity() decimal.Decimal { return pi.quantity }

// UnitWeight returns the weight per unit in kilograms.
func (pi *PackageItem) UnitWeight() decimal.Decimal { return pi.unitWeight }

// Weight returns quantity times unit weight.
func (pi *PackageItem) Weight() decimal.Decimal {
	return pi.quantity.Mul(pi.unitWeight)
}

// Package is a physical container being filled during packing. Its gross
// weight is the container tare plus the weight of its contents and may
// never exceed maxWeight, checked before every add.
type Package struct {
	id          kernel.UUID
	number      string
	packageType PackageType
	dimensions  Dimensions
	maxWeight   decimal.Decimal

	status PackageStatus
	items  []*PackageItem

	guard guard.ConstructorGuard
}

// NewPackage opens an empty package with number PKG-<timestamp>-<suffix>.
// The cap must leave room for at least the container itself.
func NewPackage(id kernel.UUID, packageType PackageType, dimensions Dimensions, maxWeight decimal.Decimal) (*Package, error) {
	if err := errors.Join(
		id.Validate(),
		packageType.Validate(),
		dimensions.Validate(),
		kernel.ValidatePositiveDecimal("max weight", maxWeight),
	); err != nil {
		return nil, err
	}
	if packageType.TareWeight().GreaterThan(maxWeight) {
		return nil, errs.NewValueIsInvalidErrorWithCause("max weight",
			fmt.Errorf("%s container alone weighs %s, over the %s cap",
				packageType, packageType.TareWeight(), maxWeight))
	}

	return &Package{
		id:          id,
		number:      kernel.BusinessNumber("PKG", time.Now().UTC(), id),
		packageType: packageType,
		dimensions:  dimensions,
		maxWeight:   maxWeight,
		status:      PackageOpen,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestorePackage reconstructs a package from persistence.
func RestorePackage(
	id kernel.UUID,
	number string,
	packageType PackageType,
	dimensions Dimensions,
	maxWeight decimal.Decimal,
	status PackageStatus,
	items []*PackageItem,
) (*Package, error) {
	pkg, err := NewPackage(id, packageType, dimensions, maxWeight)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if number == "" {
		return nil, errs.NewValueIsRequiredError("package number")
	}

	pkg.number = number
	pkg.status = status
	pkg.items = items
	return pkg, nil
}

// Validate ensures the Package was built through a factory function.
func (p *Package) Validate() error {
	if p == nil {
		return ErrPackageIsNotConstructed
	}
	return p.guard.Validate(ErrPackageIsNotConstructed)
}

// ID returns the package's unique identifier.
func (p *Package) ID() kernel.UUID { return p.id }

// Number returns the human-readable package number.
func (p *Package) Number() string { return p.number }

// Type returns the container type.
func (p *Package) Type() PackageType { return p.packageType }

// Dimensions returns the container's outer dimensions.
func (p *Package) Dimensions() Dimensions { return p.dimensions }

// MaxWeight returns the gross weight cap in kilograms.
func (p *Package) MaxWeight() decimal.Decimal { return p.maxWeight }

// Status returns whether the package is open or finalized.
func (p *Package) Status() PackageStatus { return p.status }

// Items returns the content lines.
func (p *Package) Items() []*PackageItem { return p.items }

// IsEmpty reports whether the package has no contents.
func (p *Package) IsEmpty() bool { return len(p.items) == 0 }

// GrossWeight returns the container tare plus the weight of all contents.
func (p *Package) GrossWeight() decimal.Decimal {
	total := p.packageType.TareWeight()
	for _, item := range p.items {
		total = total.Add(item.Weight())
	}
	return total
}

// AddItem puts a quantity of an order line into the package. Adding a line
// already present accumulates onto it. The projected gross weight is checked
// against the cap before anything is mutated; exactly reaching the cap is
// allowed.
func (p *Package) AddItem(item *PackageItem) error {
	if p.status != PackageOpen {
		return errs.NewValueIsInvalidErrorWithCause("package",
			fmt.Errorf("cannot add items to a %s package", p.status))
	}
	if err := kernel.ValidatePositiveDecimal("package item quantity", item.quantity); err != nil {
		return err
	}

	projected := p.GrossWeight().Add(item.Weight())
	if projected.GreaterThan(p.maxWeight) {
		return errs.NewPackageOverweightError(p.number, projected, p.maxWeight)
	}

	for _, existing := range p.items {
		if existing.orderItemID.IsEqual(item.orderItemID) {
			existing.quantity = existing.quantity.Add(item.quantity)
			return nil
		}
	}
	p.items = append(p.items, item)
	return nil
}

// QuantityOf returns how much of an order line this package holds.
func (p *Package) QuantityOf(orderItemID kernel.UUID) decimal.Decimal {
	for _, item := range p.items {
		if item.orderItemID.IsEqual(orderItemID) {
			return item.quantity
		}
	}
	return decimal.Zero
}

// Finalize seals the package. Empty packages cannot be finalized.
func (p *Package) Finalize() error {
	if p.status != PackageOpen {
		return errs.NewInvalidTransitionError("Package", p.status.String(), PackageFinalized.String())
	}
	if p.IsEmpty() {
		return errs.NewValueIsInvalidErrorWithCause("package",
			errors.New("cannot finalize an empty package"))
	}
	p.status = PackageFinalized
	return nil
}

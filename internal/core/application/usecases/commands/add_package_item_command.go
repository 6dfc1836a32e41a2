package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrAddPackageItemCommandIsNotConstructed = errors.New(
	"AddPackageItemCommand must be created via NewAddPackageItemCommand constructor",
)

// AddPackageItemCommand represents a request to put a quantity of an order
// line into an open package.
type AddPackageItemCommand struct {
	taskID      kernel.UUID
	packageID   kernel.UUID
	orderItemID kernel.UUID
	quantity    decimal.Decimal
	actor       string

	guard guard.ConstructorGuard
}

// NewAddPackageItemCommand creates a command to pack a quantity.
func NewAddPackageItemCommand(
	taskID kernel.UUID,
	packageID kernel.UUID,
	orderItemID kernel.UUID,
	quantity decimal.Decimal,
	actor string,
) (AddPackageItemCommand, error) {
	if err := errors.Join(
		taskID.Validate(),
		packageID.Validate(),
		orderItemID.Validate(),
		kernel.ValidatePositiveDecimal("package item quantity", quantity),
	); err != nil {
		return AddPackageItemCommand{}, err
	}

	return AddPackageItemCommand{
		taskID:      taskID,
		packageID:   packageID,
		orderItemID: orderItemID,
		quantity:    quantity,
		actor:       actor,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddPackageItemCommand) Validate() error {
	return c.guard.Validate(ErrAddPackageItemCommandIsNotConstructed)
}

// TaskID returns the packing task being worked.
func (c AddPackageItemCommand) TaskID() kernel.UUID { return c.taskID }

// PackageID returns the package receiving the quantity.
func (c AddPackageItemCommand) PackageID() kernel.UUID { return c.packageID }

// OrderItemID returns the order line being packed.
func (c AddPackageItemCommand) OrderItemID() kernel.UUID { return c.orderItemID }

// Quantity returns the quantity to pack.
func (c AddPackageItemCommand) Quantity() decimal.Decimal { return c.quantity }

// Actor returns who packed the quantity.
func (c AddPackageItemCommand) Actor() string { return c.actor }

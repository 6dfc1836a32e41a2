package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderItemInput is one order line as submitted by the caller. The item ID
// is caller-supplied so retries of the same request stay idempotent at the
// persistence layer.
type OrderItemInput struct {
	ItemID     kernel.UUID
	ProductID  kernel.UUID
	SKU        string
	Name       string
	Quantity   decimal.Decimal
	UnitPrice  decimal.Decimal
	UnitWeight decimal.Decimal
}

// CreateOrderCommand represents a request to register a new fulfillment
// order with its lines.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), warehouseID,
//	    order.PriorityHigh, items, "alice")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	warehouseID kernel.UUID
	priority    order.Priority
	items       []OrderItemInput
	actor       string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates identifiers, priority, and that at least one item is present.
// Line-level validation (quantities, prices) happens in the Order
// constructor inside the handler.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	warehouseID kernel.UUID,
	priority order.Priority,
	items []OrderItemInput,
	actor string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setWarehouseID(warehouseID),
		cmd.setPriority(priority),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}
	cmd.actor = actor

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the caller-supplied identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// WarehouseID returns the warehouse the order will be fulfilled from.
func (c CreateOrderCommand) WarehouseID() kernel.UUID { return c.warehouseID }

// Priority returns the order priority.
func (c CreateOrderCommand) Priority() order.Priority { return c.priority }

// Items returns the submitted order lines.
func (c CreateOrderCommand) Items() []OrderItemInput { return c.items }

// Actor returns who submitted the order.
func (c CreateOrderCommand) Actor() string { return c.actor }

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setWarehouseID(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}
	c.warehouseID = warehouseID
	return nil
}

func (c *CreateOrderCommand) setPriority(priority order.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	c.priority = priority
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemInput) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	c.items = items
	return nil
}

package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrAllocateOrderCommandIsNotConstructed = errors.New(
	"AllocateOrderCommand must be created via NewAllocateOrderCommand constructor",
)

// AllocateOrderCommand represents a request to reserve inventory for every
// line of an approved order.
type AllocateOrderCommand struct {
	orderID kernel.UUID
	actor   string

	guard guard.ConstructorGuard
}

// NewAllocateOrderCommand creates a command to allocate an order.
func NewAllocateOrderCommand(orderID kernel.UUID, actor string) (AllocateOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AllocateOrderCommand{}, err
	}

	return AllocateOrderCommand{
		orderID: orderID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AllocateOrderCommand) Validate() error {
	return c.guard.Validate(ErrAllocateOrderCommandIsNotConstructed)
}

// OrderID returns the order to allocate.
func (c AllocateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// Actor returns who triggered the allocation.
func (c AllocateOrderCommand) Actor() string { return c.actor }

package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrApproveOrderCommandIsNotConstructed = errors.New(
	"ApproveOrderCommand must be created via NewApproveOrderCommand constructor",
)

// ApproveOrderCommand represents a request to accept an order for
// fulfillment.
type ApproveOrderCommand struct {
	orderID kernel.UUID
	actor   string

	guard guard.ConstructorGuard
}

// NewApproveOrderCommand creates a command to approve an order.
func NewApproveOrderCommand(orderID kernel.UUID, actor string) (ApproveOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ApproveOrderCommand{}, err
	}

	return ApproveOrderCommand{
		orderID: orderID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveOrderCommand) Validate() error {
	return c.guard.Validate(ErrApproveOrderCommandIsNotConstructed)
}

// OrderID returns the order to approve.
func (c ApproveOrderCommand) OrderID() kernel.UUID { return c.orderID }

// Actor returns who approved the order.
func (c ApproveOrderCommand) Actor() string { return c.actor }

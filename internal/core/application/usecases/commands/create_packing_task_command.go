package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCreatePackingTaskCommandIsNotConstructed = errors.New(
	"CreatePackingTaskCommand must be created via NewCreatePackingTaskCommand constructor",
)

// CreatePackingTaskCommand represents a request to open the packing stage
// for an order whose picking completed.
type CreatePackingTaskCommand struct {
	taskID  kernel.UUID
	orderID kernel.UUID
	actor   string

	guard guard.ConstructorGuard
}

// NewCreatePackingTaskCommand creates a command to create a packing task.
func NewCreatePackingTaskCommand(taskID, orderID kernel.UUID, actor string) (CreatePackingTaskCommand, error) {
	if err := errors.Join(taskID.Validate(), orderID.Validate()); err != nil {
		return CreatePackingTaskCommand{}, err
	}

	return CreatePackingTaskCommand{
		taskID:  taskID,
		orderID: orderID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePackingTaskCommand) Validate() error {
	return c.guard.Validate(ErrCreatePackingTaskCommandIsNotConstructed)
}

// TaskID returns the caller-supplied identifier for the new task.
func (c CreatePackingTaskCommand) TaskID() kernel.UUID { return c.taskID }

// OrderID returns the order to pack.
func (c CreatePackingTaskCommand) OrderID() kernel.UUID { return c.orderID }

// Actor returns who opened the packing stage.
func (c CreatePackingTaskCommand) Actor() string { return c.actor }

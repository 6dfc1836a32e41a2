package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGeneratePickingTaskCommandIsNotConstructed = errors.New(
	"GeneratePickingTaskCommand must be created via NewGeneratePickingTaskCommand constructor",
)

// GeneratePickingTaskCommand represents a request to generate the picking
// task for an allocated order.
type GeneratePickingTaskCommand struct {
	taskID  kernel.UUID
	orderID kernel.UUID
	actor   string

	guard guard.ConstructorGuard
}

// NewGeneratePickingTaskCommand creates a command to generate a picking task.
func NewGeneratePickingTaskCommand(taskID, orderID kernel.UUID, actor string) (GeneratePickingTaskCommand, error) {
	if err := errors.Join(taskID.Validate(), orderID.Validate()); err != nil {
		return GeneratePickingTaskCommand{}, err
	}

	return GeneratePickingTaskCommand{
		taskID:  taskID,
		orderID: orderID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c GeneratePickingTaskCommand) Validate() error {
	return c.guard.Validate(ErrGeneratePickingTaskCommandIsNotConstructed)
}

// TaskID returns the caller-supplied identifier for the new task.
func (c GeneratePickingTaskCommand) TaskID() kernel.UUID { return c.taskID }

// OrderID returns the order to pick.
func (c GeneratePickingTaskCommand) OrderID() kernel.UUID { return c.orderID }

// Actor returns who triggered the generation.
func (c GeneratePickingTaskCommand) Actor() string { return c.actor }

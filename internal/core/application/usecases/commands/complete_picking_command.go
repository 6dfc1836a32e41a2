package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCompletePickingCommandIsNotConstructed = errors.New(
	"CompletePickingCommand must be created via NewCompletePickingCommand constructor",
)

// CompletePickingCommand represents a request to finish a picking task.
type CompletePickingCommand struct {
	taskID kernel.UUID
	actor  string

	guard guard.ConstructorGuard
}

// NewCompletePickingCommand creates a command to complete a picking task.
func NewCompletePickingCommand(taskID kernel.UUID, actor string) (CompletePickingCommand, error) {
	if err := taskID.Validate(); err != nil {
		return CompletePickingCommand{}, err
	}

	return CompletePickingCommand{
		taskID: taskID,
		actor:  actor,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompletePickingCommand) Validate() error {
	return c.guard.Validate(ErrCompletePickingCommandIsNotConstructed)
}

// TaskID returns the picking task to complete.
func (c CompletePickingCommand) TaskID() kernel.UUID { return c.taskID }

// Actor returns who completed the task.
func (c CompletePickingCommand) Actor() string { return c.actor }

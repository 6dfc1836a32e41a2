package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCompletePackingCommandIsNotConstructed = errors.New(
	"CompletePackingCommand must be created via NewCompletePackingCommand constructor",
)

// CompletePackingCommand represents a request to finish a packing task.
type CompletePackingCommand struct {
	taskID kernel.UUID
	actor  string

	guard guard.ConstructorGuard
}

// NewCompletePackingCommand creates a command to complete a packing task.
func NewCompletePackingCommand(taskID kernel.UUID, actor string) (CompletePackingCommand, error) {
	if err := taskID.Validate(); err != nil {
		return CompletePackingCommand{}, err
	}

	return CompletePackingCommand{
		taskID: taskID,
		actor:  actor,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompletePackingCommand) Validate() error {
	return c.guard.Validate(ErrCompletePackingCommandIsNotConstructed)
}

// TaskID returns the packing task to complete.
func (c CompletePackingCommand) TaskID() kernel.UUID { return c.taskID }

// Actor returns who completed the task.
func (c CompletePackingCommand) Actor() string { return c.actor }

package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrAssignPickerCommandIsNotConstructed = errors.New(
	"AssignPickerCommand must be created via NewAssignPickerCommand constructor",
)

// AssignPickerCommand represents a request to hand a pending picking task
// to a picker.
type AssignPickerCommand struct {
	taskID kernel.UUID
	picker string
	actor  string

	guard guard.ConstructorGuard
}

// NewAssignPickerCommand creates a command to assign a picker to a task.
func NewAssignPickerCommand(taskID kernel.UUID, picker string, actor string) (AssignPickerCommand, error) {
	if err := taskID.Validate(); err != nil {
		return AssignPickerCommand{}, err
	}
	if picker == "" {
		return AssignPickerCommand{}, errs.NewValueIsRequiredError("picker")
	}

	return AssignPickerCommand{
		taskID: taskID,
		picker: picker,
		actor:  actor,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignPickerCommand) Validate() error {
	return c.guard.Validate(ErrAssignPickerCommandIsNotConstructed)
}

// TaskID returns the picking task to assign.
func (c AssignPickerCommand) TaskID() kernel.UUID { return c.taskID }

// Picker returns the picker taking the task.
func (c AssignPickerCommand) Picker() string { return c.picker }

// Actor returns who made the assignment.
func (c AssignPickerCommand) Actor() string { return c.actor }

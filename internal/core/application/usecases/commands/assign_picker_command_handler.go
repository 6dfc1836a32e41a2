package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/audit"
)

// AssignPickerCommandHandler assigns a picker to a pending picking task,
// which starts it.
type AssignPickerCommandHandler struct {
	uowFactory PickingUoWFactory
}

// NewAssignPickerCommandHandler creates a handler for picker assignment.
func NewAssignPickerCommandHandler(uowFactory PickingUoWFactory) AssignPickerCommandHandler {
	return AssignPickerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command.
func (h *AssignPickerCommandHandler) Handle(ctx context.Context, cmd AssignPickerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	task, err := uow.PickingRepository().Get(ctx, cmd.TaskID())
	if err != nil {
		return err
	}

	previous := task.Status()
	if err = task.AssignPicker(cmd.Picker()); err != nil {
		return err
	}

	if err = uow.PickingRepository().Update(ctx, task); err != nil {
		return err
	}

	if err = writeAudit(ctx, uow.AuditRepository(), audit.EntityPickingTask, task.ID(),
		audit.ActionStatusChanged, cmd.Actor(),
		statusValues(previous.String()),
		map[string]any{"status": task.Status().String(), "picker": task.Picker()},
		""); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

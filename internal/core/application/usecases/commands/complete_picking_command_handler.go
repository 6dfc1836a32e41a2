package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/audit"
)

// CompletePickingCommandHandler finishes a picking task once every line has
// a recorded pick. The order stays in Picking; it moves on when the packing
// task is created.
type CompletePickingCommandHandler struct {
	uowFactory PickingUoWFactory
}

// NewCompletePickingCommandHandler creates a handler for picking completion.
func NewCompletePickingCommandHandler(uowFactory PickingUoWFactory) CompletePickingCommandHandler {
	return CompletePickingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
func (h *CompletePickingCommandHandler) Handle(ctx context.Context, cmd CompletePickingCommand) error {
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
	if err = task.Complete(); err != nil {
		return err
	}

	if err = uow.PickingRepository().Update(ctx, task); err != nil {
		return err
	}

	if err = writeAudit(ctx, uow.AuditRepository(), audit.EntityPickingTask, task.ID(),
		audit.ActionStatusChanged, cmd.Actor(),
		statusValues(previous.String()),
		statusValues(task.Status().String()), ""); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

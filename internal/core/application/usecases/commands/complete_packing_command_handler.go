package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/pkg/errs"
)

// CompletePackingCommandHandler finishes a packing task. Beyond the task's
// own rules (at least one package, all finalized), every picked quantity of
// the order must be packed; goods picked off the shelf cannot be left on
// the packing bench.
type CompletePackingCommandHandler struct {
	uowFactory PackingUoWFactory
}

// NewCompletePackingCommandHandler creates a handler for packing completion.
func NewCompletePackingCommandHandler(uowFactory PackingUoWFactory) CompletePackingCommandHandler {
	return CompletePackingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
func (h *CompletePackingCommandHandler) Handle(ctx context.Context, cmd CompletePackingCommand) error {
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

	task, err := uow.PackingRepository().Get(ctx, cmd.TaskID())
	if err != nil {
		return err
	}
	aggregate, err := uow.OrderRepository().Get(ctx, task.OrderID())
	if err != nil {
		return err
	}

	if !aggregate.AllItemsFullyPacked() {
		return errs.NewValueIsInvalidErrorWithCause("packing task",
			errors.New("cannot complete: picked quantities remain unpacked"))
	}

	previous := task.Status()
	if err = task.Complete(); err != nil {
		return err
	}

	if err = uow.PackingRepository().Update(ctx, task); err != nil {
		return err
	}

	if err = writeAudit(ctx, uow.AuditRepository(), audit.EntityPackingTask, task.ID(),
		audit.ActionStatusChanged, cmd.Actor(),
		statusValues(previous.String()),
		statusValues(task.Status().String()), ""); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

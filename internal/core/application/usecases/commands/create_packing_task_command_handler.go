package commands

import (
	"context"
	"fmt"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/packing"
	"fulfillment/internal/core/domain/model/picking"
	"fulfillment/internal/pkg/errs"
)

// CreatePackingTaskCommandHandler opens the packing stage. The order's
// picking task must be completed; the order moves from Picking to Packing.
type CreatePackingTaskCommandHandler struct {
	uowFactory PackingUoWFactory
}

// NewCreatePackingTaskCommandHandler creates a handler for packing task creation.
func NewCreatePackingTaskCommandHandler(uowFactory PackingUoWFactory) CreatePackingTaskCommandHandler {
	return CreatePackingTaskCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the creation command.
func (h *CreatePackingTaskCommandHandler) Handle(ctx context.Context, cmd CreatePackingTaskCommand) error {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	pickingTask, err := uow.PickingRepository().GetForOrder(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	if pickingTask.Status() != picking.StatusCompleted {
		return errs.NewValueIsInvalidErrorWithCause("picking task",
			fmt.Errorf("picking task %s is %s, packing needs it completed",
				pickingTask.Number(), pickingTask.Status()))
	}

	previous := aggregate.Status()
	if err = aggregate.StartPacking(); err != nil {
		return err
	}

	task, err := packing.NewTask(cmd.TaskID(), aggregate.ID(), aggregate.WarehouseID())
	if err != nil {
		return err
	}

	if err = uow.PackingRepository().Add(ctx, task); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = writeAudit(ctx, uow.AuditRepository(), audit.EntityPackingTask, task.ID(),
		audit.ActionCreated, cmd.Actor(), nil,
		statusValues(task.Status().String()), task.Number()); err != nil {
		return err
	}
	if err = writeAudit(ctx, uow.AuditRepository(), audit.EntityOrder, aggregate.ID(),
		audit.ActionStatusChanged, cmd.Actor(),
		statusValues(previous.String()),
		statusValues(aggregate.Status().String()), ""); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

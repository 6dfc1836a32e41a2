package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/picking"
)

// GeneratePickingTaskCommandHandler turns an allocated order into a picking
// task. Every active reservation becomes one task line telling the picker
// what to fetch and from where, and the order moves to Picking.
type GeneratePickingTaskCommandHandler struct {
	uowFactory PickingUoWFactory
}

// NewGeneratePickingTaskCommandHandler creates a handler for picking task generation.
func NewGeneratePickingTaskCommandHandler(uowFactory PickingUoWFactory) GeneratePickingTaskCommandHandler {
	return GeneratePickingTaskCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the generation command.
func (h *GeneratePickingTaskCommandHandler) Handle(ctx context.Context, cmd GeneratePickingTaskCommand) error {
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

	previous := aggregate.Status()
	if err = aggregate.StartPicking(); err != nil {
		return err
	}

	active, err := uow.AllocationRepository().GetActiveForOrder(ctx, aggregate.ID())
	if err != nil {
		return err
	}

	lines := make([]*picking.Item, 0, len(active))
	for _, record := range active {
		line, lineErr := picking.NewItem(kernel.NewUUID(), record.OrderItemID(), record.ID(),
			record.SKU(), record.LocationCode(), record.Quantity())
		if lineErr != nil {
			return lineErr
		}
		lines = append(lines, line)
	}

	task, err := picking.NewTask(cmd.TaskID(), aggregate.ID(), aggregate.WarehouseID(), lines)
	if err != nil {
		return err
	}

	if err = uow.PickingRepository().Add(ctx, task); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = writeAudit(ctx, uow.AuditRepository(), audit.EntityPickingTask, task.ID(),
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

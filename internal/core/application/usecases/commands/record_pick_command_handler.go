package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/audit"
)

// RecordPickCommandHandler records a confirmed pick on a task line and
// mirrors it onto the order item's picked counter, keeping the two in step
// inside one transaction.
type RecordPickCommandHandler struct {
	uowFactory PickingUoWFactory
}

// NewRecordPickCommandHandler creates a handler for pick recording.
func NewRecordPickCommandHandler(uowFactory PickingUoWFactory) RecordPickCommandHandler {
	return RecordPickCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pick recording command.
func (h *RecordPickCommandHandler) Handle(ctx context.Context, cmd RecordPickCommand) error {
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
	aggregate, err := uow.OrderRepository().Get(ctx, task.OrderID())
	if err != nil {
		return err
	}

	line, err := task.Item(cmd.TaskItemID())
	if err != nil {
		return err
	}
	if err = task.RecordPick(cmd.TaskItemID(), cmd.Quantity()); err != nil {
		return err
	}

	item, err := aggregate.Item(line.OrderItemID())
	if err != nil {
		return err
	}
	if err = item.AddPicked(cmd.Quantity()); err != nil {
		return err
	}

	if err = uow.PickingRepository().Update(ctx, task); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = writeAudit(ctx, uow.AuditRepository(), audit.EntityPickingTask, task.ID(),
		audit.ActionPickRecorded, cmd.Actor(), nil, map[string]any{
			"sku":      line.SKU(),
			"quantity": cmd.Quantity().String(),
			"picked":   line.QuantityPicked().String(),
		}, ""); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// CancelOrderCommandHandler cancels an order from any non-terminal status
// and compensates the work already done for it: active reservations are
// released through the inventory adapter and marked Released, and open
// picking and packing tasks are cancelled, all in one transaction. An
// adapter failure during release does not abort the cancellation; it is
// recorded as an audit entry instead.
//
// Cancelling an already cancelled order succeeds without doing anything, so
// retries of the cancel request are harmless.
type CancelOrderCommandHandler struct {
	uowFactory CancellationUoWFactory
	inventory  ports.InventoryAdapter
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory CancellationUoWFactory,
	inventory ports.InventoryAdapter,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		inventory:  inventory,
	}
}

// Handle processes the cancellation command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	// idempotent: a second cancel is a no-op
	if aggregate.Status() == order.Cancelled {
		return uow.Commit(ctx)
	}

	previous := aggregate.Status()
	if err = aggregate.Cancel(cmd.Reason()); err != nil {
		return err
	}

	if err = h.releaseAllocations(ctx, uow, cmd, aggregate); err != nil {
		return err
	}
	if err = h.cancelOpenTasks(ctx, uow, cmd, aggregate); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = writeAudit(ctx, uow.AuditRepository(), audit.EntityOrder, aggregate.ID(),
		audit.ActionCancelled, cmd.Actor(),
		statusValues(previous.String()),
		statusValues(aggregate.Status().String()), cmd.Reason()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// releaseAllocations returns every active reservation to stock. Adapter
// release is best effort: a failure is recorded in the audit trail and the
// allocation is still marked Released locally, because cancellation must
// not be blocked by the inventory backend. Release is idempotent on the
// adapter side, so a recorded failure can be retried with the same
// reservation id at any time.
func (h *CancelOrderCommandHandler) releaseAllocations(
	ctx context.Context,
	uow CancellationUoW,
	cmd CancelOrderCommand,
	aggregate *order.Order,
) error {
	active, err := uow.AllocationRepository().GetActiveForOrder(ctx, aggregate.ID())
	if err != nil {
		return err
	}

	for _, record := range active {
		if releaseErr := h.inventory.Release(ctx, record.ReservationID()); releaseErr != nil {
			if err = writeAudit(ctx, uow.AuditRepository(), audit.EntityAllocation, record.ID(),
				audit.ActionReleaseFailed, cmd.Actor(), nil, nil,
				record.ReservationID()+": "+releaseErr.Error()); err != nil {
				return err
			}
		}
		if err = record.Release(); err != nil {
			return err
		}

		item, itemErr := aggregate.Item(record.OrderItemID())
		if itemErr != nil {
			return itemErr
		}
		if err = item.ReleaseAllocated(record.Quantity()); err != nil {
			return err
		}

		if err = uow.AllocationRepository().Update(ctx, record); err != nil {
			return err
		}
		if err = writeAudit(ctx, uow.AuditRepository(), audit.EntityAllocation, record.ID(),
			audit.ActionReleased, cmd.Actor(), nil, nil, record.ReservationID()); err != nil {
			return err
		}
	}
	return nil
}

// cancelOpenTasks abandons the order's picking and packing tasks if they
// are still open. Completed tasks stay completed; they are history.
func (h *CancelOrderCommandHandler) cancelOpenTasks(
	ctx context.Context,
	uow CancellationUoW,
	cmd CancelOrderCommand,
	aggregate *order.Order,
) error {
	pickingTask, err := uow.PickingRepository().GetForOrder(ctx, aggregate.ID())
	if err == nil && !pickingTask.Status().IsTerminal() {
		if err = pickingTask.Cancel(); err != nil {
			return err
		}
		if err = uow.PickingRepository().Update(ctx, pickingTask); err != nil {
			return err
		}
		if err = writeAudit(ctx, uow.AuditRepository(), audit.EntityPickingTask, pickingTask.ID(),
			audit.ActionCancelled, cmd.Actor(), nil, nil, cmd.Reason()); err != nil {
			return err
		}
	} else if err != nil && !isNotFound(err) {
		return err
	}

	packingTask, err := uow.PackingRepository().GetForOrder(ctx, aggregate.ID())
	if err == nil && !packingTask.Status().IsTerminal() {
		if err = packingTask.Cancel(); err != nil {
			return err
		}
		if err = uow.PackingRepository().Update(ctx, packingTask); err != nil {
			return err
		}
		if err = writeAudit(ctx, uow.AuditRepository(), audit.EntityPackingTask, packingTask.ID(),
			audit.ActionCancelled, cmd.Actor(), nil, nil, cmd.Reason()); err != nil {
			return err
		}
	} else if err != nil && !isNotFound(err) {
		return err
	}

	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, errs.ErrObjectNotFound)
}

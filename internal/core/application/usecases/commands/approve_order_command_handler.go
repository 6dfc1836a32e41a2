package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/audit"
)

// ApproveOrderCommandHandler moves an order from Created to Approved.
type ApproveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewApproveOrderCommandHandler creates a handler for order approval.
func NewApproveOrderCommandHandler(uowFactory OrderUoWFactory) ApproveOrderCommandHandler {
	return ApproveOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the approval command. The repository Get locks the order
// row, so concurrent commands on the same order serialize here.
func (h *ApproveOrderCommandHandler) Handle(ctx context.Context, cmd ApproveOrderCommand) error {
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
	if err = aggregate.Approve(); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
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

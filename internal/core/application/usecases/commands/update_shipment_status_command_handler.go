package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/shipment"
)

// UpdateShipmentStatusCommandHandler advances a shipment on a carrier
// event. Delivery confirmation also closes the order: the order moves to
// Delivered and every active reservation is consumed, so the delivered
// order ends with zero active allocations. An Exception leaves the order in
// Shipped for an operator to decide what happens next.
type UpdateShipmentStatusCommandHandler struct {
	uowFactory ShippingUoWFactory
}

// NewUpdateShipmentStatusCommandHandler creates a handler for shipment
// status updates.
func NewUpdateShipmentStatusCommandHandler(uowFactory ShippingUoWFactory) UpdateShipmentStatusCommandHandler {
	return UpdateShipmentStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update command.
func (h *UpdateShipmentStatusCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentStatusCommand) error {
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

	aggregate, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	previous := aggregate.Status()
	if err = aggregate.UpdateStatus(cmd.Status()); err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = writeAudit(ctx, uow.AuditRepository(), audit.EntityShipment, aggregate.ID(),
		audit.ActionStatusChanged, cmd.Actor(),
		statusValues(previous.String()),
		statusValues(aggregate.Status().String()), cmd.Notes()); err != nil {
		return err
	}

	if cmd.Status() == shipment.StatusDelivered {
		if err = h.closeOrder(ctx, uow, cmd, aggregate); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

// closeOrder marks the order delivered and consumes its reservations.
func (h *UpdateShipmentStatusCommandHandler) closeOrder(
	ctx context.Context,
	uow ShippingUoW,
	cmd UpdateShipmentStatusCommand,
	aggregateShipment *shipment.Shipment,
) error {
	aggregate, err := uow.OrderRepository().Get(ctx, aggregateShipment.OrderID())
	if err != nil {
		return err
	}

	previous := aggregate.Status()
	if err = aggregate.MarkDelivered(); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	active, err := uow.AllocationRepository().GetActiveForOrder(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	for _, record := range active {
		if err = record.Consume(); err != nil {
			return err
		}
		if err = uow.AllocationRepository().Update(ctx, record); err != nil {
			return err
		}
		if err = writeAudit(ctx, uow.AuditRepository(), audit.EntityAllocation, record.ID(),
			audit.ActionConsumed, cmd.Actor(), nil, nil, record.ReservationID()); err != nil {
			return err
		}
	}

	return writeAudit(ctx, uow.AuditRepository(), audit.EntityOrder, aggregate.ID(),
		audit.ActionStatusChanged, cmd.Actor(),
		statusValues(previous.String()),
		statusValues(aggregate.Status().String()), "")
}

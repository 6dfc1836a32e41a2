package commands

import (
	"context"
	"fmt"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/packing"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"
)

// CreateShipmentCommandHandler creates a shipment from an order's completed
// packing task. Every finalized package is snapshotted onto the shipment
// with its gross weight, and the order moves from Packing to Shipped.
type CreateShipmentCommandHandler struct {
	uowFactory ShippingUoWFactory
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation.
func NewCreateShipmentCommandHandler(uowFactory ShippingUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment creation command.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
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

	packingTask, err := uow.PackingRepository().GetForOrder(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	if packingTask.Status() != packing.StatusCompleted {
		return errs.NewValueIsInvalidErrorWithCause("packing task",
			fmt.Errorf("packing task %s is %s, shipping needs it completed",
				packingTask.Number(), packingTask.Status()))
	}

	previous := aggregate.Status()
	if err = aggregate.MarkShipped(); err != nil {
		return err
	}

	items := make([]*shipment.Item, 0, len(packingTask.Packages()))
	for _, pkg := range packingTask.Packages() {
		dims := pkg.Dimensions()
		item, itemErr := shipment.NewShipmentItem(pkg.ID(), pkg.Number(), pkg.GrossWeight(),
			dims.Length(), dims.Width(), dims.Height())
		if itemErr != nil {
			return itemErr
		}
		items = append(items, item)
	}

	aggregateShipment, err := shipment.NewShipment(cmd.ShipmentID(), aggregate.ID(),
		cmd.Carrier(), cmd.Destination(), items)
	if err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Add(ctx, aggregateShipment); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = writeAudit(ctx, uow.AuditRepository(), audit.EntityShipment, aggregateShipment.ID(),
		audit.ActionCreated, cmd.Actor(), nil, map[string]any{
			"carrier":     aggregateShipment.Carrier(),
			"packages":    len(items),
			"totalWeight": aggregateShipment.TotalWeight().String(),
		}, aggregateShipment.Number()); err != nil {
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

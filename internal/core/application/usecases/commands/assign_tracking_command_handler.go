package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/audit"
)

// AssignTrackingCommandHandler records a carrier tracking number on a
// shipment, moving it to LabelGenerated.
type AssignTrackingCommandHandler struct {
	uowFactory ShippingUoWFactory
}

// NewAssignTrackingCommandHandler creates a handler for tracking assignment.
func NewAssignTrackingCommandHandler(uowFactory ShippingUoWFactory) AssignTrackingCommandHandler {
	return AssignTrackingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the tracking assignment command.
func (h *AssignTrackingCommandHandler) Handle(ctx context.Context, cmd AssignTrackingCommand) error {
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
	if err = aggregate.AssignTracking(cmd.TrackingNumber()); err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = writeAudit(ctx, uow.AuditRepository(), audit.EntityShipment, aggregate.ID(),
		audit.ActionStatusChanged, cmd.Actor(),
		statusValues(previous.String()), map[string]any{
			"status":         aggregate.Status().String(),
			"trackingNumber": aggregate.TrackingNumber(),
		}, ""); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

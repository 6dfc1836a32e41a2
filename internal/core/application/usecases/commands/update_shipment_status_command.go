package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdateShipmentStatusCommandIsNotConstructed = errors.New(
	"UpdateShipmentStatusCommand must be created via NewUpdateShipmentStatusCommand constructor",
)

// UpdateShipmentStatusCommand represents a carrier event moving a shipment
// along its workflow: picked up, delivered, or failed.
type UpdateShipmentStatusCommand struct {
	shipmentID kernel.UUID
	status     shipment.Status
	notes      string
	actor      string

	guard guard.ConstructorGuard
}

// NewUpdateShipmentStatusCommand creates a command to advance a shipment.
// Notes are free text from the carrier event and may be empty.
func NewUpdateShipmentStatusCommand(
	shipmentID kernel.UUID,
	status shipment.Status,
	notes string,
	actor string,
) (UpdateShipmentStatusCommand, error) {
	if err := errors.Join(shipmentID.Validate(), status.Validate()); err != nil {
		return UpdateShipmentStatusCommand{}, err
	}

	return UpdateShipmentStatusCommand{
		shipmentID: shipmentID,
		status:     status,
		notes:      notes,
		actor:      actor,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentStatusCommandIsNotConstructed)
}

// ShipmentID returns the shipment to advance.
func (c UpdateShipmentStatusCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// Status returns the requested shipment status.
func (c UpdateShipmentStatusCommand) Status() shipment.Status { return c.status }

// Notes returns the carrier-supplied note for the event, if any.
func (c UpdateShipmentStatusCommand) Notes() string { return c.notes }

// Actor returns who reported the carrier event.
func (c UpdateShipmentStatusCommand) Actor() string { return c.actor }

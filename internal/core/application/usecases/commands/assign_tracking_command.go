package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrAssignTrackingCommandIsNotConstructed = errors.New(
	"AssignTrackingCommand must be created via NewAssignTrackingCommand constructor",
)

// AssignTrackingCommand represents the carrier label coming back with a
// tracking number.
type AssignTrackingCommand struct {
	shipmentID     kernel.UUID
	trackingNumber string
	actor          string

	guard guard.ConstructorGuard
}

// NewAssignTrackingCommand creates a command to assign a tracking number.
func NewAssignTrackingCommand(shipmentID kernel.UUID, trackingNumber, actor string) (AssignTrackingCommand, error) {
	if err := shipmentID.Validate(); err != nil {
		return AssignTrackingCommand{}, err
	}
	if trackingNumber == "" {
		return AssignTrackingCommand{}, errs.NewValueIsRequiredError("tracking number")
	}

	return AssignTrackingCommand{
		shipmentID:     shipmentID,
		trackingNumber: trackingNumber,
		actor:          actor,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignTrackingCommand) Validate() error {
	return c.guard.Validate(ErrAssignTrackingCommandIsNotConstructed)
}

// ShipmentID returns the shipment receiving the label.
func (c AssignTrackingCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// TrackingNumber returns the carrier tracking number.
func (c AssignTrackingCommand) TrackingNumber() string { return c.trackingNumber }

// Actor returns who recorded the label.
func (c AssignTrackingCommand) Actor() string { return c.actor }

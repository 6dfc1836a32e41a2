package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a request to hand a packed order over to
// a carrier.
type CreateShipmentCommand struct {
	shipmentID  kernel.UUID
	orderID     kernel.UUID
	carrier     string
	destination shipment.Address
	actor       string

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to create a shipment.
func NewCreateShipmentCommand(
	shipmentID kernel.UUID,
	orderID kernel.UUID,
	carrier string,
	destination shipment.Address,
	actor string,
) (CreateShipmentCommand, error) {
	if err := errors.Join(
		shipmentID.Validate(),
		orderID.Validate(),
		destination.Validate(),
	); err != nil {
		return CreateShipmentCommand{}, err
	}
	if carrier == "" {
		return CreateShipmentCommand{}, errs.NewValueIsRequiredError("carrier")
	}

	return CreateShipmentCommand{
		shipmentID:  shipmentID,
		orderID:     orderID,
		carrier:     carrier,
		destination: destination,
		actor:       actor,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the caller-supplied identifier for the new shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// OrderID returns the order to ship.
func (c CreateShipmentCommand) OrderID() kernel.UUID { return c.orderID }

// Carrier returns the carrier name.
func (c CreateShipmentCommand) Carrier() string { return c.carrier }

// Destination returns the shipping address.
func (c CreateShipmentCommand) Destination() shipment.Address { return c.destination }

// Actor returns who created the shipment.
func (c CreateShipmentCommand) Actor() string { return c.actor }

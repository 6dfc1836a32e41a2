package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrRecordPickCommandIsNotConstructed = errors.New(
	"RecordPickCommand must be created via NewRecordPickCommand constructor",
)

// RecordPickCommand represents a picker confirming a quantity fetched for
// one task line. A zero quantity confirms a short pick.
type RecordPickCommand struct {
	taskID     kernel.UUID
	taskItemID kernel.UUID
	quantity   decimal.Decimal
	actor      string

	guard guard.ConstructorGuard
}

// NewRecordPickCommand creates a command to record a pick. Negative
// quantities are rejected here; the cap against the reserved quantity is
// enforced by the task.
func NewRecordPickCommand(
	taskID kernel.UUID,
	taskItemID kernel.UUID,
	quantity decimal.Decimal,
	actor string,
) (RecordPickCommand, error) {
	if err := errors.Join(
		taskID.Validate(),
		taskItemID.Validate(),
		kernel.ValidateNonNegativeDecimal("picked quantity", quantity),
	); err != nil {
		return RecordPickCommand{}, err
	}

	return RecordPickCommand{
		taskID:     taskID,
		taskItemID: taskItemID,
		quantity:   quantity,
		actor:      actor,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPickCommand) Validate() error {
	return c.guard.Validate(ErrRecordPickCommandIsNotConstructed)
}

// TaskID returns the picking task being worked.
func (c RecordPickCommand) TaskID() kernel.UUID { return c.taskID }

// TaskItemID returns the task line being picked.
func (c RecordPickCommand) TaskItemID() kernel.UUID { return c.taskItemID }

// Quantity returns the picked quantity.
func (c RecordPickCommand) Quantity() decimal.Decimal { return c.quantity }

// Actor returns who recorded the pick.
func (c RecordPickCommand) Actor() string { return c.actor }

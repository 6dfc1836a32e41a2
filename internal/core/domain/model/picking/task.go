package picking

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrTaskIsNotConstructed is returned when a Task instance was not created
// through the NewTask or RestoreTask factory functions.
var ErrTaskIsNotConstructed = errors.New("picking Task must be created via NewTask constructor")

// Task is the picking aggregate root. One task covers one order; its lines
// mirror the order's active reservations at generation time.
type Task struct {
	id          kernel.UUID
	number      string
	orderID     kernel.UUID
	warehouseID kernel.UUID

	status Status
	picker string

	items []*Item

	createdAt   time.Time
	updatedAt   time.Time
	completedAt *time.Time

	guard guard.ConstructorGuard
}

// NewTask creates a pending picking task with number PT-<timestamp>-<suffix>.
// At least one line is required: a task with nothing to pick is meaningless.
func NewTask(id kernel.UUID, orderID kernel.UUID, warehouseID kernel.UUID, items []*Item) (*Task, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), warehouseID.Validate()); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("picking task items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	return &Task{
		id:          id,
		number:      kernel.BusinessNumber("PT", now, id),
		orderID:     orderID,
		warehouseID: warehouseID,
		status:      StatusPending,
		items:       items,
		createdAt:   now,
		updatedAt:   now,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreTask reconstructs a picking task from persistence.
func RestoreTask(
	id kernel.UUID,
	number string,
	orderID kernel.UUID,
	warehouseID kernel.UUID,
	status Status,
	picker string,
	items []*Item,
	createdAt time.Time,
	updatedAt time.Time,
	completedAt *time.Time,
) (*Task, error) {
	task, err := NewTask(id, orderID, warehouseID, items)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if number == "" {
		return nil, errs.NewValueIsRequiredError("task number")
	}

	task.number = number
	task.status = status
	task.picker = picker
	task.createdAt = createdAt
	task.updatedAt = updatedAt
	task.completedAt = completedAt
	return task, nil
}

// Validate ensures the Task was built through a factory function.
func (t *Task) Validate() error {
	if t == nil {
		return ErrTaskIsNotConstructed
	}
	return t.guard.Validate(ErrTaskIsNotConstructed)
}

// ID returns the task's unique identifier.
func (t *Task) ID() kernel.UUID { return t.id }

// Number returns the human-readable task number.
func (t *Task) Number() string { return t.number }

// OrderID returns the order this task picks for.
func (t *Task) OrderID() kernel.UUID { return t.orderID }

// WarehouseID returns the warehouse the task runs in.
func (t *Task) WarehouseID() kernel.UUID { return t.warehouseID }

// Status returns the task's lifecycle state.
func (t *Task) Status() Status { return t.status }

// Picker returns the assigned picker's name, empty while pending.
func (t *Task) Picker() string { return t.picker }

// Items returns the task lines.
func (t *Task) Items() []*Item { return t.items }

// CreatedAt returns the creation timestamp (UTC).
func (t *Task) CreatedAt() time.Time { return t.createdAt }

// UpdatedAt returns the last mutation timestamp (UTC).
func (t *Task) UpdatedAt() time.Time { return t.updatedAt }

// CompletedAt returns the completion timestamp, nil while open.
func (t *Task) CompletedAt() *time.Time { return t.completedAt }

// Item returns the task line with the given ID.
func (t *Task) Item(itemID kernel.UUID) (*Item, error) {
	for _, item := range t.items {
		if item.ID().IsEqual(itemID) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("pickingTaskItemId", itemID.String())
}

// AssignPicker assigns a picker and starts the task.
func (t *Task) AssignPicker(picker string) error {
	if picker == "" {
		return errs.NewValueIsRequiredError("picker")
	}
	next, err := t.status.TransitionTo(StatusInProgress)
	if err != nil {
		return err
	}
	t.status = next
	t.picker = picker
	t.touch()
	return nil
}

// RecordPick accumulates a picked quantity onto a task line. The task must
// be in progress. A zero quantity confirms a short pick for the line.
func (t *Task) RecordPick(itemID kernel.UUID, qty decimal.Decimal) error {
	if t.status != StatusInProgress {
		return errs.NewValueIsInvalidErrorWithCause("picking task",
			fmt.Errorf("cannot record picks in status %s", t.status))
	}
	item, err := t.Item(itemID)
	if err != nil {
		return err
	}
	if err := item.recordPick(qty); err != nil {
		return err
	}
	t.touch()
	return nil
}

// AllItemsRecorded reports whether every line has a confirmed pick.
func (t *Task) AllItemsRecorded() bool {
	for _, item := range t.items {
		if !item.IsRecorded() {
			return false
		}
	}
	return true
}

// Complete finishes the task. Every line must have a recorded pick first,
// including confirmed zero picks for short lines.
func (t *Task) Complete() error {
	next, err := t.status.TransitionTo(StatusCompleted)
	if err != nil {
		return err
	}
	if !t.AllItemsRecorded() {
		return errs.NewValueIsInvalidErrorWithCause("picking task",
			errors.New("cannot complete: not all items have a recorded pick"))
	}
	t.status = next
	now := time.Now().UTC()
	t.completedAt = &now
	t.touch()
	return nil
}

// Cancel abandons an open task.
func (t *Task) Cancel() error {
	next, err := t.status.TransitionTo(StatusCancelled)
	if err != nil {
		return err
	}
	t.status = next
	t.touch()
	return nil
}

func (t *Task) touch() {
	t.updatedAt = time.Now().UTC()
}

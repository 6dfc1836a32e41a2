package packing

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrTaskIsNotConstructed is returned when a Task instance was not created
// through the NewTask or RestoreTask factory functions.
var ErrTaskIsNotConstructed = errors.New("packing Task must be created via NewTask constructor")

// Task is the packing aggregate root. One task covers one order and owns the
// packages opened for it. Unlike picking, a packing task starts without
// lines; packages are opened and filled as the packer works.
type Task struct {
	id          kernel.UUID
	number      string
	orderID     kernel.UUID
	warehouseID kernel.UUID

	status   Status
	packages []*Package

	createdAt   time.Time
	updatedAt   time.Time
	completedAt *time.Time

	guard guard.ConstructorGuard
}

// NewTask creates a pending packing task with number PAT-<timestamp>-<suffix>.
func NewTask(id kernel.UUID, orderID kernel.UUID, warehouseID kernel.UUID) (*Task, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), warehouseID.Validate()); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Task{
		id:          id,
		number:      kernel.BusinessNumber("PAT", now, id),
		orderID:     orderID,
		warehouseID: warehouseID,
		status:      StatusPending,
		createdAt:   now,
		updatedAt:   now,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreTask reconstructs a packing task from persistence.
func RestoreTask(
	id kernel.UUID,
	number string,
	orderID kernel.UUID,
	warehouseID kernel.UUID,
	status Status,
	packages []*Package,
	createdAt time.Time,
	updatedAt time.Time,
	completedAt *time.Time,
) (*Task, error) {
	task, err := NewTask(id, orderID, warehouseID)
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
	task.packages = packages
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

// OrderID returns the order this task packs.
func (t *Task) OrderID() kernel.UUID { return t.orderID }

// WarehouseID returns the warehouse the task runs in.
func (t *Task) WarehouseID() kernel.UUID { return t.warehouseID }

// Status returns the task's lifecycle state.
func (t *Task) Status() Status { return t.status }

// Packages returns the packages opened for this task.
func (t *Task) Packages() []*Package { return t.packages }

// CreatedAt returns the creation timestamp (UTC).
func (t *Task) CreatedAt() time.Time { return t.createdAt }

// UpdatedAt returns the last mutation timestamp (UTC).
func (t *Task) UpdatedAt() time.Time { return t.updatedAt }

// CompletedAt returns the completion timestamp, nil while open.
func (t *Task) CompletedAt() *time.Time { return t.completedAt }

// Package returns the package with the given ID.
func (t *Task) Package(packageID kernel.UUID) (*Package, error) {
	for _, pkg := range t.packages {
		if pkg.ID().IsEqual(packageID) {
			return pkg, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("packageId", packageID.String())
}

// OpenPackage adds a new empty package to the task. The first package moves
// the task to InProgress.
func (t *Task) OpenPackage(pkg *Package) error {
	if err := pkg.Validate(); err != nil {
		return err
	}
	if t.status == StatusPending {
		next, err := t.status.TransitionTo(StatusInProgress)
		if err != nil {
			return err
		}
		t.status = next
	}
	if t.status != StatusInProgress {
		return errs.NewInvalidTransitionError("PackingTask", t.status.String(), StatusInProgress.String())
	}
	t.packages = append(t.packages, pkg)
	t.touch()
	return nil
}

// QuantityPacked returns how much of an order line is packed across all
// packages of this task.
func (t *Task) QuantityPacked(orderItemID kernel.UUID) decimal.Decimal {
	total := decimal.Zero
	for _, pkg := range t.packages {
		total = total.Add(pkg.QuantityOf(orderItemID))
	}
	return total
}

// AllPackagesFinalized reports whether every package is sealed.
func (t *Task) AllPackagesFinalized() bool {
	for _, pkg := range t.packages {
		if pkg.Status() != PackageFinalized {
			return false
		}
	}
	return true
}

// Complete finishes the task. At least one package must exist and every
// package must be finalized. Whether every picked quantity is packed is
// checked by the command handler against the order, which owns the counters.
func (t *Task) Complete() error {
	next, err := t.status.TransitionTo(StatusCompleted)
	if err != nil {
		return err
	}
	if len(t.packages) == 0 {
		return errs.NewValueIsInvalidErrorWithCause("packing task",
			errors.New("cannot complete without packages"))
	}
	if !t.AllPackagesFinalized() {
		return errs.NewValueIsInvalidErrorWithCause("packing task",
			errors.New("cannot complete: not all packages are finalized"))
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

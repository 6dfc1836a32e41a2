package errs

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Sentinel errors for the fulfillment-specific error taxonomy.
var (
	ErrInvalidTransition     = errors.New("invalid status transition")
	ErrInsufficientInventory = errors.New("insufficient inventory")
	ErrPackageOverweight     = errors.New("package overweight")
	ErrAdapter               = errors.New("inventory adapter failure")
)

// InvalidTransitionError indicates a requested status change is not an edge
// of the entity's workflow table. The caller should re-fetch current state.
type InvalidTransitionError struct {
	EntityType string
	Current    string
	Requested  string
}

func NewInvalidTransitionError(entityType, current, requested string) *InvalidTransitionError {
	return &InvalidTransitionError{EntityType: entityType, Current: current, Requested: requested}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s for %s: cannot move from %s to %s",
		ErrInvalidTransition, e.EntityType, e.Current, e.Requested)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ItemShortfall describes one order item that could not be covered by
// available inventory.
type ItemShortfall struct {
	SKU       string
	Requested decimal.Decimal
	Available decimal.Decimal
}

// InsufficientInventoryError indicates an order could not be fully allocated.
// Allocation is all-or-nothing, so when this error is returned no reservation
// has been committed for any item of the order.
type InsufficientInventoryError struct {
	OrderID    string
	Shortfalls []ItemShortfall
}

func NewInsufficientInventoryError(orderID string, shortfalls []ItemShortfall) *InsufficientInventoryError {
	return &InsufficientInventoryError{OrderID: orderID, Shortfalls: shortfalls}
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("%s for order %s: %d item(s) short", ErrInsufficientInventory, e.OrderID, len(e.Shortfalls))
}

func (e *InsufficientInventoryError) Unwrap() error {
	return ErrInsufficientInventory
}

// PackageOverweightError indicates adding an item would push a package past
// its maximum weight. The package is left unchanged in its prior valid state.
type PackageOverweightError struct {
	PackageNumber string
	Projected     decimal.Decimal
	MaxWeight     decimal.Decimal
}

func NewPackageOverweightError(packageNumber string, projected, maxWeight decimal.Decimal) *PackageOverweightError {
	return &PackageOverweightError{PackageNumber: packageNumber, Projected: projected, MaxWeight: maxWeight}
}

func (e *PackageOverweightError) Error() string {
	return fmt.Sprintf("%s: package %s would weigh %s, max is %s",
		ErrPackageOverweight, e.PackageNumber, e.Projected, e.MaxWeight)
}

func (e *PackageOverweightError) Unwrap() error {
	return ErrPackageOverweight
}

// AdapterError indicates the external inventory system failed or timed out.
// The enclosing transaction is rolled back, so the caller may retry the whole
// operation; the adapter itself must keep reserve/release idempotent under
// retry with the same reference.
type AdapterError struct {
	Operation string
	Cause     error
}

func NewAdapterError(operation string, cause error) *AdapterError {
	return &AdapterError{Operation: operation, Cause: cause}
}

func (e *AdapterError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s during %s (cause: %s)", ErrAdapter, e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s during %s", ErrAdapter, e.Operation)
}

func (e *AdapterError) Unwrap() error {
	return ErrAdapter
}

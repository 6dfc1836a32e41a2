package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root of the fulfillment domain. It owns its Items
// and its Status, and is the only entity through which the order lifecycle
// may be advanced.
//
// Invariants:
//   - at least one item, each valid per NewItem
//   - status transitions follow the workflow table in status.go
//   - terminal orders (Delivered, Cancelled) are immutable
//   - item counters reconcile: allocated ≤ ordered, picked ≤ allocated,
//     packed ≤ picked, per item at all times
type Order struct {
	id          kernel.UUID
	number      string
	warehouseID kernel.UUID
	priority    Priority
	status      Status

	cancelReason string

	items []*Item

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates an order in Created status.
//
// The order number is derived from the creation time and the order ID, in
// the form ORD-20060102150405-XXXXXXXX, and is unique per order.
func NewOrder(id kernel.UUID, warehouseID kernel.UUID, priority Priority, items []*Item) (*Order, error) {
	if err := errors.Join(id.Validate(), warehouseID.Validate(), priority.Validate()); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("order items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	return &Order{
		id:          id,
		number:      kernel.BusinessNumber("ORD", now, id),
		warehouseID: warehouseID,
		priority:    priority,
		status:      Created,
		items:       items,
		createdAt:   now,
		updatedAt:   now,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder reconstructs an order from persistence.
func RestoreOrder(
	id kernel.UUID,
	number string,
	warehouseID kernel.UUID,
	priority Priority,
	status Status,
	cancelReason string,
	items []*Item,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		warehouseID.Validate(),
		priority.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if number == "" {
		return nil, errs.NewValueIsRequiredError("order number")
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("order items")
	}

	return &Order{
		id:           id,
		number:       number,
		warehouseID:  warehouseID,
		priority:     priority,
		status:       status,
		cancelReason: cancelReason,
		items:        items,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Order was built through a factory function.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// Number returns the human-readable order number.
func (o *Order) Number() string { return o.number }

// WarehouseID returns the warehouse the order is fulfilled from.
func (o *Order) WarehouseID() kernel.UUID { return o.warehouseID }

// Priority returns the order priority.
func (o *Order) Priority() Priority { return o.priority }

// Status returns the current workflow status.
func (o *Order) Status() Status { return o.status }

// CancelReason returns the reason recorded at cancellation, if any.
func (o *Order) CancelReason() string { return o.cancelReason }

// Items returns the order lines in submission order.
func (o *Order) Items() []*Item { return o.items }

// CreatedAt returns the creation timestamp (UTC).
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the last mutation timestamp (UTC).
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// Item returns the order line with the given ID.
func (o *Order) Item(itemID kernel.UUID) (*Item, error) {
	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("orderItemId", itemID.String())
}

// TotalAmount returns the sum of all line totals.
func (o *Order) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// AllItemsFullyPacked reports whether every line's packed quantity equals its
// picked quantity. Used as the gate for completing a packing task.
func (o *Order) AllItemsFullyPacked() bool {
	for _, item := range o.items {
		if !item.IsFullyPacked() {
			return false
		}
	}
	return true
}

// Approve moves the order from Created to Approved.
func (o *Order) Approve() error {
	return o.transitionTo(Approved)
}

// MarkAllocated moves the order from Approved to Allocated.
func (o *Order) MarkAllocated() error {
	return o.transitionTo(Allocated)
}

// StartPicking moves the order from Allocated to Picking.
func (o *Order) StartPicking() error {
	return o.transitionTo(Picking)
}

// StartPacking moves the order from Picking to Packing.
func (o *Order) StartPacking() error {
	return o.transitionTo(Packing)
}

// MarkShipped moves the order from Packing to Shipped.
func (o *Order) MarkShipped() error {
	return o.transitionTo(Shipped)
}

// MarkDelivered moves the order from Shipped to Delivered. Terminal.
func (o *Order) MarkDelivered() error {
	return o.transitionTo(Delivered)
}

// Cancel moves the order to Cancelled from any non-terminal status and
// records the reason. The compensating actions (releasing reservations,
// cancelling open tasks) are orchestrated by the cancel command handler in
// the same transaction, not here.
func (o *Order) Cancel(reason string) error {
	if err := o.transitionTo(Cancelled); err != nil {
		return err
	}
	o.cancelReason = reason
	return nil
}

func (o *Order) transitionTo(requested Status) error {
	next, err := o.status.TransitionTo(requested)
	if err != nil {
		return err
	}
	o.status = next
	o.updatedAt = time.Now().UTC()
	return nil
}

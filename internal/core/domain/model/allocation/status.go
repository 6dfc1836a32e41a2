// Package allocation holds the inventory reservations backing an order.
//
// An Allocation records that a quantity of one SKU was reserved at one
// stock location through the inventory adapter. Allocations are created in
// Active status by the allocate command, move to Released when the order is
// cancelled, and to Consumed when the order is delivered. A delivered or
// cancelled order therefore always ends with zero Active allocations.
package allocation

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an inventory reservation.
type Status int

const (
	StatusUnknown Status = iota

	// StatusActive means the reservation is held against warehouse stock.
	StatusActive

	// StatusReleased means the reservation was compensated back to stock.
	// Terminal.
	StatusReleased

	// StatusConsumed means the reserved stock physically left the warehouse
	// with a delivered shipment. Terminal.
	StatusConsumed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "Unknown",
		StatusActive:   "Active",
		StatusReleased: "Released",
		StatusConsumed: "Consumed",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	switch s {
	case StatusActive, StatusReleased, StatusConsumed:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%d is not a valid allocation status", s))
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the reservation reached a final state.
func (s Status) IsTerminal() bool {
	return s == StatusReleased || s == StatusConsumed
}

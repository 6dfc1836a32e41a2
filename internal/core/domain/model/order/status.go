package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine over a fixed adjacency table to ensure orders follow the
// fulfillment workflow.
//
// State transitions:
//
//	Created → Approved → Allocated → Picking → Packing → Shipped → Delivered
//	    └────────┴───────────┴──────────┴─────────┴─────────┴──→ Cancelled
//
// Delivered and Cancelled are terminal: they admit no outgoing transitions.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order is first submitted.
	Created

	// Approved indicates the order has been accepted for fulfillment.
	Approved

	// Allocated indicates inventory has been reserved for every item.
	Allocated

	// Picking indicates picking tasks have been generated and are in flight.
	Picking

	// Packing indicates picking completed and a packing task exists.
	Packing

	// Shipped indicates a shipment has been created for the order's packages.
	Shipped

	// Delivered indicates the carrier confirmed delivery. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled and all active
	// reservations were compensated. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Created:   "Created",
		Approved:  "Approved",
		Allocated: "Allocated",
		Picking:   "Picking",
		Packing:   "Packing",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// transitions is the adjacency table of the order workflow. It is the single
// source of truth for transition legality; nothing else in the codebase may
// compare order statuses to decide whether a move is allowed.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		Created:   {Approved, Cancelled},
		Approved:  {Allocated, Cancelled},
		Allocated: {Picking, Cancelled},
		Picking:   {Packing, Cancelled},
		Packing:   {Shipped, Cancelled},
		Shipped:   {Delivered, Cancelled},
		Delivered: {},
		Cancelled: {},
	}
}

// StatusFromString parses a status name, case-sensitively.
// Returns an error for unknown names.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks if the Status value is a known workflow state.
func (s Status) Validate() error {
	if _, ok := transitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status admits no outgoing transitions.
func (s Status) IsTerminal() bool {
	return len(transitions()[s]) == 0 && s.Validate() == nil
}

// CanTransitionTo reports whether requested is a legal next status.
// Pure function over the adjacency table; no side effects.
func (s Status) CanTransitionTo(requested Status) bool {
	for _, next := range transitions()[s] {
		if next == requested {
			return true
		}
	}
	return false
}

// TransitionTo returns the requested status if the edge exists in the
// workflow table, or an InvalidTransitionError otherwise.
func (s Status) TransitionTo(requested Status) (Status, error) {
	if !s.CanTransitionTo(requested) {
		return Unknown, errs.NewInvalidTransitionError("Order", s.String(), requested.String())
	}
	return requested, nil
}

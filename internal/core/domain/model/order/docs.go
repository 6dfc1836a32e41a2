// Package order contains the Order aggregate, the root of the fulfillment
// domain. An Order owns its Items and its Status state machine; every other
// fulfillment entity (allocation, picking task, packing task, shipment) holds
// a non-owning reference back to an Order and is driven by the order's
// lifecycle.
//
// The legal lifecycle is:
//
//	Created → Approved → Allocated → Picking → Packing → Shipped → Delivered
//
// with Cancelled reachable in one step from every non-terminal status.
// Delivered and Cancelled are terminal. The full transition table lives in
// status.go and is checked by a single pure function, so the legal-transition
// set is auditable and testable in isolation.
package order

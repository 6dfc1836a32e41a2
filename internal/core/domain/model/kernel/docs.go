// Package kernel contains the shared value objects of the fulfillment domain:
// UUID identity and decimal helpers for quantities, money, and weight.
//
// Value objects here are immutable and safe for concurrent use. Aggregates in
// the model packages build on these primitives and never expose raw library
// types in their public identity surface.
package kernel

// Package errs provides standardized error types for the fulfillment engine.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Two groups of errors live here.
//
// Generic value errors, used mostly by constructors and validation:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is present but invalid
//   - ValueIsOutOfRangeError: a numeric value falls outside its legal range
//   - ObjectNotFoundError: an entity cannot be found
//
// Fulfillment-specific errors, forming the taxonomy surfaced to callers of
// the orchestration operations:
//   - InvalidTransitionError: a status transition not present in a workflow table
//   - InsufficientInventoryError: allocation could not be satisfied; carries
//     per-item shortfall detail and guarantees nothing was reserved
//   - PackageOverweightError: adding an item would exceed a package's weight cap
//   - AdapterError: the external inventory system failed or timed out; the
//     enclosing transaction was rolled back and the operation may be retried
//
// Each error type follows the same pattern: a sentinel error variable, a
// struct type with fields for error details, constructor functions with and
// without cause, an Error() method, and an Unwrap() method so errors.Is can
// classify failures against the sentinels.
package errs

// Package errs provides standardized error types for the courier back-office core.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes general-purpose validation errors:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its bounds
//   - ObjectNotFoundError: For when an object cannot be found
//
// and the domain error taxonomy of the shipment core:
//   - IllegalTransitionError: For status changes outside the transition table
//   - OutOfOrderEventError: For tracking events that violate timeline order
//   - InvoiceLockedError: For line edits on non-draft invoices
//   - CourierUnavailableError: For assignments to offline couriers
//   - StaleWriteError: For optimistic-concurrency conflicts
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where a cause is meaningful
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Every error here is a recoverable, return-path signal: callers decide whether
// to surface it, retry, or no-op. Nothing in this taxonomy aborts the process.
package errs

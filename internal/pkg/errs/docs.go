// Package errs provides standardized error types for the delivery engine.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the engine's error taxonomy:
//   - ValueIsRequiredError / ValueIsInvalidError: validation failures, rejected
//     before any mutation is applied
//   - ObjectNotFoundError: a referenced order, subscription, or agent does not exist
//   - InvalidTransitionError: a lifecycle event is not legal from the current status
//   - ForbiddenError: the caller's identity or role does not permit the operation
//   - ConflictError: a compare-and-set update lost a race with another caller
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// Callers classify errors with errors.Is against the sentinels rather than
// matching message strings, which keeps the HTTP adapter's status mapping and
// the handlers' business branches stable.
package errs

// Package errs provides standardized error types for the orders application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - VersionConflictError: For when a row exists but does not match the expected version
//   - InvalidTransitionError: For when a status change is not allowed by the transition rules
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// VersionConflictError and ObjectNotFoundError are deliberately separate types:
// a version conflict means the caller should refetch and retry, while not found
// means there is nothing to retry against. The update flow never coerces one
// into the other.
package errs

// Package errs provides standardized error types for the candy delivery service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the domain model, application layer and adapters.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is malformed
//   - ValueIsOutOfRangeError: For when a value lies outside its allowed bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - ObjectAlreadyExistsError: For when an identifier is taken
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The HTTP adapter classifies failures with errors.Is against the sentinels:
// the three value errors are validation failures, ErrObjectNotFound is a lookup miss
// and ErrObjectAlreadyExists rejects a duplicate import record.
package errs

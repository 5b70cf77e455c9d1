// Package errs provides standardized error types for the dashboard service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package covers two groups of errors:
//
// Generic validation errors used by value objects and commands:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value failed validation
//   - ValueIsOutOfRangeError: a value is outside its allowed bounds
//   - ObjectNotFoundError: a lookup by id found nothing
//
// Domain errors of the ingestion and enrichment pipeline:
//   - FetchError: the order source fetch failed; the only error kind that is
//     surfaced to the user, with a manual retry affordance
//   - EnrichmentError: coordinate parsing or reverse geocoding failed; logged
//     only, never surfaced, never retried
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrFetchFailed)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel for errors.Is classification
package errs

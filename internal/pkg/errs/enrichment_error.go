package errs

import (
	"errors"
	"fmt"
)

// ErrEnrichmentFailed is the sentinel error for area enrichment failures.
// Enrichment failures are isolated per order: they are logged, never surfaced
// to the user, and never block the dashboard load.
var ErrEnrichmentFailed = errors.New("enrichment failed")

// EnrichmentError indicates that resolving an order's coordinates into an
// area name failed, either locally (malformed coordinates) or remotely
// (geocoding call failure).
type EnrichmentError struct {
	ParamName string
	Cause     error
}

// NewEnrichmentError creates an enrichment error for the named input.
func NewEnrichmentError(paramName string) *EnrichmentError {
	return &EnrichmentError{ParamName: paramName}
}

// NewEnrichmentErrorWithCause creates an enrichment error wrapping the
// underlying cause.
func NewEnrichmentErrorWithCause(paramName string, cause error) *EnrichmentError {
	return &EnrichmentError{ParamName: paramName, Cause: cause}
}

func (e *EnrichmentError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrEnrichmentFailed, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrEnrichmentFailed, e.ParamName))
}

func (e *EnrichmentError) Unwrap() error {
	return ErrEnrichmentFailed
}

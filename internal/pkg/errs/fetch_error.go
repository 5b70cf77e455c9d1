package errs

import (
	"errors"
	"fmt"
)

// ErrFetchFailed is the sentinel error for order source fetch failures.
// Fetch failures are the only errors surfaced to the dashboard user; they are
// never retried automatically.
var ErrFetchFailed = errors.New("order fetch failed")

// FetchError indicates that a fetch against the order source failed, either
// at the transport level or with a non-success HTTP status.
type FetchError struct {
	Message    string
	StatusCode int
	Cause      error
}

// NewFetchError creates a fetch error with a user-presentable message.
func NewFetchError(message string) *FetchError {
	return &FetchError{Message: message}
}

// NewFetchErrorWithStatus creates a fetch error for a non-success HTTP
// response from the order source.
func NewFetchErrorWithStatus(message string, statusCode int) *FetchError {
	return &FetchError{Message: message, StatusCode: statusCode}
}

// NewFetchErrorWithCause creates a fetch error wrapping a transport failure.
func NewFetchErrorWithCause(message string, cause error) *FetchError {
	return &FetchError{Message: message, Cause: cause}
}

func (e *FetchError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrFetchFailed, e.Message)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status: %d)", msg, e.StatusCode)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return sanitize(msg)
}

func (e *FetchError) Unwrap() error {
	return ErrFetchFailed
}

package errs_test

import (
	"errors"
	"testing"

	"khasdash/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("bucketID", "dispatched")

		assert.Equal(t, "bucketID", err.ParamName)
		assert.Equal(t, "dispatched", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: dispatched", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("mapping is stale")
		err := errs.NewObjectNotFoundErrorWithCause("bucketID", "dispatched", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: bucketID, ID is: dispatched (cause: mapping is stale)",
			err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("windowName")

		assert.Equal(t, "windowName", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: windowName", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("unknown name")
		err := errs.NewValueIsInvalidErrorWithCause("windowName", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: windowName (cause: unknown name)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("latitude", 120.0, -90.0, 90.0)

		assert.Equal(t, "latitude", err.ParamName)
		assert.Equal(t, 120.0, err.Value)
		assert.Equal(t, -90.0, err.Min)
		assert.Equal(t, 90.0, err.Max)
		assert.Equal(t, "value is invalid: 120 is latitude, min value is -90, max value is 90", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitizes_newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("bearerToken")

		assert.Equal(t, "bearerToken", err.ParamName)
		assert.Equal(t, "value is required: bearerToken", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("env var unset")
		err := errs.NewValueIsRequiredErrorWithCause("bearerToken", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: bearerToken (cause: env var unset)", err.Error())
	})
}

func TestFetchError(t *testing.T) {
	t.Run("NewFetchError", func(t *testing.T) {
		err := errs.NewFetchError("orders request failed")

		assert.Equal(t, "orders request failed", err.Message)
		assert.Equal(t, "order fetch failed: orders request failed", err.Error())
		assert.Equal(t, errs.ErrFetchFailed, err.Unwrap())
	})

	t.Run("NewFetchErrorWithStatus", func(t *testing.T) {
		err := errs.NewFetchErrorWithStatus("orders request failed", 502)

		assert.Equal(t, 502, err.StatusCode)
		assert.Equal(t, "order fetch failed: orders request failed (status: 502)", err.Error())
	})

	t.Run("NewFetchErrorWithCause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.NewFetchErrorWithCause("orders request failed", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "order fetch failed: orders request failed (cause: connection refused)", err.Error())
	})
}

func TestEnrichmentError(t *testing.T) {
	t.Run("NewEnrichmentError", func(t *testing.T) {
		err := errs.NewEnrichmentError("coordinates")

		assert.Equal(t, "coordinates", err.ParamName)
		assert.Equal(t, "enrichment failed: coordinates", err.Error())
		assert.Equal(t, errs.ErrEnrichmentFailed, err.Unwrap())
	})

	t.Run("NewEnrichmentErrorWithCause", func(t *testing.T) {
		cause := errors.New("geocoder unreachable")
		err := errs.NewEnrichmentErrorWithCause("coordinates", cause)

		assert.Equal(t, "enrichment failed: coordinates (cause: geocoder unreachable)", err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "order fetch failed", errs.ErrFetchFailed.Error())
		assert.Equal(t, "enrichment failed", errs.ErrEnrichmentFailed.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("bucketID", "x"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("windowName"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("latitude", 120.0, -90.0, 90.0), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("bearerToken"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewFetchError("boom"), errs.ErrFetchFailed)
		require.ErrorIs(t, errs.NewEnrichmentError("coordinates"), errs.ErrEnrichmentFailed)
	})
}

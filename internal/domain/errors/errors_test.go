package errors

import (
	"net/http"
	"testing"

	"estate/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestWithDetailsStillMatchesPredefined(t *testing.T) {
	err := ErrValidationFailed.WithDetails("bedrooms is required for residential listings")

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Equal(t, "bedrooms is required for residential listings", err.Details())
	assert.Empty(t, ErrValidationFailed.Details())
}

func TestWrappedAppErrorIsDiscoverable(t *testing.T) {
	wrapped := errors.Wrap(ErrUpstreamUnavailable.WithDetails("opencage: 503"), "resolve searched location")

	var appErr AppError
	if assert.True(t, errors.As(wrapped, &appErr)) {
		assert.Equal(t, http.StatusBadGateway, appErr.HTTPCode())
		assert.Equal(t, "UPSTREAM_UNAVAILABLE", appErr.ErrorCode())
	}
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to create listing")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "failed to create listing", err.Details())
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "database execution failed")
}

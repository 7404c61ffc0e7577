package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/educoreai-lotus/ContentStudio-sub002/internal/generation"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid input maps to 400", err: generation.ErrInvalidInput, want: http.StatusBadRequest},
		{name: "disabled adapter maps to 503", err: generation.ErrAdapterDisabled, want: http.StatusServiceUnavailable},
		{name: "generation timeout maps to 504", err: generation.ErrGenerationTimeout, want: http.StatusGatewayTimeout},
		{name: "service error maps to 502", err: generation.ErrServiceError, want: http.StatusBadGateway},
		{name: "missing artifact maps to 502", err: generation.ErrNoArtifact, want: http.StatusBadGateway},
		{name: "storage failure maps to 502", err: generation.ErrStorageUploadFailed, want: http.StatusBadGateway},
		{name: "unknown error maps to 500", err: errors.New("boom"), want: http.StatusInternalServerError},
		{
			name: "wrapped errors are unwrapped",
			err:  fmt.Errorf("%w: status 429: rate limited", generation.ErrServiceError),
			want: http.StatusBadGateway,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Run("maps known errors to fixed messages", func(t *testing.T) {
		assert.Equal(t, "Invalid generation request",
			GetSafeErrorMessage(generation.ErrInvalidInput))
		assert.Equal(t, "Presentation generation is not configured",
			GetSafeErrorMessage(generation.ErrAdapterDisabled))
		assert.Equal(t, "Presentation generation timed out",
			GetSafeErrorMessage(generation.ErrGenerationTimeout))
		assert.Equal(t, "Presentation generation service failed",
			GetSafeErrorMessage(generation.ErrServiceError))
		assert.Equal(t, "Presentation generation produced no artifact",
			GetSafeErrorMessage(generation.ErrNoArtifact))
		assert.Equal(t, "Failed to store the generated presentation",
			GetSafeErrorMessage(generation.ErrStorageUploadFailed))
	})

	t.Run("never exposes wrapped detail", func(t *testing.T) {
		err := fmt.Errorf("%w: status 500: api_key=secret leaked", generation.ErrServiceError)
		msg := GetSafeErrorMessage(err)
		assert.Equal(t, "Presentation generation service failed", msg)
		assert.NotContains(t, msg, "secret")
	})

	t.Run("handles nil and unknown errors", func(t *testing.T) {
		assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
		assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(errors.New("boom")))
	})
}

func TestSanitizeValidationError(t *testing.T) {
	t.Run("extracts field and tag from validator errors", func(t *testing.T) {
		err := errors.New(
			"Key: 'GeneratePresentationRequest.Prompt' Error:Field validation for 'Prompt' failed on the 'required' tag")
		assert.Equal(t, "Invalid Prompt: required field", SanitizeValidationError(err))
	})

	t.Run("falls back to a generic message", func(t *testing.T) {
		assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("boom")))
	})
}

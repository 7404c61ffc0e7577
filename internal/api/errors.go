package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/educoreai-lotus/ContentStudio-sub002/internal/generation"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Input errors
	case errors.Is(err, generation.ErrInvalidInput):
		return http.StatusBadRequest

	// The adapter is deliberately switched off; the caller can retry once
	// the service is configured.
	case errors.Is(err, generation.ErrAdapterDisabled):
		return http.StatusServiceUnavailable

	// The upstream job never reached a terminal state.
	case errors.Is(err, generation.ErrGenerationTimeout):
		return http.StatusGatewayTimeout

	// Upstream and storage failures
	case errors.Is(err, generation.ErrServiceError),
		errors.Is(err, generation.ErrNoArtifact),
		errors.Is(err, generation.ErrStorageUploadFailed):
		return http.StatusBadGateway

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, generation.ErrInvalidInput):
		return "Invalid generation request"

	case errors.Is(err, generation.ErrAdapterDisabled):
		return "Presentation generation is not configured"

	case errors.Is(err, generation.ErrGenerationTimeout):
		return "Presentation generation timed out"

	case errors.Is(err, generation.ErrServiceError):
		return "Presentation generation service failed"

	case errors.Is(err, generation.ErrNoArtifact):
		return "Presentation generation produced no artifact"

	case errors.Is(err, generation.ErrStorageUploadFailed):
		return "Failed to store the generated presentation"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Check if this is likely a validation error message
	if strings.Contains(errMsg, "Field validation") {
		// Extract the field name and validation tag
		// Example format: "Key: 'GeneratePresentationRequest.Prompt' Error:Field validation for 'Prompt' failed on the 'required' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	// Fall back to a generic validation error message
	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too small"
	case "max":
		return "too large"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}

package generation

import "errors"

// Common errors returned by presentation generators.
var (
	// ErrAdapterDisabled is returned when the generation credential is
	// missing and the adapter refuses to attempt any network call.
	ErrAdapterDisabled = errors.New("presentation generation is not enabled")

	// ErrInvalidInput is returned when the prompt is missing or empty after
	// trimming whitespace.
	ErrInvalidInput = errors.New("invalid generation input")

	// ErrServiceError is returned when the generation endpoint answered with
	// a non-success status. Wrapped messages include the status code and a
	// truncated excerpt of the response body.
	ErrServiceError = errors.New("generation service returned an error")

	// ErrGenerationTimeout is returned when job polling exhausted its
	// bounded budget without reaching a terminal state.
	ErrGenerationTimeout = errors.New("generation timed out while waiting for completion")

	// ErrNoArtifact is returned when the service acknowledged the request
	// but neither a URL nor exportable bytes could be obtained after all
	// fallback paths were exhausted.
	ErrNoArtifact = errors.New("generation produced no usable artifact")

	// ErrStorageUploadFailed is returned when bytes were obtained but the
	// storage collaborator failed and no direct URL exists, leaving the only
	// artifact unreachable.
	ErrStorageUploadFailed = errors.New("failed to store generated presentation")
)

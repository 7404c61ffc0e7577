package generation

import (
	"context"
)

// Options carries the per-request knobs for presentation generation.
// Zero values are replaced with defaults by the implementation:
// TopicName "presentation", Language "en", MaxSlides 10.
type Options struct {
	// TopicName names the lesson topic; it seeds the storage key for
	// uploaded artifacts.
	TopicName string

	// Language is a free-form locale tag ("en", "he-IL", "Hebrew", ...).
	Language string

	// MaxSlides is the caller-requested slide count. It is unbounded here;
	// implementations clamp it into the supported range.
	MaxSlides int
}

// Result is the normalized outcome of a successful generation.
// It is constructed once per invocation and never mutated.
type Result struct {
	// PresentationURL is the service-provided view URL, or the public URL of
	// the storage mirror when the service returned raw bytes. Nil only when
	// bytes were uploaded but storage could not produce a URL.
	PresentationURL *string

	// StoragePath is the durable storage key of the uploaded artifact, or
	// nil when the service returned a direct URL and no upload happened.
	StoragePath *string

	// RawResponse carries enough of the original service payload for
	// caller-side debugging: the parsed JSON body, or a descriptor
	// {"type":"file","contentType":...,"size":...} for binary responses.
	RawResponse map[string]any
}

// Generator defines the interface for producing slide decks from trainer
// text. This interface is the boundary between the application core and the
// external generation service, following the same hexagonal layering as the
// rest of the platform packages.
type Generator interface {
	// GeneratePresentation submits the prompt to the external generation
	// service and resolves its response into a normalized Result.
	//
	// Parameters:
	//   - ctx: Context for the operation, which can be used for cancellation
	//   - prompt: The trainer's raw lesson text; must be non-empty after trimming
	//   - opts: Per-request options (topic name, language, slide count)
	//
	// Returns:
	//   - A Result with a presentation URL and/or a durable storage path
	//   - An error from the taxonomy in errors.go if generation fails
	GeneratePresentation(ctx context.Context, prompt string, opts Options) (*Result, error)
}

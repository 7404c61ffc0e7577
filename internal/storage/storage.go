// Package storage defines the contract for the durable object-storage
// collaborator consumed by the generation adapter. The adapter treats
// storage as append-only: every artifact gets a fresh timestamped key and
// existing objects are never overwritten or deleted.
package storage

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned by uploaders that were constructed without
// working credentials. Callers check IsConfigured first; the error exists so
// a misuse still fails loudly rather than silently dropping bytes.
var ErrNotConfigured = errors.New("object storage is not configured")

// UploadResult describes a stored object.
type UploadResult struct {
	// URL is the public URL of the uploaded object, when the backend can
	// produce one.
	URL string

	// Path is the durable storage key of the object.
	Path string
}

// Uploader is the storage collaborator contract.
type Uploader interface {
	// IsConfigured reports whether the uploader has working credentials.
	// When false, Upload must not be called; the adapter skips the mirror
	// instead of failing the operation.
	IsConfigured() bool

	// Upload writes data under the given key with the given content type
	// and returns the public URL and path of the stored object.
	Upload(ctx context.Context, data []byte, path, contentType string) (*UploadResult, error)
}

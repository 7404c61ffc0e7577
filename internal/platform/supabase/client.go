// Package supabase implements the storage.Uploader contract against the
// Supabase Storage HTTP API. Uploads go to a single bucket of generated
// presentations; objects are public and addressed by deterministic keys.
package supabase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/educoreai-lotus/ContentStudio-sub002/internal/config"
	"github.com/educoreai-lotus/ContentStudio-sub002/internal/storage"
)

// uploadTimeout bounds a single object upload.
const uploadTimeout = 2 * time.Minute

// Client is a Supabase Storage uploader. A Client built from incomplete
// configuration reports IsConfigured() == false and rejects uploads; callers
// treat that as "no storage mirror" rather than an error.
type Client struct {
	logger     *slog.Logger
	httpClient *http.Client

	baseURL    string
	serviceKey string
	bucket     string
}

var _ storage.Uploader = (*Client)(nil)

// NewClient creates a Supabase storage client from configuration. Missing
// URL or service key leaves the client unconfigured; that is logged once
// here, not treated as a startup failure.
func NewClient(logger *slog.Logger, cfg config.StorageConfig) *Client {
	c := &Client{
		logger:     logger.With("component", "supabase_storage"),
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.URL), "/"),
		serviceKey: strings.TrimSpace(cfg.ServiceKey),
		bucket:     strings.TrimSpace(cfg.Bucket),
	}
	if c.bucket == "" {
		c.bucket = "presentations"
	}

	if !c.IsConfigured() {
		c.logger.Warn("object storage not configured; generated artifacts will not be mirrored")
	}

	return c
}

// IsConfigured reports whether the client has a base URL and service key.
func (c *Client) IsConfigured() bool {
	return c.baseURL != "" && c.serviceKey != ""
}

// Upload writes data under the given key and returns its public URL and
// path. Keys are never overwritten: the API is called with upsert disabled,
// so a colliding key fails instead of replacing an existing artifact.
func (c *Client) Upload(ctx context.Context, data []byte, path, contentType string) (*storage.UploadResult, error) {
	if !c.IsConfigured() {
		return nil, storage.ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.objectURL(path), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "false")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("upload failed: status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(body)))
	}

	c.logger.InfoContext(ctx, "object uploaded",
		"bucket", c.bucket,
		"path", path,
		"size", len(data))

	return &storage.UploadResult{
		URL:  c.PublicURL(path),
		Path: path,
	}, nil
}

// PublicURL returns the public URL of an object in the bucket.
func (c *Client) PublicURL(path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		c.baseURL, c.bucket, escapeKey(path))
}

// objectURL returns the upload endpoint for an object key.
func (c *Client) objectURL(path string) string {
	return fmt.Sprintf("%s/storage/v1/object/%s/%s",
		c.baseURL, c.bucket, escapeKey(path))
}

// escapeKey escapes each segment of an object key while keeping the
// path separators intact.
func escapeKey(path string) string {
	segments := strings.Split(path, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}

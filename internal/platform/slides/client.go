package slides

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/educoreai-lotus/ContentStudio-sub002/internal/config"
	"github.com/educoreai-lotus/ContentStudio-sub002/internal/events"
	"github.com/educoreai-lotus/ContentStudio-sub002/internal/generation"
	"github.com/educoreai-lotus/ContentStudio-sub002/internal/redact"
	"github.com/educoreai-lotus/ContentStudio-sub002/internal/storage"
)

// Defaults applied when options or configuration leave a value unset.
const (
	defaultBaseURL   = "https://public-api.gamma.app"
	defaultTopicName = "presentation"
	defaultLanguage  = "en"
	defaultMaxSlides = 10

	defaultGenerateTimeout = 120 * time.Second
	defaultExportTimeout   = 60 * time.Second
	defaultPollInterval    = 2 * time.Second
	defaultPollAttempts    = 60

	// maxErrorExcerpt bounds how much of a failed response body is carried
	// into error messages.
	maxErrorExcerpt = 500

	// maxTopicKeyLength bounds the sanitized topic segment of storage keys.
	maxTopicKeyLength = 50
)

// Client implements generation.Generator against the external slide-deck
// generation service. It is safe for concurrent use; each call is an
// independent attempt with no shared mutable state.
type Client struct {
	logger   *slog.Logger
	uploader storage.Uploader
	recorder events.Recorder

	apiKey  string
	baseURL string

	generateTimeout time.Duration
	exportTimeout   time.Duration
	pollInterval    time.Duration
	pollMaxAttempts int

	httpClient *http.Client

	enabled bool

	// sleep and now are injectable so tests can drive polling and storage
	// keys deterministically.
	sleep func(ctx context.Context, d time.Duration) error
	now   func() time.Time
}

var _ generation.Generator = (*Client)(nil)

// NewClient creates a slide-generation client from configuration. A missing
// API key does not fail construction: the client enters a disabled state,
// logs a warning once, and rejects every generation call without touching
// the network.
func NewClient(
	logger *slog.Logger,
	cfg config.SlidesConfig,
	uploader storage.Uploader,
	recorder events.Recorder,
) *Client {
	apiKey := strings.TrimSpace(cfg.APIKey)

	c := &Client{
		logger:          logger.With("component", "slides_client"),
		uploader:        uploader,
		recorder:        recorder,
		apiKey:          apiKey,
		baseURL:         strings.TrimRight(cfg.BaseURL, "/"),
		generateTimeout: time.Duration(cfg.GenerateTimeoutSeconds) * time.Second,
		exportTimeout:   time.Duration(cfg.ExportTimeoutSeconds) * time.Second,
		pollInterval:    time.Duration(cfg.PollIntervalSeconds) * time.Second,
		pollMaxAttempts: cfg.PollMaxAttempts,
		httpClient:      &http.Client{},
		enabled:         apiKey != "",
		sleep:           sleepContext,
		now:             time.Now,
	}

	if c.baseURL == "" {
		c.baseURL = defaultBaseURL
	}
	if c.generateTimeout <= 0 {
		c.generateTimeout = defaultGenerateTimeout
	}
	if c.exportTimeout <= 0 {
		c.exportTimeout = defaultExportTimeout
	}
	if c.pollInterval <= 0 {
		c.pollInterval = defaultPollInterval
	}
	if c.pollMaxAttempts <= 0 {
		c.pollMaxAttempts = defaultPollAttempts
	}

	if !c.enabled {
		c.logger.Warn("presentation generation disabled: no API key configured")
	}

	return c
}

// GeneratePresentation runs one full generation attempt: validate, clamp,
// build instructions, submit, resolve the response shape, and hand bytes to
// storage. See the generation package for the error taxonomy.
func (c *Client) GeneratePresentation(
	ctx context.Context,
	prompt string,
	opts generation.Options,
) (*generation.Result, error) {
	if !c.enabled {
		return nil, fmt.Errorf("%w: missing API key", generation.ErrAdapterDisabled)
	}

	if strings.TrimSpace(prompt) == "" {
		return nil, fmt.Errorf("%w: prompt is required", generation.ErrInvalidInput)
	}

	topicName := opts.TopicName
	if strings.TrimSpace(topicName) == "" {
		topicName = defaultTopicName
	}
	language := opts.Language
	if strings.TrimSpace(language) == "" {
		language = defaultLanguage
	}
	requested := opts.MaxSlides
	if requested == 0 {
		requested = defaultMaxSlides
	}

	enforced, event := enforceSlideCount(requested)
	if event != nil {
		c.recorder.Record(ctx, *event)
	}

	profile := resolveLanguage(language)
	composed := composePrompt(buildInstructions(enforced, profile), prompt)

	c.logger.InfoContext(ctx, "submitting presentation generation",
		"topic", topicName,
		"language", profile.Code,
		"rtl", profile.RTL,
		"slides", enforced,
		"prompt_length", len(prompt))

	contentType, body, err := c.submit(ctx, composed, profile.Code)
	if err != nil {
		return nil, err
	}

	out, err := classifyResponse(contentType, body)
	if err != nil {
		return nil, err
	}

	switch out.kind {
	case outcomeDirectURL:
		url := out.url
		return &generation.Result{
			PresentationURL: &url,
			RawResponse:     out.payload,
		}, nil

	case outcomeFileBytes:
		raw := map[string]any{
			"type":        "file",
			"contentType": out.contentType,
			"size":        len(out.data),
		}
		return c.finishWithBytes(ctx, out.data, out.contentType, "", raw, profile.Code, topicName)

	case outcomeDeckExport:
		return c.resolveDeckExport(ctx, out, profile.Code, topicName)

	case outcomeJobPending:
		return c.resolveJob(ctx, out.jobID, profile.Code, topicName)
	}

	// classifyResponse returns a closed set; reaching here is a bug.
	return nil, fmt.Errorf("%w: unhandled response shape", generation.ErrNoArtifact)
}

// submit posts the composed prompt to the generation endpoint and returns
// the raw response content type and body so both JSON and binary payloads
// can be classified.
func (c *Client) submit(ctx context.Context, composed, language string) (string, []byte, error) {
	payload, err := jsonBody(generateRequest{
		Prompt:  composed,
		Options: generateOptions{Language: language},
	})
	if err != nil {
		return "", nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.generateTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/generate", payload)
	if err != nil {
		return "", nil, fmt.Errorf("failed to build generation request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", generation.ErrServiceError, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", nil, fmt.Errorf("%w: failed to read response: %v", generation.ErrServiceError, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", nil, fmt.Errorf("%w: status %d: %s",
			generation.ErrServiceError, resp.StatusCode, excerpt(body, maxErrorExcerpt))
	}

	return resp.Header.Get("Content-Type"), body, nil
}

// resolveJob polls an asynchronous generation job to completion and fetches
// its artifact: export bytes when available, the direct view URL otherwise.
func (c *Client) resolveJob(ctx context.Context, jobID, language, topicName string) (*generation.Result, error) {
	result, err := c.pollJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if result.exportURL != "" {
		data, contentType, err := c.fetchExport(ctx, result.exportURL)
		if err == nil {
			return c.finishWithBytes(ctx, data, contentType, result.directURL, result.payload, language, topicName)
		}

		// A failed export download is non-fatal while a view URL remains.
		c.recorder.Record(ctx, events.New(events.EventExportDownloadFailed, map[string]any{
			"job_id": jobID,
			"error":  redact.Error(err),
		}))
		c.logger.WarnContext(ctx, "export download failed, falling back to view URL",
			"job_id", jobID,
			"error", redact.Error(err))
	}

	if result.directURL != "" {
		url := result.directURL
		return &generation.Result{
			PresentationURL: &url,
			RawResponse:     result.payload,
		}, nil
	}

	return nil, fmt.Errorf("%w: job %s completed without an export or view URL",
		generation.ErrNoArtifact, jobID)
}

// resolveDeckExport handles responses that name a finished deck without a
// URL: fetch the artifact from the export endpoint and mirror it to storage.
func (c *Client) resolveDeckExport(ctx context.Context, out outcome, language, topicName string) (*generation.Result, error) {
	data, contentType, err := c.fetchExport(ctx, c.deckExportURL(out.jobID))
	if err != nil {
		c.recorder.Record(ctx, events.New(events.EventExportDownloadFailed, map[string]any{
			"deck_id": out.jobID,
			"error":   redact.Error(err),
		}))
		c.logger.WarnContext(ctx, "deck export download failed",
			"deck_id", out.jobID,
			"error", redact.Error(err))
		return nil, fmt.Errorf("%w: deck %s acknowledged but its export could not be downloaded",
			generation.ErrNoArtifact, out.jobID)
	}

	return c.finishWithBytes(ctx, data, contentType, "", out.payload, language, topicName)
}

// fetchExport downloads an export artifact with the short download timeout.
func (c *Client) fetchExport(ctx context.Context, url string) ([]byte, string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.exportTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build export request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("export download failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorExcerpt))
		return nil, "", fmt.Errorf("export download failed: status %d: %s",
			resp.StatusCode, excerpt(body, maxErrorExcerpt))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read export body: %w", err)
	}

	return data, resp.Header.Get("Content-Type"), nil
}

// finishWithBytes mirrors downloaded artifact bytes to durable storage and
// builds the normalized result. Storage being unconfigured or failing is
// tolerated only while a direct view URL keeps the artifact reachable.
func (c *Client) finishWithBytes(
	ctx context.Context,
	data []byte,
	contentType string,
	directURL string,
	raw map[string]any,
	language string,
	topicName string,
) (*generation.Result, error) {
	if c.uploader == nil || !c.uploader.IsConfigured() {
		c.recorder.Record(ctx, events.New(events.EventStorageSkipped, map[string]any{
			"size": len(data),
		}))
		if directURL != "" {
			url := directURL
			return &generation.Result{PresentationURL: &url, RawResponse: raw}, nil
		}
		return nil, fmt.Errorf("%w: storage is not configured and the service returned no view URL",
			generation.ErrNoArtifact)
	}

	key := c.storageKey(language, topicName, extensionForContentType(contentType))
	uploaded, err := c.uploader.Upload(ctx, data, key, contentType)
	if err != nil {
		if directURL != "" {
			c.logger.WarnContext(ctx, "storage upload failed, returning view URL without mirror",
				"path", key,
				"error", redact.Error(err))
			url := directURL
			return &generation.Result{PresentationURL: &url, RawResponse: raw}, nil
		}
		return nil, fmt.Errorf("%w: %v", generation.ErrStorageUploadFailed, err)
	}

	result := &generation.Result{RawResponse: raw}
	if uploaded.Path != "" {
		path := uploaded.Path
		result.StoragePath = &path
	}
	switch {
	case directURL != "":
		url := directURL
		result.PresentationURL = &url
	case uploaded.URL != "":
		url := uploaded.URL
		result.PresentationURL = &url
	}

	c.logger.InfoContext(ctx, "presentation stored",
		"path", uploaded.Path,
		"size", len(data),
		"content_type", contentType)

	return result, nil
}

// storageKey derives the durable storage key for an artifact:
// {language}/{sanitizedTopic}_{timestamp}.{extension}. Keys are timestamped
// so storage stays append-only; prior uploads are never overwritten.
func (c *Client) storageKey(language, topicName, extension string) string {
	return fmt.Sprintf("%s/%s_%d.%s",
		language, sanitizeTopicName(topicName), c.now().UnixMilli(), extension)
}

// sanitizeTopicName reduces a topic name to a storage-safe key segment:
// lower-cased alphanumerics only, truncated to maxTopicKeyLength. A topic
// with no usable characters falls back to the default name.
func sanitizeTopicName(topicName string) string {
	var b strings.Builder
	for _, r := range topicName {
		if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
		if b.Len() >= maxTopicKeyLength {
			break
		}
	}
	if b.Len() == 0 {
		return defaultTopicName
	}
	return b.String()
}

func (c *Client) statusURL(jobID string) string {
	return c.baseURL + "/v1/generations/" + jobID
}

func (c *Client) deckExportURL(deckID string) string {
	return c.baseURL + "/v1/decks/" + deckID + "/export"
}

// jsonBody marshals v into a reader suitable for an HTTP request body.
func jsonBody(v any) (io.Reader, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}
	return &buf, nil
}

// excerpt truncates a response body for inclusion in error messages. The cut
// backs up to a rune boundary so truncation never produces invalid UTF-8.
func excerpt(body []byte, limit int) string {
	s := strings.TrimSpace(string(body))
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// sleepContext waits for the duration or the context, whichever ends first.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

package slides

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/educoreai-lotus/ContentStudio-sub002/internal/generation"
)

// jobResult is the outcome of a completed generation job: an export URL to
// download bytes from, a direct view URL, or both. payload keeps the final
// status body for caller-side debugging.
type jobResult struct {
	exportURL string
	directURL string
	payload   map[string]any
}

// pollJob drives the job state machine: the submitted job is polled until a
// terminal status is observed. Completion yields a jobResult; the literal
// "failed"/"error" statuses fail immediately; exhausting the bounded
// attempt budget yields ErrGenerationTimeout rather than hanging the caller.
func (c *Client) pollJob(ctx context.Context, jobID string) (*jobResult, error) {
	for attempt := 1; attempt <= c.pollMaxAttempts; attempt++ {
		status, payload, err := c.fetchJobStatus(ctx, jobID)
		if err != nil {
			return nil, err
		}

		switch status.Status {
		case statusCompleted:
			c.logger.InfoContext(ctx, "generation job completed",
				"job_id", jobID,
				"attempt", attempt)
			return &jobResult{
				exportURL: status.Result.ExportURL,
				directURL: firstNonEmpty(status.Result.GammaURL, status.Result.URL),
				payload:   payload,
			}, nil
		case statusFailed, statusError:
			return nil, fmt.Errorf("%w: generation job %s reported status %q",
				generation.ErrNoArtifact, jobID, status.Status)
		}

		if attempt == c.pollMaxAttempts {
			break
		}
		if err := c.sleep(ctx, c.pollInterval); err != nil {
			return nil, fmt.Errorf("%w: %v", generation.ErrGenerationTimeout, err)
		}
	}

	return nil, fmt.Errorf("%w: job %s still pending after %d attempts",
		generation.ErrGenerationTimeout, jobID, c.pollMaxAttempts)
}

// fetchJobStatus performs one status check against the job status endpoint.
func (c *Client) fetchJobStatus(ctx context.Context, jobID string) (*statusResponse, map[string]any, error) {
	ctx, cancel := context.WithTimeout(ctx, c.exportTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.statusURL(jobID), nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build status request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: status check failed: %v", generation.ErrServiceError, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to read status response: %v", generation.ErrServiceError, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, nil, fmt.Errorf("%w: status %d: %s",
			generation.ErrServiceError, resp.StatusCode, excerpt(body, maxErrorExcerpt))
	}

	var status statusResponse
	if err := json.Unmarshal(body, &status); err != nil {
		return nil, nil, fmt.Errorf("%w: malformed status response: %v", generation.ErrServiceError, err)
	}

	var payload map[string]any
	_ = json.Unmarshal(body, &payload)

	return &status, payload, nil
}

// firstNonEmpty returns the first non-empty string among its arguments.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/educoreai-lotus/ContentStudio-sub002/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockGenerator is a scripted generation.Generator for handler tests.
type mockGenerator struct {
	lastPrompt string
	lastOpts   generation.Options
	result     *generation.Result
	err        error
}

func (m *mockGenerator) GeneratePresentation(
	_ context.Context,
	prompt string,
	opts generation.Options,
) (*generation.Result, error) {
	m.lastPrompt = prompt
	m.lastOpts = opts
	return m.result, m.err
}

func postPresentation(t *testing.T, handler *PresentationHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/api/presentations", bytes.NewBufferString(body))
	r.Header.Set("Content-Type", "application/json")
	handler.GeneratePresentation(w, r)
	return w
}

func TestGeneratePresentationHandler(t *testing.T) {
	t.Run("returns the normalized result on success", func(t *testing.T) {
		url := "https://decks.example.com/abc"
		path := "en/gobasics_1700000000000.pptx"
		gen := &mockGenerator{result: &generation.Result{PresentationURL: &url, StoragePath: &path}}
		handler := NewPresentationHandler(gen)

		w := postPresentation(t, handler,
			`{"prompt":"Go basics","topic_name":"Go Basics","language":"en","max_slides":5}`)

		require.Equal(t, http.StatusOK, w.Code)

		var resp PresentationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.PresentationURL)
		assert.Equal(t, url, *resp.PresentationURL)
		require.NotNil(t, resp.StoragePath)
		assert.Equal(t, path, *resp.StoragePath)

		assert.Equal(t, "Go basics", gen.lastPrompt)
		assert.Equal(t, "Go Basics", gen.lastOpts.TopicName)
		assert.Equal(t, "en", gen.lastOpts.Language)
		assert.Equal(t, 5, gen.lastOpts.MaxSlides)
	})

	t.Run("omitted max_slides passes zero so the adapter applies its default", func(t *testing.T) {
		url := "https://decks.example.com/abc"
		gen := &mockGenerator{result: &generation.Result{PresentationURL: &url}}
		handler := NewPresentationHandler(gen)

		w := postPresentation(t, handler, `{"prompt":"Go basics"}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Zero(t, gen.lastOpts.MaxSlides)
	})

	t.Run("URL-only results serialize storage_path as null", func(t *testing.T) {
		url := "https://decks.example.com/abc"
		handler := NewPresentationHandler(&mockGenerator{result: &generation.Result{PresentationURL: &url}})

		w := postPresentation(t, handler, `{"prompt":"Go basics"}`)

		var raw map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
		assert.Nil(t, raw["storage_path"])
		assert.Equal(t, url, raw["presentation_url"])
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		gen := &mockGenerator{}
		handler := NewPresentationHandler(gen)

		w := postPresentation(t, handler, `{"prompt":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, gen.lastPrompt, "the generator must not be invoked for malformed input")
	})

	t.Run("rejects a missing prompt", func(t *testing.T) {
		gen := &mockGenerator{}
		handler := NewPresentationHandler(gen)

		w := postPresentation(t, handler, `{"topic_name":"Go Basics"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Prompt")
	})

	t.Run("maps generator errors to status codes and safe messages", func(t *testing.T) {
		tests := []struct {
			name       string
			err        error
			wantStatus int
			wantBody   string
		}{
			{
				name:       "disabled adapter",
				err:        fmt.Errorf("%w: missing API key", generation.ErrAdapterDisabled),
				wantStatus: http.StatusServiceUnavailable,
				wantBody:   "Presentation generation is not configured",
			},
			{
				name:       "timeout",
				err:        fmt.Errorf("%w: job j1 still pending after 60 attempts", generation.ErrGenerationTimeout),
				wantStatus: http.StatusGatewayTimeout,
				wantBody:   "Presentation generation timed out",
			},
			{
				name:       "service failure",
				err:        fmt.Errorf("%w: status 500: secret detail", generation.ErrServiceError),
				wantStatus: http.StatusBadGateway,
				wantBody:   "Presentation generation service failed",
			},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				handler := NewPresentationHandler(&mockGenerator{err: tc.err})

				w := postPresentation(t, handler, `{"prompt":"Go basics"}`)

				assert.Equal(t, tc.wantStatus, w.Code)
				assert.Contains(t, w.Body.String(), tc.wantBody)
				assert.NotContains(t, w.Body.String(), "secret detail")
			})
		}
	})
}

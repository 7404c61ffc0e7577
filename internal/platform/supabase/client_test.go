package supabase

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/educoreai-lotus/ContentStudio-sub002/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestIsConfigured(t *testing.T) {
	testCases := []struct {
		name       string
		cfg        config.StorageConfig
		configured bool
	}{
		{
			name:       "fully configured",
			cfg:        config.StorageConfig{URL: "https://proj.supabase.co", ServiceKey: "key", Bucket: "decks"},
			configured: true,
		},
		{
			name:       "missing URL",
			cfg:        config.StorageConfig{ServiceKey: "key"},
			configured: false,
		},
		{
			name:       "missing service key",
			cfg:        config.StorageConfig{URL: "https://proj.supabase.co"},
			configured: false,
		},
		{
			name:       "whitespace only",
			cfg:        config.StorageConfig{URL: "  ", ServiceKey: "\t"},
			configured: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := NewClient(newTestLogger(), tc.cfg)
			assert.Equal(t, tc.configured, client.IsConfigured())
		})
	}
}

func TestUpload(t *testing.T) {
	t.Run("successful upload", func(t *testing.T) {
		var gotPath, gotAuth, gotContentType, gotUpsert string
		var gotBody []byte

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			gotContentType = r.Header.Get("Content-Type")
			gotUpsert = r.Header.Get("x-upsert")
			gotBody, _ = io.ReadAll(r.Body)
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"Key":"decks/en/intro_1.pptx"}`))
		}))
		defer server.Close()

		client := NewClient(newTestLogger(), config.StorageConfig{
			URL:        server.URL,
			ServiceKey: "service-key",
			Bucket:     "decks",
		})

		result, err := client.Upload(context.Background(), []byte("pptx-bytes"), "en/intro_1.pptx",
			"application/vnd.openxmlformats-officedocument.presentationml.presentation")
		require.NoError(t, err)

		assert.Equal(t, "/storage/v1/object/decks/en/intro_1.pptx", gotPath)
		assert.Equal(t, "Bearer service-key", gotAuth)
		assert.Contains(t, gotContentType, "presentationml")
		assert.Equal(t, "false", gotUpsert, "uploads must never overwrite existing objects")
		assert.Equal(t, []byte("pptx-bytes"), gotBody)

		assert.Equal(t, "en/intro_1.pptx", result.Path)
		assert.Equal(t, server.URL+"/storage/v1/object/public/decks/en/intro_1.pptx", result.URL)
	})

	t.Run("server error surfaces status and body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"error":"Duplicate"}`))
		}))
		defer server.Close()

		client := NewClient(newTestLogger(), config.StorageConfig{
			URL:        server.URL,
			ServiceKey: "service-key",
		})

		result, err := client.Upload(context.Background(), []byte("x"), "en/a.pdf", "application/pdf")
		require.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "409")
		assert.Contains(t, err.Error(), "Duplicate")
	})

	t.Run("unconfigured client refuses upload", func(t *testing.T) {
		client := NewClient(newTestLogger(), config.StorageConfig{})

		result, err := client.Upload(context.Background(), []byte("x"), "en/a.pdf", "application/pdf")
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestPublicURL(t *testing.T) {
	client := NewClient(newTestLogger(), config.StorageConfig{
		URL:        "https://proj.supabase.co",
		ServiceKey: "key",
		Bucket:     "presentations",
	})

	t.Run("plain key", func(t *testing.T) {
		assert.Equal(t,
			"https://proj.supabase.co/storage/v1/object/public/presentations/he/lesson_17.pdf",
			client.PublicURL("he/lesson_17.pdf"))
	})

	t.Run("key segments are escaped", func(t *testing.T) {
		url := client.PublicURL("en/topic with space_1.pptx")
		assert.NotContains(t, url, " ")
		assert.Contains(t, url, "/en/")
	})
}

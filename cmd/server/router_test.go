package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/educoreai-lotus/ContentStudio-sub002/internal/config"
	"github.com/educoreai-lotus/ContentStudio-sub002/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticGenerator struct {
	result *generation.Result
	err    error
}

func (g *staticGenerator) GeneratePresentation(
	context.Context,
	string,
	generation.Options,
) (*generation.Result, error) {
	return g.result, g.err
}

func testApplication(gen generation.Generator) *application {
	return &application{
		config: &config.Config{
			Server: config.ServerConfig{Port: 8080, LogLevel: "info"},
		},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		generator: gen,
	}
}

func TestRouterHealthEndpoint(t *testing.T) {
	app := testApplication(&staticGenerator{})
	router := app.setupRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestRouterGeneratePresentation(t *testing.T) {
	url := "https://decks.example.com/r1"
	app := testApplication(&staticGenerator{result: &generation.Result{PresentationURL: &url}})
	router := app.setupRouter()

	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/api/presentations", bytes.NewBufferString(`{"prompt":"Go basics"}`))
	r.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), url)
}

func TestRouterUnknownRoute(t *testing.T) {
	app := testApplication(&staticGenerator{})
	router := app.setupRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/unknown", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

package main

import (
	"net/http"

	"github.com/educoreai-lotus/ContentStudio-sub002/internal/api"
	apiMiddleware "github.com/educoreai-lotus/ContentStudio-sub002/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware) // Add trace IDs for improved error handling

	presentationHandler := api.NewPresentationHandler(app.generator)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		r.Post("/presentations", presentationHandler.GeneratePresentation)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}

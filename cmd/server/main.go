// Package main implements the entry point for the presentation generation
// service, which turns trainer prompts into slide decks through an external
// generation provider and mirrors the artifacts to durable storage.
package main

import (
	"context"
	"log"
)

// main initializes configuration, logging, and the generation pipeline, then
// runs the HTTP server until it receives a shutdown signal.
func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

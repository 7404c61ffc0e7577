package main

import (
	"fmt"
	"log/slog"

	"github.com/educoreai-lotus/ContentStudio-sub002/internal/config"
	"github.com/educoreai-lotus/ContentStudio-sub002/internal/events"
	"github.com/educoreai-lotus/ContentStudio-sub002/internal/generation"
	"github.com/educoreai-lotus/ContentStudio-sub002/internal/platform/logger"
	"github.com/educoreai-lotus/ContentStudio-sub002/internal/platform/slides"
	"github.com/educoreai-lotus/ContentStudio-sub002/internal/platform/supabase"
)

// application holds the fully wired dependencies of the running service.
type application struct {
	config    *config.Config
	logger    *slog.Logger
	generator generation.Generator
}

// initializeApp loads configuration and sets up application components:
// structured logging, the storage uploader, and the slide-generation client.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"slides_configured", cfg.Slides.APIKey != "",
		"storage_configured", cfg.Storage.URL != "" && cfg.Storage.ServiceKey != "")

	uploader := supabase.NewClient(appLogger, cfg.Storage)
	recorder := events.NewLogRecorder(appLogger)
	generator := slides.NewClient(appLogger, cfg.Slides, uploader, recorder)

	return &application{
		config:    cfg,
		logger:    appLogger,
		generator: generator,
	}, nil
}

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables and optionally a
// config.yaml file in the working directory. Environment variables use the
// STUDIO_ prefix with underscores for nesting (STUDIO_SERVER_PORT,
// STUDIO_SLIDES_API_KEY, ...) and take precedence over file values.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("STUDIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// A missing config file is fine; env vars alone are a complete source.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// AutomaticEnv only resolves keys viper already knows about, so bind the
	// nested keys explicitly.
	for _, key := range []string{
		"server.port",
		"server.log_level",
		"slides.api_key",
		"slides.base_url",
		"slides.generate_timeout_seconds",
		"slides.export_timeout_seconds",
		"slides.poll_interval_seconds",
		"slides.poll_max_attempts",
		"storage.url",
		"storage.service_key",
		"storage.bucket",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers the default value for every configuration key so a
// bare environment still yields a runnable server.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("slides.base_url", "https://public-api.gamma.app")
	v.SetDefault("slides.generate_timeout_seconds", 120)
	v.SetDefault("slides.export_timeout_seconds", 60)
	v.SetDefault("slides.poll_interval_seconds", 2)
	v.SetDefault("slides.poll_max_attempts", 60)
	v.SetDefault("storage.bucket", "presentations")
}

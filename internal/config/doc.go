// Package config defines the application's configuration structures and
// loading logic. Configuration comes from environment variables with the
// STUDIO_ prefix (and optionally a config.yaml in the working directory);
// environment variables take precedence. Loaded configuration is validated
// with go-playground/validator before use.
package config

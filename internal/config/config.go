package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  validate:"required"`
	Slides  SlidesConfig  `mapstructure:"slides"`
	Storage StorageConfig `mapstructure:"storage"`
}

// ServerConfig contains all HTTP-server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// SlidesConfig contains the settings for the external slide-deck generation
// service. APIKey may be empty: the adapter then runs disabled and rejects
// generation calls instead of failing at startup.
type SlidesConfig struct {
	// APIKey is the bearer credential for the generation service.
	APIKey string `mapstructure:"api_key"`

	// BaseURL overrides the generation service endpoint.
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`

	// GenerateTimeoutSeconds bounds the initial generation request.
	// Deck generation is slow; the default budget is 120 seconds.
	GenerateTimeoutSeconds int `mapstructure:"generate_timeout_seconds" validate:"gte=0"`

	// ExportTimeoutSeconds bounds export/file downloads. Default 60 seconds.
	ExportTimeoutSeconds int `mapstructure:"export_timeout_seconds" validate:"gte=0"`

	// PollIntervalSeconds is the delay between job status checks. Default 2.
	PollIntervalSeconds int `mapstructure:"poll_interval_seconds" validate:"gte=0"`

	// PollMaxAttempts bounds the total number of status checks. Default 60.
	PollMaxAttempts int `mapstructure:"poll_max_attempts" validate:"gte=0"`
}

// StorageConfig contains the settings for the durable object-storage mirror.
// Both fields empty means storage is unconfigured; generated artifacts are
// then returned without a mirror when a direct view URL exists.
type StorageConfig struct {
	// URL is the Supabase project base URL (https://<ref>.supabase.co).
	URL string `mapstructure:"url" validate:"omitempty,url"`

	// ServiceKey is the service-role key used for uploads.
	ServiceKey string `mapstructure:"service_key"`

	// Bucket is the bucket that holds generated presentations.
	Bucket string `mapstructure:"bucket"`
}

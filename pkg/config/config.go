package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete ImageVault configuration.
//
// This structure captures all configurable aspects of the service:
//   - Logging configuration
//   - HTTP server settings (port, CORS, shutdown)
//   - Content store selection and type-specific configuration
//   - Metadata store selection and type-specific configuration
//   - Image upload limits and presign behavior
//   - Pagination bounds
//
// Configuration sources (in order of precedence):
//  1. Environment variables (IMAGEVAULT_*)
//  2. Configuration file (YAML)
//  3. Default values
//
// Store Configuration Pattern:
// Each store implementation defines its own configuration type. The Config
// struct contains type-specific option maps (e.g. content.s3, metadata.badger)
// and only the section matching the selected type is decoded, inside the
// store factories in stores.go.
type Config struct {
	// Logging controls log output behavior
	Logging LoggingConfig `mapstructure:"logging"`

	// Server contains HTTP server settings
	Server ServerConfig `mapstructure:"server"`

	// Content specifies the content store type and type-specific options
	Content ContentConfig `mapstructure:"content"`

	// Metadata specifies the metadata store type and type-specific options
	Metadata MetadataConfig `mapstructure:"metadata"`

	// Images contains upload limits and presign behavior
	Images ImagesConfig `mapstructure:"images"`

	// Pagination contains listing page-size bounds
	Pagination PaginationConfig `mapstructure:"pagination"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	// Level is the minimum log level to output
	// Valid values: DEBUG, INFO, WARN, ERROR (case-insensitive)
	Level string `mapstructure:"level" validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error"`

	// Format specifies the log output format
	// Valid values: text, json
	Format string `mapstructure:"format" validate:"required,oneof=text json"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	// Port is the TCP port the HTTP server listens on
	Port int `mapstructure:"port" validate:"required,gt=0,lte=65535"`

	// ShutdownTimeout is the maximum time to wait for graceful shutdown
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"required,gt=0"`

	// CORSAllowedOrigins lists origins allowed by the CORS middleware.
	// ["*"] allows any origin.
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// ContentConfig specifies content store configuration.
//
// The Type field determines which store implementation is used; only the
// corresponding option map is decoded.
type ContentConfig struct {
	// Type specifies which content store implementation to use
	// Valid values: s3, memory
	Type string `mapstructure:"type" validate:"required,oneof=s3 memory"`

	// S3 contains S3-specific configuration; only used when Type = "s3"
	S3 map[string]any `mapstructure:"s3"`

	// Memory contains memory-specific configuration; only used when
	// Type = "memory"
	Memory map[string]any `mapstructure:"memory"`
}

// MetadataConfig specifies metadata store configuration.
type MetadataConfig struct {
	// Type specifies which metadata store implementation to use
	// Valid values: badger, memory
	Type string `mapstructure:"type" validate:"required,oneof=badger memory"`

	// Badger contains BadgerDB-specific configuration; only used when
	// Type = "badger"
	Badger map[string]any `mapstructure:"badger"`

	// Memory contains memory-specific configuration; only used when
	// Type = "memory"
	Memory map[string]any `mapstructure:"memory"`
}

// ImagesConfig contains upload limits and presign behavior.
type ImagesConfig struct {
	// MaxSizeMB is the maximum decoded image size in MiB
	MaxSizeMB int64 `mapstructure:"max_size_mb" validate:"required,gt=0"`

	// AllowedExtensions is the filename extension allow-list
	AllowedExtensions []string `mapstructure:"allowed_extensions" validate:"required,min=1"`

	// PresignTTL is the validity window of presigned download URLs
	PresignTTL time.Duration `mapstructure:"presign_ttl" validate:"required,gt=0"`
}

// PaginationConfig contains listing page-size bounds.
type PaginationConfig struct {
	// DefaultPageSize is used when the caller supplies no limit
	DefaultPageSize int `mapstructure:"default_page_size" validate:"required,gt=0"`

	// MaxPageSize silently clamps caller-requested limits
	MaxPageSize int `mapstructure:"max_page_size" validate:"required,gt=0"`
}

// Load loads configuration from file, environment, and defaults.
//
// Configuration precedence (highest to lowest):
//  1. Environment variables (IMAGEVAULT_*)
//  2. Configuration file
//  3. Default values
//
// An empty configPath skips the file entirely and uses env + defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Environment variables use the IMAGEVAULT_ prefix with underscores.
	// Example: IMAGEVAULT_SERVER_PORT=9090
	v.SetEnvPrefix("IMAGEVAULT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// Package config provides application configuration loading from environment variables and .env files.
// It uses viper for flexible configuration management with sensible defaults.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration loaded from environment variables or .env file.
// Configuration priority: environment variables > .env file > defaults.
type Config struct {
	AppEnv            string        // Application environment (dev, staging, prod)
	HTTPAddr          string        // HTTP server bind address (e.g., ":8080")
	MetricsAddr       string        // Metrics server bind address
	OpenAIAPIKey      string        // Completion API key (secret)
	OpenAIBaseURL     string        // Optional completion API base URL override
	AssignmentBaseURL string        // Base URL of the variant-assignment service
	AssignmentAPIKey  string        // Assignment service API key (secret)
	FlagKey           string        // Flag key evaluated for every request
	ModelMarker       string        // Substring marking a variant as a model identifier
	FallbackAnswer    string        // Answer returned when no model variant applies
	KnownVariants     []string      // Variant labels expected from the assignment service
	RateLimitPerIP    int           // Per-IP request limit per minute
	RequestTimeout    time.Duration // Per-request handler timeout
}

// DefaultFallbackAnswer is returned when the assignment service yields no model variant.
const DefaultFallbackAnswer = "Sorry, I don't have an answer for that one."

// Load reads configuration from environment variables and .env file (if present).
// Environment variables take precedence over .env file values.
// Returns a Config struct with all values populated (either from env or defaults).
//
// Validation:
//   This function performs basic configuration loading but does NOT validate
//   configuration constraints (e.g., prod requires real API keys).
//   Use Validate() to check production-readiness constraints.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env") // Optional; silently ignored if file doesn't exist
	_ = v.ReadInConfig()    // Ignore error - .env is optional
	v.AutomaticEnv()        // Read from environment variables

	setConfigDefaults(v)

	return &Config{
		AppEnv:            v.GetString("APP_ENV"),
		HTTPAddr:          v.GetString("APP_HTTP_ADDR"),
		MetricsAddr:       v.GetString("METRICS_ADDR"),
		OpenAIAPIKey:      v.GetString("OPENAI_API_KEY"),
		OpenAIBaseURL:     v.GetString("OPENAI_BASE_URL"),
		AssignmentBaseURL: v.GetString("ASSIGNMENT_BASE_URL"),
		AssignmentAPIKey:  v.GetString("ASSIGNMENT_API_KEY"),
		FlagKey:           v.GetString("ASSIGNMENT_FLAG_KEY"),
		ModelMarker:       v.GetString("MODEL_MARKER"),
		FallbackAnswer:    v.GetString("FALLBACK_ANSWER"),
		KnownVariants:     v.GetStringSlice("KNOWN_VARIANTS"),
		RateLimitPerIP:    v.GetInt("RATE_LIMIT_PER_IP"),
		RequestTimeout:    v.GetDuration("REQUEST_TIMEOUT"),
	}, nil
}

// setConfigDefaults sets default values for all configuration options.
// These defaults are suitable for local development but should be overridden in production.
func setConfigDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "dev")
	v.SetDefault("APP_HTTP_ADDR", ":8080")
	v.SetDefault("METRICS_ADDR", ":9090")
	v.SetDefault("OPENAI_BASE_URL", "")
	v.SetDefault("ASSIGNMENT_BASE_URL", "http://localhost:8081")
	v.SetDefault("ASSIGNMENT_API_KEY", "client-xyz") // Change in production!
	v.SetDefault("ASSIGNMENT_FLAG_KEY", "qa_model")
	v.SetDefault("MODEL_MARKER", "gpt")
	v.SetDefault("FALLBACK_ANSWER", DefaultFallbackAnswer)
	v.SetDefault("KNOWN_VARIANTS", []string{"gpt-3.5-turbo", "gpt-4", "control"})
	v.SetDefault("RATE_LIMIT_PER_IP", 100)
	v.SetDefault("REQUEST_TIMEOUT", 15*time.Second)
}

// ValidationError represents a configuration validation error with details about what failed.
type ValidationError struct {
	Field   string // Name of the configuration field
	Message string // Human-readable error message
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("config validation failed [%s]: %s", e.Field, e.Message)
}

// Validate checks that the configuration is suitable for running the service.
//
// This performs stricter validation than Load() and is intended to be called
// at application startup to fail fast on misconfiguration.
//
// Validation Rules:
//   1. HTTPAddr and MetricsAddr must be non-empty
//   2. AssignmentBaseURL and FlagKey must be non-empty
//   3. ModelMarker and FallbackAnswer must be non-empty
//   4. RequestTimeout must be positive
//
// Production Safety:
//   In production (AppEnv == "prod" or "production"), additional constraints apply:
//   - OpenAIAPIKey must be set
//   - AssignmentAPIKey must not be the default value "client-xyz"
func (c *Config) Validate() error {
	if c.HTTPAddr == "" {
		return ValidationError{
			Field:   "APP_HTTP_ADDR",
			Message: "HTTP server address cannot be empty",
		}
	}
	if c.MetricsAddr == "" {
		return ValidationError{
			Field:   "METRICS_ADDR",
			Message: "metrics server address cannot be empty",
		}
	}
	if c.AssignmentBaseURL == "" {
		return ValidationError{
			Field:   "ASSIGNMENT_BASE_URL",
			Message: "assignment service base URL cannot be empty",
		}
	}
	if c.FlagKey == "" {
		return ValidationError{
			Field:   "ASSIGNMENT_FLAG_KEY",
			Message: "flag key cannot be empty",
		}
	}
	if c.ModelMarker == "" {
		return ValidationError{
			Field:   "MODEL_MARKER",
			Message: "model marker cannot be empty",
		}
	}
	if c.FallbackAnswer == "" {
		return ValidationError{
			Field:   "FALLBACK_ANSWER",
			Message: "fallback answer cannot be empty",
		}
	}
	if c.RequestTimeout <= 0 {
		return ValidationError{
			Field:   "REQUEST_TIMEOUT",
			Message: "request timeout must be positive",
		}
	}

	// Production-specific checks (stricter validation)
	if c.AppEnv == "prod" || c.AppEnv == "production" {
		if c.OpenAIAPIKey == "" {
			return ValidationError{
				Field:   "OPENAI_API_KEY",
				Message: "completion API key is required in production",
			}
		}
		if c.AssignmentAPIKey == "client-xyz" {
			return ValidationError{
				Field:   "ASSIGNMENT_API_KEY",
				Message: "default assignment API key 'client-xyz' is not allowed in production",
			}
		}
	}

	return nil
}

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment     string
	Port            string
	ShutdownTimeout time.Duration
	Predictor       string
	Log             LogConfig
	CORS            CORSConfig
	Errors          ErrorConfig
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Format string // "json" or "text"
}

// CORSConfig holds cross-origin configuration for the prediction endpoints
type CORSConfig struct {
	AllowOrigin  string
	AllowMethods string
	AllowHeaders string
	// OnErrors controls whether the allow-origin header is also sent on failed requests
	OnErrors bool
}

// ErrorConfig controls how failures are reported to clients
type ErrorConfig struct {
	ExposeDetails bool
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8081")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 30)
	v.SetDefault("PREDICTOR", "mock")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("CORS_ALLOW_ORIGIN", "*")
	v.SetDefault("CORS_ON_ERROR", true)
	v.SetDefault("EXPOSE_ERROR_DETAILS", true)

	config := &Config{
		Environment:     v.GetString("ENVIRONMENT"),
		Port:            v.GetString("PORT"),
		ShutdownTimeout: time.Duration(v.GetInt("SHUTDOWN_TIMEOUT_SECONDS")) * time.Second,
		Predictor:       v.GetString("PREDICTOR"),
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		CORS: CORSConfig{
			AllowOrigin:  v.GetString("CORS_ALLOW_ORIGIN"),
			AllowMethods: "POST, OPTIONS",
			AllowHeaders: "Content-Type",
			OnErrors:     v.GetBool("CORS_ON_ERROR"),
		},
		Errors: ErrorConfig{
			ExposeDetails: v.GetBool("EXPOSE_ERROR_DETAILS"),
		},
	}

	return config, nil
}

// Default returns the configuration used when no environment is provided
func Default() *Config {
	return &Config{
		Environment:     "development",
		Port:            "8081",
		ShutdownTimeout: 30 * time.Second,
		Predictor:       "mock",
		Log:             LogConfig{Level: "info", Format: "json"},
		CORS: CORSConfig{
			AllowOrigin:  "*",
			AllowMethods: "POST, OPTIONS",
			AllowHeaders: "Content-Type",
			OnErrors:     true,
		},
		Errors: ErrorConfig{ExposeDetails: true},
	}
}

// IsProduction reports whether the service runs in the production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvAsBool gets an environment variable as boolean with a fallback value
func GetEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

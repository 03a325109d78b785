package config

import (
	"os"
)

// Platform identifies the host running the function
type Platform string

const (
	PlatformServer Platform = "server"
	PlatformLambda Platform = "lambda"
	PlatformVercel Platform = "vercel"
)

// ServerlessConfig holds serverless-specific configuration
type ServerlessConfig struct {
	Platform     Platform
	FunctionName string
	Region       string
	Stage        string
}

// GetServerlessConfig inspects the environment for the hosting platform.
// It is evaluated on every call so tests can toggle the environment.
func GetServerlessConfig() *ServerlessConfig {
	cfg := &ServerlessConfig{
		Platform: detectPlatform(),
		Stage:    GetEnv("STAGE", "dev"),
	}

	switch cfg.Platform {
	case PlatformLambda:
		cfg.FunctionName = os.Getenv("AWS_LAMBDA_FUNCTION_NAME")
		cfg.Region = os.Getenv("AWS_REGION")
	case PlatformVercel:
		cfg.Region = os.Getenv("VERCEL_REGION")
		cfg.Stage = GetEnv("VERCEL_ENV", cfg.Stage)
	}

	return cfg
}

func detectPlatform() Platform {
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		return PlatformLambda
	}
	if GetEnvAsBool("VERCEL", false) {
		return PlatformVercel
	}
	return PlatformServer
}

// IsServerlessMode returns true if running in serverless mode
func IsServerlessMode() bool {
	return GetServerlessConfig().Platform != PlatformServer
}

// GetDeploymentMode returns the current deployment mode
func GetDeploymentMode() string {
	if IsServerlessMode() {
		return "serverless"
	}
	return "server"
}

// AdaptConfigForServerless modifies configuration for serverless deployment
func AdaptConfigForServerless(config *Config) *Config {
	if !IsServerlessMode() {
		return config
	}

	// Platform log collectors index structured lines only
	config.Log.Format = "json"

	return config
}

// GetOptimizedConfig returns configuration optimized for the current deployment mode
func GetOptimizedConfig() (*Config, error) {
	config, err := Load()
	if err != nil {
		return nil, err
	}

	return AdaptConfigForServerless(config), nil
}

package server

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"match-predict-api/internal/config"
	"match-predict-api/internal/handlers"
	"match-predict-api/internal/logging"
	"match-predict-api/internal/services"
	"match-predict-api/pkg/lambda"
)

// Container holds all application dependencies.
// It is built once per process and is read-only afterwards.
type Container struct {
	Config            *config.Config
	Logger            *logrus.Logger
	PredictionService services.PredictionService

	// Internal dependencies
	services *services.ServiceContainer
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	logger := logging.New(cfg.Log)

	serviceContainer, err := services.NewServiceContainer(&services.ServiceConfig{
		Predictor: cfg.Predictor,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create service container: %w", err)
	}
	if err := serviceContainer.Validate(); err != nil {
		return nil, fmt.Errorf("invalid service container: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"environment": cfg.Environment,
		"predictor":   cfg.Predictor,
		"mode":        config.GetDeploymentMode(),
	}).Debug("Container initialized")

	return &Container{
		Config:            cfg,
		Logger:            logger,
		PredictionService: serviceContainer.PredictionService,
		services:          serviceContainer,
	}, nil
}

func (c *Container) routerConfig(enableSwagger bool) *handlers.RouterConfig {
	return &handlers.RouterConfig{
		PredictionService: c.PredictionService,
		Config:            c.Config,
		Logger:            c.Logger,
		EnableSwagger:     enableSwagger,
	}
}

// NewRouter builds a gin engine with all middleware and routes registered
func (c *Container) NewRouter(enableSwagger bool) *gin.Engine {
	router := gin.New()
	handlers.SetupMiddleware(router, c.Config, c.Logger)
	handlers.SetupRoutes(router, c.routerConfig(enableSwagger))
	return router
}

// LambdaHandler returns the framework-agnostic dispatcher for serverless functions
func (c *Container) LambdaHandler() lambda.HandlerFunc {
	return handlers.NewLambdaRouter(c.routerConfig(false))
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.services != nil {
		if err := c.services.Close(); err != nil {
			return fmt.Errorf("failed to close services: %w", err)
		}
	}
	return nil
}

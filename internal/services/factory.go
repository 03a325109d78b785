package services

import (
	"fmt"
)

// PredictorMock selects the fixed-output prediction service
const PredictorMock = "mock"

// ServiceContainer holds all service instances
type ServiceContainer struct {
	PredictionService PredictionService
}

// ServiceConfig holds configuration for services
type ServiceConfig struct {
	Predictor string
}

// NewServiceContainer creates a new service container with all services
func NewServiceContainer(config *ServiceConfig) (*ServiceContainer, error) {
	if config == nil {
		config = &ServiceConfig{Predictor: PredictorMock}
	}

	var (
		predictionService PredictionService
		err               error
	)

	switch config.Predictor {
	case "", PredictorMock:
		predictionService, err = NewMockPredictionService()
	default:
		return nil, fmt.Errorf("unsupported predictor %q", config.Predictor)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create prediction service: %w", err)
	}

	return &ServiceContainer{
		PredictionService: predictionService,
	}, nil
}

// Validate validates that all services are properly initialized
func (sc *ServiceContainer) Validate() error {
	if sc.PredictionService == nil {
		return fmt.Errorf("prediction service is nil")
	}
	return nil
}

// Close performs cleanup for all services
func (sc *ServiceContainer) Close() error {
	return nil
}

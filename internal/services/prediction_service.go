package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"match-predict-api/internal/models"
)

// mockPredictionService implements PredictionService with a fixed prediction list
type mockPredictionService struct {
	validator *validator.Validate
}

// NewMockPredictionService creates a prediction service that ignores its input
// and always answers with models.MockPredictions.
func NewMockPredictionService() (PredictionService, error) {
	v := models.NewValidator()
	if err := models.ValidatePredictions(v, models.MockPredictions()); err != nil {
		return nil, fmt.Errorf("invalid mock predictions: %w", err)
	}

	return &mockPredictionService{validator: v}, nil
}

// Predict returns the fixed predictions; input is not inspected
func (s *mockPredictionService) Predict(ctx context.Context, input any) ([]models.Prediction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return models.MockPredictions(), nil
}

// PredictBatch validates the batch and returns the fixed predictions for every frame
func (s *mockPredictionService) PredictBatch(ctx context.Context, req *models.BatchRequest) ([]models.FrameResult, error) {
	if req == nil {
		return nil, fmt.Errorf("batch request is required")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("batch validation failed: %w", err)
	}

	results := make([]models.FrameResult, 0, len(req.Frames))
	for _, frame := range req.Frames {
		predictions, err := s.Predict(ctx, frame)
		if err != nil {
			return nil, err
		}
		results = append(results, models.FrameResult{
			Timestamp:   frame.Timestamp,
			Predictions: predictions,
		})
	}

	return results, nil
}

// Status reports that the service serves mock data
func (s *mockPredictionService) Status() string {
	return models.MockStatusMessage
}

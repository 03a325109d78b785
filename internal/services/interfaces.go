package services

import (
	"context"

	"match-predict-api/internal/models"
)

// PredictionService defines the interface for producing action predictions.
// Implementations must not retain or mutate the returned slices between calls.
type PredictionService interface {
	// Predict returns the predictions for a single decoded request payload
	Predict(ctx context.Context, input any) ([]models.Prediction, error)

	// PredictBatch returns one result per frame, in request order
	PredictBatch(ctx context.Context, req *models.BatchRequest) ([]models.FrameResult, error)

	// Status describes the state of the underlying model
	Status() string
}

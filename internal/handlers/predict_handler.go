package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"match-predict-api/internal/config"
	"match-predict-api/internal/middleware"
	"match-predict-api/internal/models"
	"match-predict-api/internal/services"
	"match-predict-api/pkg/lambda"
)

const genericErrorMessage = "Internal server error"

// PredictHandler handles prediction-related HTTP requests
type PredictHandler struct {
	predictionService services.PredictionService
	cors              config.CORSConfig
	exposeErrors      bool
	logger            *logrus.Logger
}

// NewPredictHandler creates a new prediction handler
func NewPredictHandler(predictionService services.PredictionService, cfg *config.Config, logger *logrus.Logger) *PredictHandler {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &PredictHandler{
		predictionService: predictionService,
		cors:              cfg.CORS,
		exposeErrors:      cfg.Errors.ExposeDetails,
		logger:            logger,
	}
}

// @Summary Predict actions for a frame
// @Description Returns mock action predictions. The JSON body must be well formed but is otherwise ignored.
// @Tags predictions
// @Accept json
// @Produce json
// @Param payload body object true "Any JSON value"
// @Success 200 {object} models.PredictResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /predict [post]
func (h *PredictHandler) Predict(c *gin.Context) {
	resp := h.predict(c.Request.Context(), h.ginLogger(c), c.GetHeader("Content-Length"), c.Request.Body)
	writeResponse(c, resp)
}

// @Summary Analyze a batch of frames
// @Description Returns mock action predictions for up to 10 frames, in request order.
// @Tags predictions
// @Accept json
// @Produce json
// @Param batch body models.BatchRequest true "Frames to analyze"
// @Success 200 {object} models.BatchResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /analyze-batch [post]
func (h *PredictHandler) AnalyzeBatch(c *gin.Context) {
	resp := h.analyzeBatch(c.Request.Context(), h.ginLogger(c), c.GetHeader("Content-Length"), c.Request.Body)
	writeResponse(c, resp)
}

// @Summary CORS preflight
// @Tags predictions
// @Success 200
// @Router /predict [options]
func (h *PredictHandler) Preflight(c *gin.Context) {
	writeResponse(c, h.preflight())
}

// HandlePredict serves the predict endpoint for serverless functions
func (h *PredictHandler) HandlePredict(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	contentLength, _ := req.Header("Content-Length")
	return h.predict(ctx, h.lambdaLogger(ctx, req), contentLength, bytes.NewReader(req.Body)), nil
}

// HandleAnalyzeBatch serves the analyze-batch endpoint for serverless functions
func (h *PredictHandler) HandleAnalyzeBatch(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	contentLength, _ := req.Header("Content-Length")
	return h.analyzeBatch(ctx, h.lambdaLogger(ctx, req), contentLength, bytes.NewReader(req.Body)), nil
}

// HandlePreflight answers CORS preflight requests for serverless functions
func (h *PredictHandler) HandlePreflight(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	return h.preflight(), nil
}

func (h *PredictHandler) predict(ctx context.Context, log *logrus.Entry, contentLength string, body io.Reader) *lambda.Response {
	payload, _, err := decodeBody(contentLength, body)
	if err != nil {
		return h.failure(log, err)
	}

	predictions, err := h.predictionService.Predict(ctx, payload)
	if err != nil {
		return h.failure(log, err)
	}

	log.WithField("predictions", len(predictions)).Debug("Prediction served")

	return h.success(&models.PredictResponse{
		Success:     true,
		Predictions: predictions,
		Message:     h.predictionService.Status(),
	})
}

func (h *PredictHandler) analyzeBatch(ctx context.Context, log *logrus.Entry, contentLength string, body io.Reader) *lambda.Response {
	_, raw, err := decodeBody(contentLength, body)
	if err != nil {
		return h.failure(log, err)
	}

	var req models.BatchRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		// Well-formed JSON of the wrong shape, e.g. {"frames": "x"}
		return h.invalid(log, err)
	}

	results, err := h.predictionService.PredictBatch(ctx, &req)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return h.invalid(log, err)
		}
		return h.failure(log, err)
	}

	log.WithField("frames", len(results)).Debug("Batch analyzed")

	return h.success(&models.BatchResponse{
		Success: true,
		Results: results,
		Message: h.predictionService.Status(),
	})
}

func (h *PredictHandler) preflight() *lambda.Response {
	resp := lambda.NewResponse(http.StatusOK)
	resp.Headers["Access-Control-Allow-Origin"] = h.cors.AllowOrigin
	resp.Headers["Access-Control-Allow-Methods"] = h.cors.AllowMethods
	resp.Headers["Access-Control-Allow-Headers"] = h.cors.AllowHeaders
	return resp
}

func (h *PredictHandler) success(body any) *lambda.Response {
	resp := jsonResponse(http.StatusOK, body)
	resp.Headers["Access-Control-Allow-Origin"] = h.cors.AllowOrigin
	return resp
}

// failure converts a read, parse or service error into a 500 response
func (h *PredictHandler) failure(log *logrus.Entry, err error) *lambda.Response {
	log.WithError(err).Error("Prediction request failed")

	message := err.Error()
	if !h.exposeErrors {
		message = genericErrorMessage
	}

	resp := jsonResponse(http.StatusInternalServerError, models.NewErrorResponse(message))
	h.applyErrorCORS(resp)
	return resp
}

// invalid converts a batch shape or validation error into a 400 response
func (h *PredictHandler) invalid(log *logrus.Entry, err error) *lambda.Response {
	log.WithError(err).Warn("Batch request rejected")

	body := models.NewErrorResponse("Validation failed")
	body.ValidationErrors = models.FormatValidationErrors(err)

	resp := jsonResponse(http.StatusBadRequest, body)
	h.applyErrorCORS(resp)
	return resp
}

func (h *PredictHandler) applyErrorCORS(resp *lambda.Response) {
	if h.cors.OnErrors {
		resp.Headers["Access-Control-Allow-Origin"] = h.cors.AllowOrigin
	}
}

func (h *PredictHandler) ginLogger(c *gin.Context) *logrus.Entry {
	return h.logger.WithFields(logrus.Fields{
		"request_id": c.GetString(middleware.RequestIDKey),
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
	})
}

func (h *PredictHandler) lambdaLogger(ctx context.Context, req *lambda.Request) *logrus.Entry {
	fields := logrus.Fields{
		"method": req.Method,
		"path":   req.Path,
	}
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		fields["request_id"] = lc.AwsRequestID
	}
	return h.logger.WithFields(fields)
}

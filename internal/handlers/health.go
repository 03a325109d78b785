package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"match-predict-api/internal/config"
	"match-predict-api/pkg/lambda"
)

// ServiceName identifies this API in health responses
const ServiceName = "match-predict-api"

// Version of the API
const Version = "1.0.0"

// HealthResponse reports service liveness
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
	Mode    string `json:"mode"`
}

func healthResponse() *lambda.Response {
	return jsonResponse(http.StatusOK, &HealthResponse{
		Status:  "healthy",
		Service: ServiceName,
		Version: Version,
		Mode:    config.GetDeploymentMode(),
	})
}

// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func Health(c *gin.Context) {
	writeResponse(c, healthResponse())
}

// HandleHealth serves the health check for serverless functions
func HandleHealth(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	return healthResponse(), nil
}

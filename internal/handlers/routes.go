package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"match-predict-api/internal/config"
	"match-predict-api/internal/middleware"
	"match-predict-api/internal/services"
	"match-predict-api/pkg/lambda"
)

// Prediction routes are served both at the root, as the browser client calls
// them, and under /api, as Vercel mounts functions.
var (
	predictPaths      = []string{"/predict", "/api/predict"}
	analyzeBatchPaths = []string{"/analyze-batch", "/api/analyze-batch"}
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	PredictionService services.PredictionService
	Config            *config.Config
	Logger            *logrus.Logger
	EnableSwagger     bool
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, rc *RouterConfig) {
	predictHandler := NewPredictHandler(rc.PredictionService, rc.Config, rc.Logger)

	if rc.EnableSwagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	router.GET("/health", Health)

	for _, path := range predictPaths {
		router.POST(path, predictHandler.Predict)
		router.OPTIONS(path, predictHandler.Preflight)
	}

	for _, path := range analyzeBatchPaths {
		router.POST(path, predictHandler.AnalyzeBatch)
		router.OPTIONS(path, predictHandler.Preflight)
	}

	router.NoRoute(NotFound)
}

// SetupMiddleware configures global middleware
func SetupMiddleware(router *gin.Engine, cfg *config.Config, logger *logrus.Logger) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(cfg, logger))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.StructuredLogger(logger))
}

// NewLambdaRouter returns a handler that dispatches serverless requests
// to the same endpoints SetupRoutes registers on gin.
func NewLambdaRouter(rc *RouterConfig) lambda.HandlerFunc {
	predictHandler := NewPredictHandler(rc.PredictionService, rc.Config, rc.Logger)

	return func(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
		path := strings.TrimSuffix(req.Path, "/")

		switch {
		case req.Method == http.MethodGet && path == "/health":
			return HandleHealth(ctx, req)
		case req.Method == http.MethodPost && matchesAny(path, predictPaths):
			return predictHandler.HandlePredict(ctx, req)
		case req.Method == http.MethodPost && matchesAny(path, analyzeBatchPaths):
			return predictHandler.HandleAnalyzeBatch(ctx, req)
		case req.Method == http.MethodOptions && (matchesAny(path, predictPaths) || matchesAny(path, analyzeBatchPaths)):
			return predictHandler.HandlePreflight(ctx, req)
		default:
			return HandleNotFound(ctx, req)
		}
	}
}

func matchesAny(path string, candidates []string) bool {
	for _, candidate := range candidates {
		if path == candidate {
			return true
		}
	}
	return false
}

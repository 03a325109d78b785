package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"match-predict-api/internal/config"
	"match-predict-api/internal/models"
)

// Recovery turns panics into the standard JSON failure body with status 500
func Recovery(cfg *config.Config, logger *logrus.Logger) gin.HandlerFunc {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return func(c *gin.Context) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}

			logger.WithFields(logrus.Fields{
				"request_id":  c.GetString(RequestIDKey),
				"method":      c.Request.Method,
				"path":        c.Request.URL.Path,
				"panic":       fmt.Sprintf("%v", recovered),
				"stack_trace": string(debug.Stack()),
			}).Error("Recovered from panic")

			message := "Internal server error"
			if cfg.Errors.ExposeDetails {
				message = fmt.Sprintf("%v", recovered)
			}

			body, err := json.Marshal(models.NewErrorResponse(message))
			if err != nil {
				body = []byte(`{"success":false,"error":"Internal server error"}`)
			}

			if cfg.CORS.OnErrors {
				c.Header("Access-Control-Allow-Origin", cfg.CORS.AllowOrigin)
			}
			c.Abort()
			c.Data(http.StatusInternalServerError, "application/json", body)
		}()

		c.Next()
	}
}

// SecurityHeaders adds security headers to responses
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		c.Next()
	}
}

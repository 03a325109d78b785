package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"match-predict-api/internal/models"
	"match-predict-api/pkg/lambda"
)

const contentTypeJSON = "application/json"

// fallbackErrorBody is written when a response body cannot be encoded
var fallbackErrorBody = []byte(`{"success":false,"error":"Internal server error"}`)

// jsonResponse encodes body as a JSON response with the given status
func jsonResponse(statusCode int, body any) *lambda.Response {
	data, err := json.Marshal(body)
	if err != nil {
		statusCode = http.StatusInternalServerError
		data = fallbackErrorBody
	}

	resp := lambda.NewResponse(statusCode)
	resp.Headers["Content-Type"] = contentTypeJSON
	resp.Body = data
	return resp
}

// writeResponse copies a framework-agnostic response onto a gin context
func writeResponse(c *gin.Context, resp *lambda.Response) {
	for key, value := range resp.Headers {
		if key == "Content-Type" {
			continue
		}
		c.Header(key, value)
	}

	if len(resp.Body) == 0 {
		c.Status(resp.StatusCode)
		c.Writer.WriteHeaderNow()
		return
	}

	c.Data(resp.StatusCode, resp.Headers["Content-Type"], resp.Body)
}

func notFoundResponse() *lambda.Response {
	return jsonResponse(http.StatusNotFound, models.NewErrorResponse("Not found"))
}

// NotFound answers requests for unknown routes
func NotFound(c *gin.Context) {
	writeResponse(c, notFoundResponse())
}

// HandleNotFound answers requests for unknown routes in serverless functions
func HandleNotFound(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	return notFoundResponse(), nil
}

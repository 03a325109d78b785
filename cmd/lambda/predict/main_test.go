package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"match-predict-api/internal/models"
)

func init() {
	container.Logger.SetOutput(io.Discard)
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name       string
		event      events.APIGatewayProxyRequest
		wantStatus int
	}{
		{
			name: "predict",
			event: events.APIGatewayProxyRequest{
				HTTPMethod: http.MethodPost,
				Path:       "/predict",
				Headers:    map[string]string{"content-length": "2"},
				Body:       "{}",
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "base64 predict",
			event: events.APIGatewayProxyRequest{
				HTTPMethod:      http.MethodPost,
				Path:            "/api/predict",
				Headers:         map[string]string{"Content-Length": "2"},
				Body:            "e30=",
				IsBase64Encoded: true,
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "predict without content length",
			event: events.APIGatewayProxyRequest{
				HTTPMethod: http.MethodPost,
				Path:       "/predict",
				Body:       "{}",
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "batch with numeric timestamps",
			event: events.APIGatewayProxyRequest{
				HTTPMethod: http.MethodPost,
				Path:       "/api/analyze-batch",
				Body:       `{"frames":[{"image":"abc","timestamp":0},{"image":"def","timestamp":2}]}`,
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "malformed body",
			event: events.APIGatewayProxyRequest{
				HTTPMethod: http.MethodPost,
				Path:       "/predict",
				Headers:    map[string]string{"Content-Length": "1"},
				Body:       "{",
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name: "undecodable base64",
			event: events.APIGatewayProxyRequest{
				HTTPMethod:      http.MethodPost,
				Path:            "/predict",
				Body:            "%%%",
				IsBase64Encoded: true,
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name: "preflight",
			event: events.APIGatewayProxyRequest{
				HTTPMethod: http.MethodOptions,
				Path:       "/predict",
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := handler(context.Background(), tt.event)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode, resp.Body)

			if resp.StatusCode == http.StatusInternalServerError {
				var body models.ErrorResponse
				require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
				assert.False(t, body.Success)
			}
		})
	}
}

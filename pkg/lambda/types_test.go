package lambda

import (
	"encoding/base64"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestHeader(t *testing.T) {
	req := &Request{Headers: map[string]string{
		"content-length": "2",
		"Content-Type":   "application/json",
		"X-CUSTOM":       "yes",
	}}

	value, ok := req.Header("Content-Length")
	require.True(t, ok)
	assert.Equal(t, "2", value)

	value, ok = req.Header("content-type")
	require.True(t, ok)
	assert.Equal(t, "application/json", value)

	value, ok = req.Header("x-custom")
	require.True(t, ok)
	assert.Equal(t, "yes", value)

	_, ok = req.Header("Authorization")
	assert.False(t, ok)

	_, ok = (&Request{}).Header("Content-Length")
	assert.False(t, ok)
}

func TestFromAPIGateway(t *testing.T) {
	event := events.APIGatewayProxyRequest{
		HTTPMethod:            "POST",
		Path:                  "/api/predict",
		Headers:               map[string]string{"content-length": "2"},
		QueryStringParameters: map[string]string{"debug": "1"},
		PathParameters:        map[string]string{"proxy": "predict"},
		Body:                  "{}",
	}

	req, err := FromAPIGateway(event)
	require.NoError(t, err)
	assert.Equal(t, "POST", req.Method)
	assert.Equal(t, "/api/predict", req.Path)
	assert.Equal(t, []byte("{}"), req.Body)
	assert.Equal(t, "1", req.QueryParams["debug"])
	assert.Equal(t, "predict", req.PathParams["proxy"])
}

func TestFromAPIGateway_Base64Body(t *testing.T) {
	event := events.APIGatewayProxyRequest{
		HTTPMethod:      "POST",
		Path:            "/predict",
		Body:            base64.StdEncoding.EncodeToString([]byte(`{"a":1}`)),
		IsBase64Encoded: true,
	}

	req, err := FromAPIGateway(event)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(req.Body))

	event.Body = "%%%not-base64"
	_, err = FromAPIGateway(event)
	assert.Error(t, err)
}

func TestFromAPIGateway_ContentLength(t *testing.T) {
	tests := []struct {
		name  string
		event events.APIGatewayProxyRequest
		want  string
	}{
		{
			name:  "missing header uses body length",
			event: events.APIGatewayProxyRequest{Body: `{"a":1}`},
			want:  "7",
		},
		{
			name: "missing header uses decoded body length",
			event: events.APIGatewayProxyRequest{
				Body:            base64.StdEncoding.EncodeToString([]byte("{}")),
				IsBase64Encoded: true,
			},
			want: "2",
		},
		{
			name:  "empty body",
			event: events.APIGatewayProxyRequest{HTTPMethod: "OPTIONS"},
			want:  "0",
		},
		{
			name: "client header is kept",
			event: events.APIGatewayProxyRequest{
				Headers: map[string]string{"content-length": "99"},
				Body:    "{}",
			},
			want: "99",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := FromAPIGateway(tt.event)
			require.NoError(t, err)

			value, ok := req.Header("Content-Length")
			require.True(t, ok)
			assert.Equal(t, tt.want, value)
		})
	}
}

func TestFromAPIGateway_DoesNotMutateEvent(t *testing.T) {
	headers := map[string]string{"Origin": "https://a.example"}
	_, err := FromAPIGateway(events.APIGatewayProxyRequest{Headers: headers, Body: "{}"})
	require.NoError(t, err)
	assert.Len(t, headers, 1)
}

func TestFromAPIGateway_MultiValueHeaders(t *testing.T) {
	event := events.APIGatewayProxyRequest{
		HTTPMethod:        "OPTIONS",
		Path:              "/predict",
		MultiValueHeaders: map[string][]string{"Origin": {"https://a.example", "https://b.example"}, "Empty": {}},
	}

	req, err := FromAPIGateway(event)
	require.NoError(t, err)
	origin, ok := req.Header("origin")
	require.True(t, ok)
	assert.Equal(t, "https://a.example", origin)
	_, ok = req.Header("Empty")
	assert.False(t, ok)
}

func TestResponseToAPIGateway(t *testing.T) {
	resp := NewResponse(200)
	resp.Headers["Content-Type"] = "application/json"
	resp.Body = []byte(`{"success":true}`)

	out := resp.ToAPIGateway()
	assert.Equal(t, 200, out.StatusCode)
	assert.Equal(t, "application/json", out.Headers["Content-Type"])
	assert.Equal(t, `{"success":true}`, out.Body)
}

package lambda

import (
	"context"
	"net/textproto"
	"strings"
)

// Request represents a generic HTTP request for serverless functions
type Request struct {
	Method      string            `json:"method"`
	Path        string            `json:"path"`
	Headers     map[string]string `json:"headers"`
	QueryParams map[string]string `json:"query_params"`
	Body        []byte            `json:"body"`
	PathParams  map[string]string `json:"path_params"`
}

// Header returns the first header value matching name, ignoring case.
// API Gateway forwards header names exactly as the client sent them.
func (r *Request) Header(name string) (string, bool) {
	if value, ok := r.Headers[name]; ok {
		return value, true
	}
	if value, ok := r.Headers[textproto.CanonicalMIMEHeaderKey(name)]; ok {
		return value, true
	}
	for key, value := range r.Headers {
		if strings.EqualFold(key, name) {
			return value, true
		}
	}
	return "", false
}

// Response represents a generic HTTP response for serverless functions
type Response struct {
	StatusCode int               `json:"status_code"`
	Headers    map[string]string `json:"headers"`
	Body       []byte            `json:"body"`
}

// NewResponse creates a response with an initialized header map
func NewResponse(statusCode int) *Response {
	return &Response{
		StatusCode: statusCode,
		Headers:    map[string]string{},
	}
}

// HandlerFunc is a framework-agnostic handler interface
type HandlerFunc func(ctx context.Context, req *Request) (*Response, error)

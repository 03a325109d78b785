package lambda

import (
	"encoding/base64"
	"fmt"
	"strconv"

	"github.com/aws/aws-lambda-go/events"
)

// FromAPIGateway converts an API Gateway proxy event to a generic request.
// The event body is always complete, so a missing Content-Length is filled
// in from the decoded body length.
func FromAPIGateway(event events.APIGatewayProxyRequest) (*Request, error) {
	headers := make(map[string]string, len(event.Headers)+1)
	if len(event.Headers) > 0 {
		for key, value := range event.Headers {
			headers[key] = value
		}
	} else {
		for key, values := range event.MultiValueHeaders {
			if len(values) > 0 {
				headers[key] = values[0]
			}
		}
	}

	body := []byte(event.Body)
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to decode base64 body: %w", err)
		}
		body = decoded
	}

	req := &Request{
		Method:      event.HTTPMethod,
		Path:        event.Path,
		Headers:     headers,
		QueryParams: event.QueryStringParameters,
		Body:        body,
		PathParams:  event.PathParameters,
	}
	if _, ok := req.Header("Content-Length"); !ok {
		req.Headers["Content-Length"] = strconv.Itoa(len(body))
	}

	return req, nil
}

// ToAPIGateway converts a generic response to an API Gateway proxy response
func (r *Response) ToAPIGateway() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: r.StatusCode,
		Headers:    r.Headers,
		Body:       string(r.Body),
	}
}

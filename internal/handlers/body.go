package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	// ErrMissingContentLength is returned when the request carries no Content-Length header
	ErrMissingContentLength = errors.New("missing Content-Length header")

	// ErrInvalidUTF8 is returned when the request body is not valid UTF-8 text
	ErrInvalidUTF8 = errors.New("request body is not valid UTF-8")
)

// BodyError reports a failure to read or parse a request body.
// Every cause is surfaced to clients as a 500.
type BodyError struct {
	Err error
}

func (e *BodyError) Error() string {
	return e.Err.Error()
}

func (e *BodyError) Unwrap() error {
	return e.Err
}

// decodeBody reads exactly contentLength bytes from body and parses them as JSON.
// An empty contentLength means the header was absent. The decoded value is
// returned for callers that need it; the predict endpoint discards it.
func decodeBody(contentLength string, body io.Reader) (any, []byte, error) {
	raw, err := readBody(contentLength, body)
	if err != nil {
		return nil, nil, err
	}

	if !utf8.Valid(raw) {
		return nil, nil, &BodyError{Err: ErrInvalidUTF8}
	}

	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, nil, &BodyError{Err: fmt.Errorf("invalid JSON body: %w", err)}
	}

	return payload, raw, nil
}

func readBody(contentLength string, body io.Reader) ([]byte, error) {
	contentLength = strings.TrimSpace(contentLength)
	if contentLength == "" {
		return nil, &BodyError{Err: ErrMissingContentLength}
	}

	n, err := strconv.ParseInt(contentLength, 10, 64)
	if err != nil || n < 0 {
		return nil, &BodyError{Err: fmt.Errorf("invalid Content-Length %q", contentLength)}
	}

	if n == 0 || body == nil {
		if n > 0 {
			return nil, &BodyError{Err: fmt.Errorf("request body is empty, expected %d bytes", n)}
		}
		return []byte{}, nil
	}

	raw, err := io.ReadAll(io.LimitReader(body, n))
	if err != nil {
		return nil, &BodyError{Err: fmt.Errorf("failed to read request body: %w", err)}
	}
	if int64(len(raw)) < n {
		return nil, &BodyError{Err: fmt.Errorf("request body truncated: read %d of %d bytes", len(raw), n)}
	}

	return raw, nil
}

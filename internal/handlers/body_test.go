package handlers

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBody(t *testing.T) {
	tests := []struct {
		name          string
		contentLength string
		body          string
		want          any
		wantErr       string
	}{
		{name: "empty object", contentLength: "2", body: "{}", want: map[string]any{}},
		{name: "array", contentLength: "7", body: "[1,2,3]", want: []any{1.0, 2.0, 3.0}},
		{name: "scalar", contentLength: "4", body: "true", want: true},
		{name: "padded header", contentLength: " 2 ", body: "{}", want: map[string]any{}},
		{name: "extra bytes past length are ignored", contentLength: "2", body: "{}garbage", want: map[string]any{}},
		{name: "utf-8 text", contentLength: "23", body: `{"a":"Pérdida balón"}`, want: map[string]any{"a": "Pérdida balón"}},
		{name: "missing header", contentLength: "", body: "{}", wantErr: "missing Content-Length header"},
		{name: "non numeric header", contentLength: "abc", body: "{}", wantErr: `invalid Content-Length "abc"`},
		{name: "negative header", contentLength: "-1", body: "{}", wantErr: `invalid Content-Length "-1"`},
		{name: "zero length", contentLength: "0", body: "", wantErr: "invalid JSON body: unexpected end of JSON input"},
		{name: "short body", contentLength: "10", body: "{}", wantErr: "request body truncated: read 2 of 10 bytes"},
		{name: "malformed json", contentLength: "5", body: "{oops", wantErr: "invalid JSON body"},
		{name: "json cut by length", contentLength: "5", body: `{"a":1}`, wantErr: "invalid JSON body"},
		{name: "invalid utf-8", contentLength: "4", body: "\"\xff\xfe\"", wantErr: "request body is not valid UTF-8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, raw, err := decodeBody(tt.contentLength, strings.NewReader(tt.body))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				var bodyErr *BodyError
				assert.True(t, errors.As(err, &bodyErr), "error should be a *BodyError")
				assert.Nil(t, raw)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, payload)
		})
	}
}

func TestDecodeBody_SentinelErrors(t *testing.T) {
	_, _, err := decodeBody("", strings.NewReader("{}"))
	assert.ErrorIs(t, err, ErrMissingContentLength)

	_, _, err = decodeBody("1", strings.NewReader("\xff"))
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestDecodeBody_NilBody(t *testing.T) {
	_, _, err := decodeBody("0", nil)
	assert.Error(t, err)

	_, _, err = decodeBody("2", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request body is empty")
}

func TestDecodeBody_ReadFailure(t *testing.T) {
	_, _, err := decodeBody("2", iotest.ErrReader(errors.New("connection reset")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read request body: connection reset")
}

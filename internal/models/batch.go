package models

import (
	"bytes"
	"encoding/json"
	"reflect"
)

// MaxBatchFrames is the largest number of frames accepted in one batch.
// Struct tags cannot reference constants; keep max= on BatchRequest.Frames in sync.
const MaxBatchFrames = 10

var nullJSON = []byte("null")

// FrameTimestamp is a frame position as the client sent it: seconds as a
// JSON number or a label as a JSON string. It is echoed back unchanged.
// A missing or null timestamp decodes to nil.
type FrameTimestamp []byte

// UnmarshalJSON accepts a JSON string or number
func (t *FrameTimestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, nullJSON) {
		*t = nil
		return nil
	}

	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	switch value.(type) {
	case string, float64:
		*t = append(FrameTimestamp(nil), data...)
		return nil
	default:
		return &json.UnmarshalTypeError{
			Value: jsonKind(value),
			Type:  reflect.TypeOf(*t),
		}
	}
}

// MarshalJSON writes the timestamp in its original form
func (t FrameTimestamp) MarshalJSON() ([]byte, error) {
	if len(t) == 0 {
		return nullJSON, nil
	}
	return t, nil
}

func (t FrameTimestamp) String() string {
	return string(t)
}

func jsonKind(value any) string {
	switch value.(type) {
	case bool:
		return "bool"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return "value"
	}
}

// Frame is a single captured video frame submitted for analysis.
// Image holds base64 JPEG data and is not inspected.
type Frame struct {
	Image     string         `json:"image"`
	Timestamp FrameTimestamp `json:"timestamp" validate:"required" swaggertype:"primitive,number"`
}

// BatchRequest is the body of the analyze-batch endpoint
type BatchRequest struct {
	Frames []Frame `json:"frames" validate:"required,min=1,max=10,dive"`
}

// FrameResult holds the predictions produced for one frame
type FrameResult struct {
	Timestamp   FrameTimestamp `json:"timestamp" swaggertype:"primitive,number"`
	Predictions []Prediction   `json:"predictions"`
}

// BatchResponse is the success body of the analyze-batch endpoint
type BatchResponse struct {
	Success bool          `json:"success"`
	Results []FrameResult `json:"results"`
	Message string        `json:"message"`
}

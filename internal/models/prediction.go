package models

// Action labels the mock model can emit
const (
	ActionOffensiveOneOnOne = "1 vs 1 ofensivo"
	ActionShortPass         = "Pase corto ofensivo"
	ActionBallLoss          = "Pérdida de balón"
)

// MockStatusMessage is reported alongside every mock prediction response
const MockStatusMessage = "Modelo funcionando (mock data por ahora)"

// KnownActions is the closed set of action labels, in model output order
var KnownActions = []string{
	ActionOffensiveOneOnOne,
	ActionShortPass,
	ActionBallLoss,
}

// Prediction represents a single labeled action with its probability.
// Probabilities are not normalized across a prediction list.
type Prediction struct {
	Action      string  `json:"action" validate:"required,known_action"`
	Probability float64 `json:"probability" validate:"min=0,max=1"`
}

// MockPredictions returns a fresh copy of the fixed prediction list
func MockPredictions() []Prediction {
	return []Prediction{
		{Action: ActionOffensiveOneOnOne, Probability: 0.65},
		{Action: ActionShortPass, Probability: 0.20},
		{Action: ActionBallLoss, Probability: 0.08},
	}
}

// IsKnownAction reports whether action belongs to the closed label set
func IsKnownAction(action string) bool {
	for _, known := range KnownActions {
		if action == known {
			return true
		}
	}
	return false
}

// PredictResponse is the success body of the predict endpoint
type PredictResponse struct {
	Success     bool         `json:"success"`
	Predictions []Prediction `json:"predictions"`
	Message     string       `json:"message"`
}

// ErrorResponse is the failure body shared by all endpoints
type ErrorResponse struct {
	Success          bool              `json:"success"`
	Error            string            `json:"error"`
	ValidationErrors []ValidationError `json:"validation_errors,omitempty"`
}

// NewErrorResponse creates a failure body carrying msg
func NewErrorResponse(msg string) *ErrorResponse {
	return &ErrorResponse{Success: false, Error: msg}
}

package calculator

import "context"

// Result kinds.
const (
	KindValue = "value"
	KindError = "error"
)

// CalculateRequest is the request for an evaluation. A and B are the raw
// input texts; parsing happens in the service.
type CalculateRequest struct {
	Operation string `json:"operation"`
	A         string `json:"a"`
	B         string `json:"b"`
}

// CalculateResponse is the response from an evaluation.
// Result is nil for errors and for values JSON cannot carry (±Inf, NaN).
type CalculateResponse struct {
	Operation string   `json:"operation"`
	Kind      string   `json:"kind"`
	Result    *float64 `json:"result,omitempty"`
	Error     string   `json:"error,omitempty"`
	Display   string   `json:"display"`
}

// CalculatorPort defines the evaluator operations available to other modules.
type CalculatorPort interface {
	Calculate(ctx context.Context, req *CalculateRequest) (*CalculateResponse, error)
}

package api

// CalculateRequest is the HTTP request for an evaluation.
type CalculateRequest struct {
	Operation string `json:"operation"`
	A         string `json:"a"`
	B         string `json:"b"`
}

// CalculateResponse is the HTTP response for an evaluation. Kind tells the
// client whether to render a value or an error message.
type CalculateResponse struct {
	Operation string   `json:"operation"`
	Kind      string   `json:"kind"`
	Result    *float64 `json:"result,omitempty"`
	Error     string   `json:"error,omitempty"`
	Display   string   `json:"display"`
}

// OperationsResponse lists the selectable operations.
type OperationsResponse struct {
	Operations []string `json:"operations"`
}

// GreetRequest is the HTTP request for a personal greeting.
type GreetRequest struct {
	Name string `json:"name"`
}

// GreetResponse carries the greeting text.
type GreetResponse struct {
	Message string `json:"message"`
}

// SessionResponse is the HTTP response for a tip session.
type SessionResponse struct {
	SessionID   string   `json:"session_id"`
	StarterTips []string `json:"starter_tips,omitempty"`
	Shown       []string `json:"shown"`
	Total       int      `json:"total"`
	Remaining   int      `json:"remaining"`
	Exhausted   bool     `json:"exhausted"`
	ButtonText  string   `json:"button_text"`
}

// NextTipResponse is the HTTP response for a tip draw.
type NextTipResponse struct {
	SessionID  string `json:"session_id"`
	Tip        string `json:"tip,omitempty"`
	Remaining  int    `json:"remaining"`
	Exhausted  bool   `json:"exhausted"`
	ButtonText string `json:"button_text"`
}

// HealthResponse is the HTTP response for health check.
type HealthResponse struct {
	Status  string         `json:"status"`
	Details map[string]any `json:"details,omitempty"`
}

// ErrorResponse is the HTTP response for errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

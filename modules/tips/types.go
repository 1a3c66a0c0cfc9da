package tips

import "context"

// CreateSessionRequest is the request to open a tip session.
type CreateSessionRequest struct{}

// CreateSessionResponse describes a freshly opened session.
type CreateSessionResponse struct {
	SessionID   string   `json:"session_id"`
	Total       int      `json:"total"`
	Remaining   int      `json:"remaining"`
	StarterTips []string `json:"starter_tips"`
}

// NextTipRequest is the request to draw the next tip of a session.
type NextTipRequest struct {
	SessionID string `json:"session_id"`
}

// NextTipResponse is the outcome of a draw.
type NextTipResponse struct {
	SessionID string `json:"session_id"`
	Found     bool   `json:"found"`
	Tip       string `json:"tip,omitempty"`
	Remaining int    `json:"remaining"`
	Exhausted bool   `json:"exhausted"`
}

// GetSessionRequest is the request to inspect a session.
type GetSessionRequest struct {
	SessionID string `json:"session_id"`
}

// SessionResponse is the current state of a session.
type SessionResponse struct {
	SessionID string   `json:"session_id"`
	Found     bool     `json:"found"`
	Shown     []string `json:"shown"`
	Total     int      `json:"total"`
	Remaining int      `json:"remaining"`
	Exhausted bool     `json:"exhausted"`
}

// TipPort defines the tip session operations available to other modules.
type TipPort interface {
	CreateSession(ctx context.Context) (*CreateSessionResponse, error)
	NextTip(ctx context.Context, sessionID string) (*NextTipResponse, error)
	GetSession(ctx context.Context, sessionID string) (*SessionResponse, error)
}

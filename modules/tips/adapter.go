package tips

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// tipAdapter implements TipPort over the service container.
type tipAdapter struct {
	container mono.ServiceContainer
}

// NewTipAdapter creates a new adapter for tip services.
// container is the ServiceContainer received via SetDependencyServiceContainer.
func NewTipAdapter(container mono.ServiceContainer) TipPort {
	if container == nil {
		panic("tip adapter requires non-nil ServiceContainer")
	}
	return &tipAdapter{container: container}
}

// CreateSession opens a session via the create-session service.
func (a *tipAdapter) CreateSession(ctx context.Context) (*CreateSessionResponse, error) {
	req := CreateSessionRequest{}
	var resp CreateSessionResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"create-session",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("create-session service call failed: %w", err)
	}
	return &resp, nil
}

// NextTip draws the next tip via the next-tip service.
func (a *tipAdapter) NextTip(ctx context.Context, sessionID string) (*NextTipResponse, error) {
	req := NextTipRequest{SessionID: sessionID}
	var resp NextTipResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"next-tip",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("next-tip service call failed: %w", err)
	}
	return &resp, nil
}

// GetSession fetches session state via the get-session service.
func (a *tipAdapter) GetSession(ctx context.Context, sessionID string) (*SessionResponse, error) {
	req := GetSessionRequest{SessionID: sessionID}
	var resp SessionResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"get-session",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("get-session service call failed: %w", err)
	}
	return &resp, nil
}

package tips

import (
	"context"
	"errors"
	"time"

	"github.com/example/interactive-basics-demo/domain/tip"
	"github.com/example/interactive-basics-demo/events"
	"github.com/go-monolith/mono"
)

// createSession handles the tips.create-session service request.
func (m *TipsModule) createSession(_ context.Context, _ CreateSessionRequest, _ *mono.Msg) (CreateSessionResponse, error) {
	snap := m.repo.create()
	m.logger.Info("Tip session created", "session_id", snap.ID, "total", snap.Total)

	return CreateSessionResponse{
		SessionID:   snap.ID,
		Total:       snap.Total,
		Remaining:   snap.Remaining,
		StarterTips: tip.StarterTips(),
	}, nil
}

// nextTip handles the tips.next-tip service request.
// Unknown sessions are reported via Found=false rather than a Go error.
func (m *TipsModule) nextTip(_ context.Context, req NextTipRequest, _ *mono.Msg) (NextTipResponse, error) {
	res, err := m.repo.draw(req.SessionID)
	if errors.Is(err, errSessionNotFound) {
		m.logger.Warn("Tip requested for unknown session", "session_id", req.SessionID)
		return NextTipResponse{SessionID: req.SessionID}, nil
	}
	if err != nil {
		return NextTipResponse{}, err
	}

	resp := NextTipResponse{
		SessionID: req.SessionID,
		Found:     true,
		Tip:       res.Tip,
		Remaining: res.Remaining,
		Exhausted: res.Exhausted,
	}
	if res.Exhausted {
		m.logger.Debug("Tip session already exhausted", "session_id", req.SessionID)
		return resp, nil
	}

	m.logger.Info("Added tip", "session_id", req.SessionID, "tip", res.Tip, "remaining", res.Remaining)
	m.publishShown(req.SessionID, res)
	return resp, nil
}

// getSession handles the tips.get-session service request.
func (m *TipsModule) getSession(_ context.Context, req GetSessionRequest, _ *mono.Msg) (SessionResponse, error) {
	snap, err := m.repo.get(req.SessionID)
	if errors.Is(err, errSessionNotFound) {
		return SessionResponse{SessionID: req.SessionID, Shown: []string{}}, nil
	}
	if err != nil {
		return SessionResponse{}, err
	}

	return SessionResponse{
		SessionID: snap.ID,
		Found:     true,
		Shown:     snap.Shown,
		Total:     snap.Total,
		Remaining: snap.Remaining,
		Exhausted: snap.Exhausted,
	}, nil
}

// publishShown emits TipShown, plus TipsExhausted on the final draw.
// Publishing is best-effort.
func (m *TipsModule) publishShown(sessionID string, res drawResult) {
	if m.eventBus == nil {
		return
	}

	now := time.Now()
	shown := events.TipShownEvent{
		SessionID: sessionID,
		Tip:       res.Tip,
		Remaining: res.Remaining,
		ShownAt:   now,
	}
	if err := events.TipShownV1.Publish(m.eventBus, shown, nil); err != nil {
		m.logger.Warn("Failed to publish TipShown event", "session_id", sessionID, "error", err)
	}

	if !res.justExhausted {
		return
	}
	exhausted := events.TipsExhaustedEvent{
		SessionID:   sessionID,
		Total:       m.catalog.Len(),
		ExhaustedAt: now,
	}
	if err := events.TipsExhaustedV1.Publish(m.eventBus, exhausted, nil); err != nil {
		m.logger.Warn("Failed to publish TipsExhausted event", "session_id", sessionID, "error", err)
	}
}

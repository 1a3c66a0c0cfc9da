package console

import (
	"context"
	"fmt"
	"time"

	"github.com/example/interactive-basics-demo/events"
	"github.com/go-monolith/mono"
)

// Entry kinds.
const (
	KindCalculation   = "calculation"
	KindTipShown      = "tip_shown"
	KindTipsExhausted = "tips_exhausted"
)

// Entry is one line of console output.
type Entry struct {
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func (m *ConsoleModule) handleCalculation(_ context.Context, event events.CalculationPerformedEvent, _ *mono.Msg) error {
	m.logger.Info("Calculating",
		"a", event.A, "operation", event.Operation, "b", event.B, "kind", event.Kind)
	m.record(KindCalculation, event.PerformedAt,
		fmt.Sprintf("Calculating: %s %s %s => %s", event.A, event.Operation, event.B, event.Display))
	return nil
}

func (m *ConsoleModule) handleTipShown(_ context.Context, event events.TipShownEvent, _ *mono.Msg) error {
	m.logger.Info("Added tip", "session_id", event.SessionID, "remaining", event.Remaining)
	m.record(KindTipShown, event.ShownAt,
		fmt.Sprintf("Added tip: %s (%d left)", event.Tip, event.Remaining))
	return nil
}

func (m *ConsoleModule) handleTipsExhausted(_ context.Context, event events.TipsExhaustedEvent, _ *mono.Msg) error {
	m.logger.Info("All tips added", "session_id", event.SessionID, "total", event.Total)
	m.record(KindTipsExhausted, event.ExhaustedAt,
		fmt.Sprintf("All %d tips added for session %s", event.Total, event.SessionID))
	return nil
}

func (m *ConsoleModule) record(kind string, at time.Time, message string) {
	if at.IsZero() {
		at = time.Now()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = append(m.entries, Entry{
		Kind:      kind,
		Message:   message,
		Timestamp: at,
	})
	if over := len(m.entries) - maxEntries; over > 0 {
		m.entries = append(m.entries[:0:0], m.entries[over:]...)
	}
}

// Entries returns a copy of the console output, oldest first.
func (m *ConsoleModule) Entries() []Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]Entry, len(m.entries))
	copy(result, m.entries)
	return result
}

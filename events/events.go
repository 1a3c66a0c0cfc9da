package events

import (
	"time"

	"github.com/go-monolith/mono/pkg/helper"
)

// CalculationPerformedEvent is emitted after every evaluation, successful or not.
type CalculationPerformedEvent struct {
	Operation   string    `json:"operation"`
	A           string    `json:"a"`
	B           string    `json:"b"`
	Kind        string    `json:"kind"`
	Display     string    `json:"display"`
	PerformedAt time.Time `json:"performed_at"`
}

// CalculationPerformedV1 is the typed event definition for evaluations.
// Subject: events.calculator.v1.calculation-performed
var CalculationPerformedV1 = helper.EventDefinition[CalculationPerformedEvent](
	"calculator", "CalculationPerformed", "v1",
)

// TipShownEvent is emitted when a session draws a new tip.
type TipShownEvent struct {
	SessionID string    `json:"session_id"`
	Tip       string    `json:"tip"`
	Remaining int       `json:"remaining"`
	ShownAt   time.Time `json:"shown_at"`
}

// TipShownV1 is the typed event definition for tip draws.
// Subject: events.tips.v1.tip-shown
var TipShownV1 = helper.EventDefinition[TipShownEvent](
	"tips", "TipShown", "v1",
)

// TipsExhaustedEvent is emitted once, when a session has seen every tip.
type TipsExhaustedEvent struct {
	SessionID   string    `json:"session_id"`
	Total       int       `json:"total"`
	ExhaustedAt time.Time `json:"exhausted_at"`
}

// TipsExhaustedV1 is the typed event definition for exhausted sessions.
// Subject: events.tips.v1.tips-exhausted
var TipsExhaustedV1 = helper.EventDefinition[TipsExhaustedEvent](
	"tips", "TipsExhausted", "v1",
)

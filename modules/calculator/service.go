package calculator

import (
	"context"
	"log"
	gomath "math"
	"time"

	domain "github.com/example/interactive-basics-demo/domain/calculator"
	"github.com/example/interactive-basics-demo/events"
	"github.com/go-monolith/mono"
)

// calculate handles the calculator.calculate service request.
func (m *CalculatorModule) calculate(_ context.Context, req CalculateRequest, _ *mono.Msg) (CalculateResponse, error) {
	result := domain.Evaluate(domain.Operation(req.Operation), req.A, req.B)
	resp := toResponse(req.Operation, result)

	if m.eventBus != nil {
		event := events.CalculationPerformedEvent{
			Operation:   req.Operation,
			A:           req.A,
			B:           req.B,
			Kind:        resp.Kind,
			Display:     resp.Display,
			PerformedAt: time.Now(),
		}
		if err := events.CalculationPerformedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[calculator] Warning: failed to publish CalculationPerformed event: %v", err)
		}
	}

	// Domain errors travel in the response, not as Go errors
	return resp, nil
}

func toResponse(op string, result domain.Result) CalculateResponse {
	resp := CalculateResponse{
		Operation: op,
		Display:   result.Display(),
	}
	if result.IsError() {
		resp.Kind = KindError
		resp.Error = result.Message
		return resp
	}

	resp.Kind = KindValue
	if !gomath.IsInf(result.Value, 0) && !gomath.IsNaN(result.Value) {
		v := result.Value
		resp.Result = &v
	}
	return resp
}

package calculator

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/example/interactive-basics-demo/events"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// CalculatorModule provides the arithmetic evaluator via RequestReplyService.
type CalculatorModule struct {
	eventBus mono.EventBus
}

// Compile-time interface checks.
var (
	_ mono.Module                = (*CalculatorModule)(nil)
	_ mono.ServiceProviderModule = (*CalculatorModule)(nil)
	_ mono.EventEmitterModule    = (*CalculatorModule)(nil)
)

// NewModule creates a new CalculatorModule.
func NewModule() *CalculatorModule {
	return &CalculatorModule{}
}

// Name returns the module name.
func (m *CalculatorModule) Name() string {
	return "calculator"
}

// SetEventBus receives the event bus used to publish evaluations.
func (m *CalculatorModule) SetEventBus(bus mono.EventBus) {
	m.eventBus = bus
}

// EmitEvents declares the events this module publishes.
func (m *CalculatorModule) EmitEvents() []mono.BaseEventDefinition {
	return []mono.BaseEventDefinition{
		events.CalculationPerformedV1.ToBase(),
	}
}

// RegisterServices registers request-reply services in the service container.
// The framework prefixes service names with "services.<module>.",
// so "calculate" becomes "services.calculator.calculate" in the NATS subject.
func (m *CalculatorModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "calculate", json.Unmarshal, json.Marshal, m.calculate,
	); err != nil {
		return fmt.Errorf("failed to register calculate service: %w", err)
	}

	log.Printf("[calculator] Registered services: services.calculator.calculate")
	return nil
}

// Start initializes the calculator module.
func (m *CalculatorModule) Start(_ context.Context) error {
	log.Println("[calculator] Module started successfully")
	return nil
}

// Stop gracefully stops the calculator module.
func (m *CalculatorModule) Stop(_ context.Context) error {
	log.Println("[calculator] Module stopped")
	return nil
}

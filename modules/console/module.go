package console

import (
	"context"
	"fmt"
	"sync"

	"github.com/example/interactive-basics-demo/events"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/go-monolith/mono/pkg/types"
)

// maxEntries caps the in-memory console.
const maxEntries = 1000

// ConsoleModule is the output console: it subscribes to calculator and tip
// events, logs each one and keeps a bounded, ordered record of them.
type ConsoleModule struct {
	logger  types.Logger
	entries []Entry
	mu      sync.RWMutex
}

var _ mono.Module = (*ConsoleModule)(nil)
var _ mono.EventConsumerModule = (*ConsoleModule)(nil)

// NewModule creates a new ConsoleModule.
func NewModule(logger types.Logger) *ConsoleModule {
	return &ConsoleModule{
		logger:  logger.WithModule("console"),
		entries: make([]Entry, 0),
	}
}

// Name returns the module name.
func (m *ConsoleModule) Name() string {
	return "console"
}

// RegisterEventConsumers subscribes to every event the console renders.
func (m *ConsoleModule) RegisterEventConsumers(registry mono.EventRegistry) error {
	if err := helper.RegisterTypedEventConsumer(registry, events.CalculationPerformedV1, m.handleCalculation, m); err != nil {
		return fmt.Errorf("failed to register CalculationPerformed consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.TipShownV1, m.handleTipShown, m); err != nil {
		return fmt.Errorf("failed to register TipShown consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.TipsExhaustedV1, m.handleTipsExhausted, m); err != nil {
		return fmt.Errorf("failed to register TipsExhausted consumer: %w", err)
	}

	m.logger.Info("Registered event consumers",
		"events", []string{"CalculationPerformed", "TipShown", "TipsExhausted"})
	return nil
}

// Start initializes the console module.
func (m *ConsoleModule) Start(_ context.Context) error {
	m.logger.Info("Console started, listening for calculator and tip events")
	return nil
}

// Stop gracefully stops the console module.
func (m *ConsoleModule) Stop(_ context.Context) error {
	m.logger.Info("Console stopped", "entries", len(m.Entries()))
	return nil
}

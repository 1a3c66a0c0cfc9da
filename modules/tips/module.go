package tips

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"

	"github.com/example/interactive-basics-demo/domain/tip"
	"github.com/example/interactive-basics-demo/events"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/go-monolith/mono/pkg/types"
)

// TipsModule serves tip sessions: each session draws every catalog tip once,
// in random order, and then reports exhaustion.
type TipsModule struct {
	logger   types.Logger
	catalog  tip.Catalog
	seed     uint64
	repo     *sessionRepository
	eventBus mono.EventBus
}

// Compile-time interface checks.
var (
	_ mono.Module                = (*TipsModule)(nil)
	_ mono.ServiceProviderModule = (*TipsModule)(nil)
	_ mono.EventEmitterModule    = (*TipsModule)(nil)
)

// Option configures a TipsModule.
type Option func(*TipsModule)

// WithCatalog replaces the default tip catalog.
func WithCatalog(c tip.Catalog) Option {
	return func(m *TipsModule) {
		m.catalog = c
	}
}

// WithSeed makes the draw order reproducible. Zero keeps the process-wide
// generator.
func WithSeed(seed uint64) Option {
	return func(m *TipsModule) {
		m.seed = seed
	}
}

// NewModule creates a new TipsModule.
func NewModule(logger types.Logger, opts ...Option) *TipsModule {
	m := &TipsModule{
		catalog: tip.DefaultCatalog(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = logger.WithModule("tips")

	var src rand.Source
	if m.seed != 0 {
		src = rand.NewPCG(m.seed, m.seed)
	}
	m.repo = newSessionRepository(m.catalog, tip.NewRotator(src))
	return m
}

// Name returns the module name.
func (m *TipsModule) Name() string {
	return "tips"
}

// SetEventBus receives the event bus used to publish tip events.
func (m *TipsModule) SetEventBus(bus mono.EventBus) {
	m.eventBus = bus
}

// EmitEvents declares the events this module publishes.
func (m *TipsModule) EmitEvents() []mono.BaseEventDefinition {
	return []mono.BaseEventDefinition{
		events.TipShownV1.ToBase(),
		events.TipsExhaustedV1.ToBase(),
	}
}

// RegisterServices registers request-reply services in the service container.
func (m *TipsModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "create-session", json.Unmarshal, json.Marshal, m.createSession,
	); err != nil {
		return fmt.Errorf("failed to register create-session service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "next-tip", json.Unmarshal, json.Marshal, m.nextTip,
	); err != nil {
		return fmt.Errorf("failed to register next-tip service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "get-session", json.Unmarshal, json.Marshal, m.getSession,
	); err != nil {
		return fmt.Errorf("failed to register get-session service: %w", err)
	}

	m.logger.Info("Registered services",
		"services", []string{"create-session", "next-tip", "get-session"})
	return nil
}

// Start initializes the tips module.
func (m *TipsModule) Start(_ context.Context) error {
	if m.catalog.Len() == 0 {
		m.logger.Warn("Tip catalog is empty, every session starts exhausted")
	}
	if m.eventBus == nil {
		m.logger.Warn("Event bus not set, tip events will not be published")
	}
	m.logger.Info("Tips module started", "catalog_size", m.catalog.Len(), "seeded", m.seed != 0)
	return nil
}

// Stop gracefully stops the tips module.
func (m *TipsModule) Stop(_ context.Context) error {
	m.logger.Info("Tips module stopped", "sessions", m.repo.count())
	return nil
}

package calculator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// calculatorAdapter implements CalculatorPort over the service container.
type calculatorAdapter struct {
	container mono.ServiceContainer
}

// NewCalculatorAdapter creates a new adapter for calculator services.
// container is the ServiceContainer received via SetDependencyServiceContainer.
func NewCalculatorAdapter(container mono.ServiceContainer) CalculatorPort {
	if container == nil {
		panic("calculator adapter requires non-nil ServiceContainer")
	}
	return &calculatorAdapter{container: container}
}

// Calculate evaluates an expression via the calculate service.
func (a *calculatorAdapter) Calculate(ctx context.Context, req *CalculateRequest) (*CalculateResponse, error) {
	var resp CalculateResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"calculate",
		json.Marshal,
		json.Unmarshal,
		req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("calculate service call failed: %w", err)
	}
	return &resp, nil
}

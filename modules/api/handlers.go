package api

import (
	"errors"
	"fmt"
	"log"
	"strings"

	calcdomain "github.com/example/interactive-basics-demo/domain/calculator"
	"github.com/example/interactive-basics-demo/domain/greeting"
	"github.com/example/interactive-basics-demo/modules/calculator"
	"github.com/gofiber/fiber/v2"
)

const (
	buttonTextDefault   = "Add Random Tip"
	buttonTextExhausted = "All tips added! 🎉"
)

// setupRoutes configures all HTTP routes.
func (m *APIModule) setupRoutes(app *fiber.App) {
	app.Get("/health", m.healthHandler)

	api := app.Group("/api/v1")

	api.Get("/operations", m.listOperations)
	api.Post("/calculate", m.calculate)
	api.Post("/greet", m.greet)

	tips := api.Group("/tips")
	tips.Post("/sessions", m.createSession)
	tips.Get("/sessions/:id", m.getSession)
	tips.Post("/sessions/:id/next", m.nextTip)
}

// healthHandler handles GET /health.
func (m *APIModule) healthHandler(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status: "healthy",
		Details: map[string]any{
			"module": "api",
			"port":   m.port,
		},
	})
}

// listOperations handles GET /api/v1/operations.
func (m *APIModule) listOperations(c *fiber.Ctx) error {
	ops := calcdomain.Operations()
	names := make([]string, 0, len(ops))
	for _, op := range ops {
		names = append(names, string(op))
	}
	return c.JSON(OperationsResponse{Operations: names})
}

// calculate handles POST /api/v1/calculate.
// Evaluation errors are answers, so they come back as 200 with kind=error.
func (m *APIModule) calculate(c *fiber.Ctx) error {
	var req CalculateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	log.Printf("[api] Calculating: %s %s %s", req.A, req.Operation, req.B)

	resp, err := m.calculator.Calculate(c.Context(), &calculator.CalculateRequest{
		Operation: req.Operation,
		A:         req.A,
		B:         req.B,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "calculate_failed",
			Message: err.Error(),
		})
	}

	return c.JSON(CalculateResponse{
		Operation: resp.Operation,
		Kind:      resp.Kind,
		Result:    resp.Result,
		Error:     resp.Error,
		Display:   resp.Display,
	})
}

// greet handles POST /api/v1/greet. An empty body yields the default greeting.
func (m *APIModule) greet(c *fiber.Ctx) error {
	if len(c.Body()) == 0 {
		return c.JSON(GreetResponse{Message: greeting.DefaultGreeting})
	}

	var req GreetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	msg, err := greeting.Greet(req.Name)
	if errors.Is(err, greeting.ErrNameRequired) {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
	}
	if err != nil {
		return err
	}

	log.Printf("[api] Personal greeting for: %s", strings.TrimSpace(req.Name))
	return c.JSON(GreetResponse{Message: msg})
}

// createSession handles POST /api/v1/tips/sessions.
func (m *APIModule) createSession(c *fiber.Ctx) error {
	resp, err := m.tips.CreateSession(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "create_failed",
			Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(SessionResponse{
		SessionID:   resp.SessionID,
		StarterTips: resp.StarterTips,
		Shown:       []string{},
		Total:       resp.Total,
		Remaining:   resp.Remaining,
		Exhausted:   resp.Remaining == 0,
		ButtonText:  buttonText(resp.Remaining == 0, resp.Remaining, false),
	})
}

// getSession handles GET /api/v1/tips/sessions/:id.
func (m *APIModule) getSession(c *fiber.Ctx) error {
	sessionID := c.Params("id")

	resp, err := m.tips.GetSession(c.Context(), sessionID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "lookup_failed",
			Message: err.Error(),
		})
	}
	if !resp.Found {
		return sessionNotFound(c)
	}

	return c.JSON(SessionResponse{
		SessionID:  resp.SessionID,
		Shown:      resp.Shown,
		Total:      resp.Total,
		Remaining:  resp.Remaining,
		Exhausted:  resp.Exhausted,
		ButtonText: buttonText(resp.Exhausted, resp.Remaining, len(resp.Shown) > 0),
	})
}

// nextTip handles POST /api/v1/tips/sessions/:id/next.
func (m *APIModule) nextTip(c *fiber.Ctx) error {
	sessionID := c.Params("id")

	resp, err := m.tips.NextTip(c.Context(), sessionID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "draw_failed",
			Message: err.Error(),
		})
	}
	if !resp.Found {
		return sessionNotFound(c)
	}

	return c.JSON(NextTipResponse{
		SessionID:  resp.SessionID,
		Tip:        resp.Tip,
		Remaining:  resp.Remaining,
		Exhausted:  resp.Exhausted,
		ButtonText: buttonText(resp.Exhausted, resp.Remaining, true),
	})
}

func sessionNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
		Error:   "not_found",
		Message: "Tip session not found",
	})
}

// buttonText mirrors the label of the page's "add tip" button. The count is
// only shown once at least one tip has been drawn.
func buttonText(exhausted bool, remaining int, drawn bool) string {
	if exhausted {
		return buttonTextExhausted
	}
	if !drawn {
		return buttonTextDefault
	}
	return fmt.Sprintf("%s (%d left)", buttonTextDefault, remaining)
}

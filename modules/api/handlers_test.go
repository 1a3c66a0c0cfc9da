package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/example/interactive-basics-demo/domain/tip"
	"github.com/example/interactive-basics-demo/modules/calculator"
	"github.com/example/interactive-basics-demo/modules/tips"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCalculatorPort implements calculator.CalculatorPort for testing
type mockCalculatorPort struct {
	calculateFunc func(ctx context.Context, req *calculator.CalculateRequest) (*calculator.CalculateResponse, error)
	lastRequest   *calculator.CalculateRequest
}

func (m *mockCalculatorPort) Calculate(ctx context.Context, req *calculator.CalculateRequest) (*calculator.CalculateResponse, error) {
	m.lastRequest = req
	if m.calculateFunc != nil {
		return m.calculateFunc(ctx, req)
	}
	return nil, errors.New("not implemented")
}

// fakeTipPort implements tips.TipPort on top of the domain rotator.
type fakeTipPort struct {
	catalog  tip.Catalog
	rotator  *tip.Rotator
	sessions map[string]*tip.ShownSet
	err      error
}

func newFakeTipPort(entries ...string) *fakeTipPort {
	return &fakeTipPort{
		catalog:  tip.NewCatalog(entries...),
		rotator:  tip.NewRotator(nil),
		sessions: make(map[string]*tip.ShownSet),
	}
}

func (f *fakeTipPort) CreateSession(_ context.Context) (*tips.CreateSessionResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	id := "session-1"
	f.sessions[id] = tip.NewShownSet()
	return &tips.CreateSessionResponse{
		SessionID:   id,
		Total:       f.catalog.Len(),
		Remaining:   f.catalog.Len(),
		StarterTips: tip.StarterTips(),
	}, nil
}

func (f *fakeTipPort) NextTip(_ context.Context, sessionID string) (*tips.NextTipResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	shown, ok := f.sessions[sessionID]
	if !ok {
		return &tips.NextTipResponse{SessionID: sessionID}, nil
	}
	d := f.rotator.Next(f.catalog, shown)
	return &tips.NextTipResponse{
		SessionID: sessionID,
		Found:     true,
		Tip:       d.Tip,
		Remaining: d.Remaining,
		Exhausted: d.Exhausted,
	}, nil
}

func (f *fakeTipPort) GetSession(_ context.Context, sessionID string) (*tips.SessionResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	shown, ok := f.sessions[sessionID]
	if !ok {
		return &tips.SessionResponse{SessionID: sessionID}, nil
	}
	remaining := tip.Remaining(f.catalog, shown)
	return &tips.SessionResponse{
		SessionID: sessionID,
		Found:     true,
		Shown:     shown.Tips(),
		Total:     f.catalog.Len(),
		Remaining: remaining,
		Exhausted: remaining == 0,
	}, nil
}

func newTestApp(calc calculator.CalculatorPort, tp tips.TipPort) *fiber.App {
	m := &APIModule{port: 3000, calculator: calc, tips: tp}
	return m.newApp()
}

func doRequest(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestCalculateHandler(t *testing.T) {
	twentyFour := 24.0

	tests := []struct {
		name           string
		body           string
		calcResp       *calculator.CalculateResponse
		calcErr        error
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "value result",
			body: `{"operation":"multiply","a":"4","b":"6"}`,
			calcResp: &calculator.CalculateResponse{
				Operation: "multiply", Kind: calculator.KindValue, Result: &twentyFour, Display: "Result: 24",
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"result":24`,
		},
		{
			name: "domain error is still 200",
			body: `{"operation":"divide","a":"10","b":"0"}`,
			calcResp: &calculator.CalculateResponse{
				Operation: "divide", Kind: calculator.KindError,
				Error: "Cannot divide by zero!", Display: "Cannot divide by zero!",
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"error":"Cannot divide by zero!"`,
		},
		{
			name:           "malformed body",
			body:           `{"operation":`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"invalid_request"`,
		},
		{
			name:           "service failure",
			body:           `{"operation":"add","a":"1","b":"2"}`,
			calcErr:        errors.New("bus unavailable"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"calculate_failed"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := &mockCalculatorPort{
				calculateFunc: func(_ context.Context, _ *calculator.CalculateRequest) (*calculator.CalculateResponse, error) {
					return tt.calcResp, tt.calcErr
				},
			}
			app := newTestApp(calc, newFakeTipPort())

			status, body := doRequest(t, app, http.MethodPost, "/api/v1/calculate", tt.body)

			assert.Equal(t, tt.expectedStatus, status)
			assert.Contains(t, string(body), tt.expectedBody)
		})
	}
}

func TestCalculateHandler_ForwardsRawInputs(t *testing.T) {
	calc := &mockCalculatorPort{
		calculateFunc: func(_ context.Context, req *calculator.CalculateRequest) (*calculator.CalculateResponse, error) {
			return &calculator.CalculateResponse{Operation: req.Operation, Kind: calculator.KindError}, nil
		},
	}
	app := newTestApp(calc, newFakeTipPort())

	status, _ := doRequest(t, app, http.MethodPost, "/api/v1/calculate", `{"operation":"add","a":" 1e3 ","b":"x"}`)

	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, calc.lastRequest)
	assert.Equal(t, "add", calc.lastRequest.Operation)
	assert.Equal(t, " 1e3 ", calc.lastRequest.A)
	assert.Equal(t, "x", calc.lastRequest.B)
}

func TestListOperations(t *testing.T) {
	app := newTestApp(&mockCalculatorPort{}, newFakeTipPort())

	status, body := doRequest(t, app, http.MethodGet, "/api/v1/operations", "")

	require.Equal(t, http.StatusOK, status)
	var resp OperationsResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, []string{"add", "subtract", "multiply", "divide"}, resp.Operations)
}

func TestGreetHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "personal greeting",
			body:           `{"name":"Emma"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   "Hello, Emma! Welcome to JavaScript!",
		},
		{
			name:           "blank name",
			body:           `{"name":"   "}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Please enter your name first!",
		},
		{
			name:           "no body gives default greeting",
			body:           "",
			expectedStatus: http.StatusOK,
			expectedBody:   "Hello from JavaScript!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(&mockCalculatorPort{}, newFakeTipPort())

			status, body := doRequest(t, app, http.MethodPost, "/api/v1/greet", tt.body)

			assert.Equal(t, tt.expectedStatus, status)
			assert.Contains(t, string(body), tt.expectedBody)
		})
	}
}

func TestGreetHandler_LogsPersonalGreeting(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	app := newTestApp(&mockCalculatorPort{}, newFakeTipPort())

	status, _ := doRequest(t, app, http.MethodPost, "/api/v1/greet", `{"name":"  Emma "}`)

	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, buf.String(), "[api] Personal greeting for: Emma")
}

func TestTipSessionFlow(t *testing.T) {
	app := newTestApp(&mockCalculatorPort{}, newFakeTipPort("t1", "t2", "t3"))

	status, body := doRequest(t, app, http.MethodPost, "/api/v1/tips/sessions", "")
	require.Equal(t, http.StatusCreated, status)

	var sess SessionResponse
	require.NoError(t, json.Unmarshal(body, &sess))
	assert.Equal(t, 3, sess.Total)
	assert.Len(t, sess.StarterTips, 3)
	assert.Equal(t, "Add Random Tip", sess.ButtonText)

	path := "/api/v1/tips/sessions/" + sess.SessionID + "/next"
	drawn := make([]string, 0, 3)
	for k := 1; k <= 3; k++ {
		status, body = doRequest(t, app, http.MethodPost, path, "")
		require.Equal(t, http.StatusOK, status)

		var next NextTipResponse
		require.NoError(t, json.Unmarshal(body, &next))
		assert.False(t, next.Exhausted)
		assert.Equal(t, 3-k, next.Remaining)
		assert.Contains(t, next.ButtonText, "left)")
		drawn = append(drawn, next.Tip)
	}
	assert.ElementsMatch(t, []string{"t1", "t2", "t3"}, drawn)

	status, body = doRequest(t, app, http.MethodPost, path, "")
	require.Equal(t, http.StatusOK, status)
	var last NextTipResponse
	require.NoError(t, json.Unmarshal(body, &last))
	assert.True(t, last.Exhausted)
	assert.Equal(t, "All tips added! 🎉", last.ButtonText)

	status, body = doRequest(t, app, http.MethodGet, "/api/v1/tips/sessions/"+sess.SessionID, "")
	require.Equal(t, http.StatusOK, status)
	var state SessionResponse
	require.NoError(t, json.Unmarshal(body, &state))
	assert.Equal(t, drawn, state.Shown)
	assert.True(t, state.Exhausted)
}

func TestTipHandlers_UnknownSession(t *testing.T) {
	app := newTestApp(&mockCalculatorPort{}, newFakeTipPort("t1"))

	status, body := doRequest(t, app, http.MethodPost, "/api/v1/tips/sessions/missing/next", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, string(body), `"not_found"`)

	status, _ = doRequest(t, app, http.MethodGet, "/api/v1/tips/sessions/missing", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestTipHandlers_ServiceFailure(t *testing.T) {
	tp := newFakeTipPort("t1")
	tp.err = errors.New("bus unavailable")
	app := newTestApp(&mockCalculatorPort{}, tp)

	status, _ := doRequest(t, app, http.MethodPost, "/api/v1/tips/sessions", "")
	assert.Equal(t, http.StatusInternalServerError, status)
}

func TestHealthHandler(t *testing.T) {
	app := newTestApp(&mockCalculatorPort{}, newFakeTipPort())

	status, body := doRequest(t, app, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), `"healthy"`)
}

func TestButtonText(t *testing.T) {
	assert.Equal(t, "Add Random Tip", buttonText(false, 7, false))
	assert.Equal(t, "Add Random Tip (6 left)", buttonText(false, 6, true))
	assert.Equal(t, "Add Random Tip (0 left)", buttonText(false, 0, true))
	assert.Equal(t, "All tips added! 🎉", buttonText(true, 0, true))
}

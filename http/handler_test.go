package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wealth-planner/domain"
	"wealth-planner/service"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRouter(limiter Limiter) http.Handler {
	logger := discardLogger()
	advisor := service.NewAdvisorService(context.Background(), service.AdvisorConfig{}, logger)

	return NewRouter(Services{
		Financial:  service.NewFinancialService(logger),
		LifeGoal:   service.NewLifeGoalService(advisor, logger),
		QuickTools: service.NewQuickToolsService(),
	}, RouterConfig{Limiter: limiter}, logger)
}

func post(t *testing.T, handler http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestSIPGrowthHandler_OK(t *testing.T) {
	router := newTestRouter(nil)

	w := post(t, router, "/api/financial/sip-growth", `{
		"monthly_investment": 5000,
		"period_years": 10,
		"expected_returns": 12
	}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result domain.SIPGrowthResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if result.FutureValue != 1161695.38 {
		t.Errorf("expected future value 1161695.38, got %.2f", result.FutureValue)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %s", ct)
	}
}

func TestSingleAmountHandler_AppliesDefaults(t *testing.T) {
	router := newTestRouter(nil)

	// inflation omitido: se usa el 8% por defecto
	w := post(t, router, "/api/quick-tools/single-amount", `{
		"calculate_type": "present_value",
		"amount": 100000,
		"years": 10
	}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result domain.SingleAmountResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if result.Result != 46319.35 {
		t.Errorf("expected 46319.35, got %.2f", result.Result)
	}
}

func TestEducationHandler_ReturnsExplanation(t *testing.T) {
	router := newTestRouter(nil)

	w := post(t, router, "/api/life-goal/education", `{
		"years_remaining": 15,
		"cost_today": 1500000,
		"expected_returns": 12
	}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result domain.GoalResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !strings.Contains(result.Explanation, "child education") {
		t.Errorf("unexpected explanation %q", result.Explanation)
	}
}

func TestRetirementHandler_AgeOrdering(t *testing.T) {
	router := newTestRouter(nil)

	w := post(t, router, "/api/life-goal/retirement", `{
		"present_age": 45,
		"retirement_age": 40,
		"monthly_expenses": 50000,
		"expected_returns": 12
	}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "retirement age must be greater than present age") {
		t.Errorf("unexpected body %q", w.Body.String())
	}
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	router := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/financial/swp", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestHandler_BadRequest(t *testing.T) {
	router := newTestRouter(nil)

	w := post(t, router, "/api/quick-tools/weighted-returns", `{invalid-json}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "invalid request body") {
		t.Errorf("unexpected body %q", w.Body.String())
	}
}

func TestHandler_ValidationMessage(t *testing.T) {
	router := newTestRouter(nil)

	w := post(t, router, "/api/quick-tools/irregular-cash-flow", `{
		"calculate_type": "present_value",
		"cash_flows": [],
		"discount_rate": 10
	}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestWriteCalculationError_HidesInternalDetail(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/financial/swp", nil)
	w := httptest.NewRecorder()

	err := &domain.InternalError{Op: "swp", Err: errors.New("future_value is not a finite number")}
	writeCalculationError(w, req, discardLogger(), err)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "finite") {
		t.Errorf("internal detail leaked: %q", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), calculationErrorMessage) {
		t.Errorf("unexpected body %q", w.Body.String())
	}
}

func TestRecoverMiddleware(t *testing.T) {
	handler := RecoverMiddleware(discardLogger(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/financial/swp", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
}

func TestHealthAndBanner(t *testing.T) {
	router := newTestRouter(nil)

	for _, path := range []string{"/", "/health"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
		}
	}
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Origin", "https://evil.example")

	w := httptest.NewRecorder()
	CORSMiddleware(nil, next).ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected wildcard origin, got %q", got)
	}

	w = httptest.NewRecorder()
	CORSMiddleware([]string{"https://app.example"}, next).ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("unlisted origin should not be allowed, got %q", got)
	}

	req.Header.Set("Origin", "https://app.example")
	w = httptest.NewRecorder()
	CORSMiddleware([]string{"https://app.example"}, next).ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example" {
		t.Errorf("expected listed origin, got %q", got)
	}
}

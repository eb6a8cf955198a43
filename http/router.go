package http

import (
	"log/slog"
	"net/http"

	"wealth-planner/logging"
	"wealth-planner/service"
)

// Services groups the calculators exposed over HTTP.
type Services struct {
	Financial  *service.FinancialService
	LifeGoal   *service.LifeGoalService
	QuickTools *service.QuickToolsService
}

type RouterConfig struct {
	AllowedOrigins []string // empty allows any origin
	Limiter        Limiter
}

func NewRouter(services Services, cfg RouterConfig, logger *slog.Logger) http.Handler {
	financialHandler := NewFinancialHandler(services.Financial, logger)
	lifeGoalHandler := NewLifeGoalHandler(services.LifeGoal, logger)
	quickToolsHandler := NewQuickToolsHandler(services.QuickTools, logger)

	routes := map[string]http.HandlerFunc{
		"/api/financial/sip-growth": financialHandler.SIPGrowth,
		"/api/financial/sip-need":   financialHandler.SIPNeed,
		"/api/financial/sip-delay":  financialHandler.SIPDelay,
		"/api/financial/swp":        financialHandler.SWP,

		"/api/life-goal/retirement": lifeGoalHandler.Retirement,
		"/api/life-goal/education":  lifeGoalHandler.Education,
		"/api/life-goal/marriage":   lifeGoalHandler.Marriage,
		"/api/life-goal/other-goal": lifeGoalHandler.OtherGoal,

		"/api/quick-tools/single-amount":       quickToolsHandler.SingleAmount,
		"/api/quick-tools/irregular-cash-flow": quickToolsHandler.IrregularCashFlow,
		"/api/quick-tools/weighted-returns":    quickToolsHandler.WeightedReturns,
	}

	mux := http.NewServeMux()
	for path, handler := range routes {
		var h http.Handler = handler
		if cfg.Limiter != nil {
			h = RateLimitMiddleware(cfg.Limiter, h)
		}
		mux.Handle(path, h)
	}

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, logger, map[string]string{"status": "healthy"})
	})
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, logger, map[string]string{
			"message": "Wealth Planner API",
			"version": "1.0.0",
		})
	})

	var handler http.Handler = mux
	handler = RecoverMiddleware(logger, handler)
	handler = CORSMiddleware(cfg.AllowedOrigins, handler)
	handler = logging.Middleware(logger, handler)
	return handler
}

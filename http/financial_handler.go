package http

import (
	"log/slog"
	"net/http"

	"wealth-planner/domain"
	"wealth-planner/service"
)

type FinancialHandler struct {
	service *service.FinancialService
	logger  *slog.Logger
}

func NewFinancialHandler(service *service.FinancialService, logger *slog.Logger) *FinancialHandler {
	return &FinancialHandler{service: service, logger: logger}
}

func (h *FinancialHandler) SIPGrowth(w http.ResponseWriter, r *http.Request) {
	serveCalculation(w, r, h.logger, domain.SIPGrowthInput{}, withoutContext(h.service.SIPGrowth))
}

func (h *FinancialHandler) SIPNeed(w http.ResponseWriter, r *http.Request) {
	serveCalculation(w, r, h.logger, domain.DefaultSIPNeedInput(), withoutContext(h.service.SIPNeed))
}

func (h *FinancialHandler) SIPDelay(w http.ResponseWriter, r *http.Request) {
	serveCalculation(w, r, h.logger, domain.SIPDelayInput{}, withoutContext(h.service.SIPDelay))
}

func (h *FinancialHandler) SWP(w http.ResponseWriter, r *http.Request) {
	serveCalculation(w, r, h.logger, domain.DefaultSWPInput(), withoutContext(h.service.SWP))
}

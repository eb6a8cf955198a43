package http

import (
	"log/slog"
	"net/http"

	"wealth-planner/domain"
	"wealth-planner/service"
)

type QuickToolsHandler struct {
	service *service.QuickToolsService
	logger  *slog.Logger
}

func NewQuickToolsHandler(service *service.QuickToolsService, logger *slog.Logger) *QuickToolsHandler {
	return &QuickToolsHandler{service: service, logger: logger}
}

func (h *QuickToolsHandler) SingleAmount(w http.ResponseWriter, r *http.Request) {
	serveCalculation(w, r, h.logger, domain.DefaultSingleAmountInput(), withoutContext(h.service.SingleAmount))
}

func (h *QuickToolsHandler) IrregularCashFlow(w http.ResponseWriter, r *http.Request) {
	serveCalculation(w, r, h.logger, domain.IrregularCashFlowInput{}, withoutContext(h.service.IrregularCashFlow))
}

func (h *QuickToolsHandler) WeightedReturns(w http.ResponseWriter, r *http.Request) {
	serveCalculation(w, r, h.logger, domain.WeightedReturnsInput{}, withoutContext(h.service.WeightedReturns))
}

package http

import (
	"log/slog"
	"net/http"

	"wealth-planner/domain"
	"wealth-planner/service"
)

type LifeGoalHandler struct {
	service *service.LifeGoalService
	logger  *slog.Logger
}

func NewLifeGoalHandler(service *service.LifeGoalService, logger *slog.Logger) *LifeGoalHandler {
	return &LifeGoalHandler{service: service, logger: logger}
}

func (h *LifeGoalHandler) Retirement(w http.ResponseWriter, r *http.Request) {
	serveCalculation(w, r, h.logger, domain.DefaultRetirementInput(), h.service.Retirement)
}

func (h *LifeGoalHandler) Education(w http.ResponseWriter, r *http.Request) {
	serveCalculation(w, r, h.logger, domain.DefaultEducationInput(), h.service.Education)
}

func (h *LifeGoalHandler) Marriage(w http.ResponseWriter, r *http.Request) {
	serveCalculation(w, r, h.logger, domain.DefaultMarriageInput(), h.service.Marriage)
}

func (h *LifeGoalHandler) OtherGoal(w http.ResponseWriter, r *http.Request) {
	serveCalculation(w, r, h.logger, domain.DefaultOtherGoalInput(), h.service.OtherGoal)
}

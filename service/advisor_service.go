package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"google.golang.org/genai"
)

const (
	defaultAdvisorModel   = "gemini-2.0-flash"
	defaultAdvisorTimeout = 15 * time.Second
	advisorMaxTokens      = 300
)

const advisorInstruction = "You are a financial planner helping Indian retail investors. " +
	"You explain goal-based savings plans clearly, quote every amount in rupees, " +
	"and stay realistic about returns and inflation. Keep answers to 3-4 sentences."

// AdvisorConfig configures the narrative generator. An empty APIKey keeps
// the advisor on its deterministic fallback text.
type AdvisorConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// GoalPlan is the subset of a goal calculation the advisor explains.
type GoalPlan struct {
	Goal                string
	Years               int
	TargetAmount        float64
	FutureValueExisting float64
	Shortfall           float64
	MonthlySIP          float64
	OneTimeInvestment   float64
}

// AdvisorService writes a short narrative for a goal plan, preferring an LLM
// and falling back to a template when none is configured or the call fails.
type AdvisorService struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	logger  *slog.Logger
}

func NewAdvisorService(ctx context.Context, cfg AdvisorConfig, logger *slog.Logger) *AdvisorService {
	s := &AdvisorService{
		model:   cfg.Model,
		timeout: cfg.Timeout,
		logger:  logger.With("component", "advisor"),
	}
	if s.model == "" {
		s.model = defaultAdvisorModel
	}
	if s.timeout <= 0 {
		s.timeout = defaultAdvisorTimeout
	}
	if cfg.APIKey == "" {
		return s
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		s.logger.Warn("advisor disabled, could not create client", "error", err)
		return s
	}
	s.client = client
	return s
}

// Enabled reports whether narratives come from the LLM.
func (s *AdvisorService) Enabled() bool {
	return s.client != nil
}

// ExplainGoal genera una explicación para un plan de objetivo
func (s *AdvisorService) ExplainGoal(ctx context.Context, plan GoalPlan) string {
	if !s.Enabled() {
		return fallbackGoalExplanation(plan)
	}

	text, err := s.generate(ctx, goalPrompt(plan))
	if err != nil {
		s.logger.WarnContext(ctx, "advisor call failed, using fallback", "goal", plan.Goal, "error", err)
		return fallbackGoalExplanation(plan)
	}
	return text
}

func (s *AdvisorService) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: advisorInstruction}}},
		MaxOutputTokens:   advisorMaxTokens,
	})
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("empty response from model %s", s.model)
	}
	return text, nil
}

func goalPrompt(plan GoalPlan) string {
	return fmt.Sprintf(`Explain this %s savings plan to the investor.

PLAN:
- Years to goal: %d
- Amount needed at the goal date: %s
- Value of existing investments at the goal date: %s
- Shortfall: %s
- Monthly SIP needed: %s
- Or a one-time investment today of: %s

Say whether the goal is already funded, what the monthly commitment means in
practice, and one concrete tip to stay on track.`,
		plan.Goal, plan.Years,
		formatINR(plan.TargetAmount),
		formatINR(plan.FutureValueExisting),
		formatINR(plan.Shortfall),
		formatINR(plan.MonthlySIP),
		formatINR(plan.OneTimeInvestment))
}

func fallbackGoalExplanation(plan GoalPlan) string {
	if plan.Shortfall <= 0 {
		return fmt.Sprintf(
			"Your existing investments are projected to grow to %s in %d years, which already covers the %s needed for your %s goal. No additional investment is required.",
			formatINR(plan.FutureValueExisting), plan.Years, formatINR(plan.TargetAmount), plan.Goal)
	}
	return fmt.Sprintf(
		"Your %s goal needs %s in %d years. After counting existing investments, the shortfall is %s: invest %s every month, or %s once today, to close it.",
		plan.Goal, formatINR(plan.TargetAmount), plan.Years, formatINR(plan.Shortfall),
		formatINR(plan.MonthlySIP), formatINR(plan.OneTimeInvestment))
}

// formatINR rounds to the nearest paisa; money.NewFromFloat truncates.
func formatINR(amount float64) string {
	cur := money.GetCurrency(money.INR)
	minor := decimal.NewFromFloat(amount).Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, money.INR).Display()
}

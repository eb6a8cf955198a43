package service

import (
	"context"
	"strings"
	"testing"
)

func TestAdvisor_DisabledWithoutKey(t *testing.T) {
	advisor := NewAdvisorService(context.Background(), AdvisorConfig{}, discardLogger())

	if advisor.Enabled() {
		t.Fatalf("advisor should be disabled without an API key")
	}
}

func TestAdvisor_FallbackShortfall(t *testing.T) {
	advisor := NewAdvisorService(context.Background(), AdvisorConfig{}, discardLogger())

	text := advisor.ExplainGoal(context.Background(), GoalPlan{
		Goal:              "child education",
		Years:             15,
		TargetAmount:      4177248.17,
		Shortfall:         3629692.60,
		MonthlySIP:        7193.94,
		OneTimeInvestment: 663168.81,
	})

	for _, want := range []string{"child education", "15 years", "₹7,193.94", "₹4,177,248.17"} {
		if !strings.Contains(text, want) {
			t.Errorf("expected %q in %q", want, text)
		}
	}
}

func TestAdvisor_FallbackFunded(t *testing.T) {
	advisor := NewAdvisorService(context.Background(), AdvisorConfig{}, discardLogger())

	text := advisor.ExplainGoal(context.Background(), GoalPlan{
		Goal:                "retirement",
		Years:               30,
		TargetAmount:        1000000,
		FutureValueExisting: 2000000,
		Shortfall:           -1000000,
	})

	if !strings.Contains(text, "No additional investment") {
		t.Errorf("expected funded narrative, got %q", text)
	}
}

func TestGoalPrompt_QuotesRupees(t *testing.T) {
	prompt := goalPrompt(GoalPlan{Goal: "marriage", Years: 5, TargetAmount: 1500000})

	if !strings.Contains(prompt, "₹1,500,000.00") {
		t.Errorf("expected formatted target in prompt, got %q", prompt)
	}
}

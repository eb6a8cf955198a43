package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"wealth-planner/domain"
	"wealth-planner/service"
)

type calculatorFunc func(ctx context.Context, raw []byte) (any, error)

var calculatorSummaries = map[string]string{
	"sip-growth":          "Future value of a (step-up) SIP",
	"sip-need":            "Monthly SIP needed for an inflation-adjusted target",
	"sip-delay":           "Cost of delaying a SIP",
	"swp":                 "How long a systematic withdrawal plan lasts",
	"retirement":          "Retirement corpus and how to fund it",
	"education":           "Child education goal",
	"marriage":            "Child marriage goal",
	"other-goal":          "Any other cost-based goal",
	"single-amount":       "Present or future value of one amount",
	"irregular-cash-flow": "Present or future value of uneven cash flows",
	"weighted-returns":    "Blended return of a multi-asset portfolio",
}

// decodeRun decodes raw over defaults and runs fn on the result.
func decodeRun[In, Out any](defaults func() In, fn func(context.Context, In) (Out, error)) calculatorFunc {
	return func(ctx context.Context, raw []byte) (any, error) {
		input := defaults()
		if err := json.Unmarshal(raw, &input); err != nil {
			return nil, fmt.Errorf("invalid input: %w", err)
		}
		return fn(ctx, input)
	}
}

func pure[In, Out any](fn func(In) (Out, error)) func(context.Context, In) (Out, error) {
	return func(_ context.Context, input In) (Out, error) {
		return fn(input)
	}
}

func zero[T any]() T {
	var v T
	return v
}

func newCalculators(advisor *service.AdvisorService, logger *slog.Logger) map[string]calculatorFunc {
	financial := service.NewFinancialService(logger)
	lifeGoal := service.NewLifeGoalService(advisor, logger)
	quickTools := service.NewQuickToolsService()

	return map[string]calculatorFunc{
		"sip-growth": decodeRun(zero[domain.SIPGrowthInput], pure(financial.SIPGrowth)),
		"sip-need":   decodeRun(domain.DefaultSIPNeedInput, pure(financial.SIPNeed)),
		"sip-delay":  decodeRun(zero[domain.SIPDelayInput], pure(financial.SIPDelay)),
		"swp":        decodeRun(domain.DefaultSWPInput, pure(financial.SWP)),

		"retirement": decodeRun(domain.DefaultRetirementInput, lifeGoal.Retirement),
		"education":  decodeRun(domain.DefaultEducationInput, lifeGoal.Education),
		"marriage":   decodeRun(domain.DefaultMarriageInput, lifeGoal.Marriage),
		"other-goal": decodeRun(domain.DefaultOtherGoalInput, lifeGoal.OtherGoal),

		"single-amount":       decodeRun(domain.DefaultSingleAmountInput, pure(quickTools.SingleAmount)),
		"irregular-cash-flow": decodeRun(zero[domain.IrregularCashFlowInput], pure(quickTools.IrregularCashFlow)),
		"weighted-returns":    decodeRun(zero[domain.WeightedReturnsInput], pure(quickTools.WeightedReturns)),
	}
}

func calculatorNames() []string {
	names := make([]string, 0, len(calculatorSummaries))
	for name := range calculatorSummaries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func calculatorHelp() string {
	var b strings.Builder
	b.WriteString("Available calculators:\n")
	for _, name := range calculatorNames() {
		fmt.Fprintf(&b, "  %-20s %s\n", name, calculatorSummaries[name])
	}
	return b.String()
}

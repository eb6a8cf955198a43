package service

import (
	"context"
	"log/slog"
	"math"

	"wealth-planner/domain"
)

// LifeGoalService plans retirement and other life goals.
type LifeGoalService struct {
	advisor *AdvisorService
	logger  *slog.Logger
}

func NewLifeGoalService(advisor *AdvisorService, logger *slog.Logger) *LifeGoalService {
	return &LifeGoalService{
		advisor: advisor,
		logger:  logger.With("component", "life_goal"),
	}
}

// goalFunding is the contribution plan for a target amount.
type goalFunding struct {
	futureValueExisting float64
	shortfall           float64
	monthlySIP          float64
	yearlySIP           float64
	oneTimeInvestment   float64
}

// planGoal funds target from existing investments first and spreads any
// shortfall over years of SIPs, or a single lump sum today.
func planGoal(target, existing, expectedReturns, growthInSavings float64, years int) goalFunding {
	n := float64(years)
	plan := goalFunding{
		futureValueExisting: FutureValueLumpsum(existing, expectedReturns, n),
	}
	plan.shortfall = target - plan.futureValueExisting

	// Ya alcanza con lo invertido
	if plan.shortfall <= 0 {
		return plan
	}

	plan.monthlySIP = SIPNeeded(plan.shortfall, expectedReturns, n, growthInSavings)
	plan.yearlySIP = plan.monthlySIP * 12
	plan.oneTimeInvestment = PresentValueLumpsum(plan.shortfall, expectedReturns, n)
	return plan
}

// Retirement calculates the corpus needed at retirement and how to fund it.
func (s *LifeGoalService) Retirement(
	ctx context.Context,
	input domain.RetirementInput,
) (domain.RetirementResult, error) {
	if input.CorpusModel == "" {
		input.CorpusModel = domain.CorpusAnnuity
	}
	if err := validateRetirement(input); err != nil {
		return domain.RetirementResult{}, err
	}

	yearsRemaining := input.RetirementAge - input.PresentAge
	if yearsRemaining <= 0 {
		return domain.RetirementResult{}, domain.NewValidationError(
			"retirement_age", "retirement age must be greater than present age")
	}
	years := float64(yearsRemaining)

	monthlyExpensesRetirement := InflationAdjustedAmount(input.MonthlyExpenses, input.Inflation, years)

	var corpus float64
	switch input.CorpusModel {
	case domain.CorpusDiscounted:
		retirementYears := input.LifeExpectancy - input.RetirementAge
		if retirementYears <= 0 {
			return domain.RetirementResult{}, domain.NewValidationError(
				"life_expectancy", "life expectancy must be greater than retirement age")
		}
		corpus = RetirementCorpusDiscounted(
			input.MonthlyExpenses,
			years,
			input.Inflation,
			input.PostRetirementInflation,
			input.RetirementKittyReturns,
			retirementYears,
		)
	default:
		postRetirementReturn := math.Min(input.ExpectedReturns, PostRetirementReturnCap)
		corpus = RetirementCorpus(input.MonthlyExpenses, years, input.Inflation, postRetirementReturn)
	}

	plan := planGoal(corpus, input.ExistingInvestments, input.ExpectedReturns, input.GrowthInSavings, yearsRemaining)

	r := newRounder("retirement")
	result := domain.RetirementResult{
		RecommendedCorpus:         r.round("recommended_corpus", corpus),
		MonthlySIP:                r.round("monthly_sip", plan.monthlySIP),
		YearlySIP:                 r.round("yearly_sip", plan.yearlySIP),
		OneTimeInvestment:         r.round("one_time_investment", plan.oneTimeInvestment),
		FutureValueExisting:       r.round("future_value_existing", plan.futureValueExisting),
		Shortfall:                 r.round("shortfall", plan.shortfall),
		MonthlyExpensesRetirement: r.round("monthly_expenses_retirement", monthlyExpensesRetirement),
		YearsRemaining:            yearsRemaining,
		CorpusModel:               input.CorpusModel,
	}
	if err := r.Err(); err != nil {
		return domain.RetirementResult{}, err
	}

	result.Explanation = s.advisor.ExplainGoal(ctx, GoalPlan{
		Goal:                "retirement",
		Years:               yearsRemaining,
		TargetAmount:        result.RecommendedCorpus,
		FutureValueExisting: result.FutureValueExisting,
		Shortfall:           result.Shortfall,
		MonthlySIP:          result.MonthlySIP,
		OneTimeInvestment:   result.OneTimeInvestment,
	})
	return result, nil
}

// Education plans for a child's education cost.
func (s *LifeGoalService) Education(ctx context.Context, input domain.GoalInput) (domain.GoalResult, error) {
	return s.costGoal(ctx, "child education", input)
}

// Marriage plans for a child's marriage cost.
func (s *LifeGoalService) Marriage(ctx context.Context, input domain.GoalInput) (domain.GoalResult, error) {
	return s.costGoal(ctx, "child marriage", input)
}

// OtherGoal plans for any goal expressed as a cost in today's money.
func (s *LifeGoalService) OtherGoal(ctx context.Context, input domain.GoalInput) (domain.GoalResult, error) {
	name := input.GoalName
	if name == "" {
		name = "custom"
	}
	return s.costGoal(ctx, name, input)
}

func (s *LifeGoalService) costGoal(ctx context.Context, goal string, input domain.GoalInput) (domain.GoalResult, error) {
	if err := validateGoal(input); err != nil {
		return domain.GoalResult{}, err
	}

	target := InflationAdjustedAmount(input.CostToday, input.Inflation, float64(input.YearsRemaining))
	plan := planGoal(target, input.ExistingInvestments, input.ExpectedReturns, input.GrowthInSavings, input.YearsRemaining)

	r := newRounder(goal)
	result := domain.GoalResult{
		TargetAmount:        r.round("target_amount", target),
		MonthlySIP:          r.round("monthly_sip", plan.monthlySIP),
		YearlySIP:           r.round("yearly_sip", plan.yearlySIP),
		OneTimeInvestment:   r.round("one_time_investment", plan.oneTimeInvestment),
		FutureValueExisting: r.round("future_value_existing", plan.futureValueExisting),
		Shortfall:           r.round("shortfall", plan.shortfall),
	}
	if err := r.Err(); err != nil {
		return domain.GoalResult{}, err
	}

	if result.Funded() {
		s.logger.DebugContext(ctx, "goal already funded", "goal", goal, "shortfall", result.Shortfall)
	}

	result.Explanation = s.advisor.ExplainGoal(ctx, GoalPlan{
		Goal:                goal,
		Years:               input.YearsRemaining,
		TargetAmount:        result.TargetAmount,
		FutureValueExisting: result.FutureValueExisting,
		Shortfall:           result.Shortfall,
		MonthlySIP:          result.MonthlySIP,
		OneTimeInvestment:   result.OneTimeInvestment,
	})
	return result, nil
}

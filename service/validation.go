package service

import (
	"fmt"

	"wealth-planner/domain"
)

// validator records the first failed check; later checks are no-ops.
type validator struct {
	err error
}

func (v *validator) fail(field, format string, args ...any) {
	if v.err == nil {
		v.err = domain.NewValidationError(field, format, args...)
	}
}

func (v *validator) positive(field string, value float64) {
	if !(value > 0) {
		v.fail(field, "%s must be greater than 0", field)
	}
}

func (v *validator) nonNegative(field string, value float64) {
	if !(value >= 0) {
		v.fail(field, "%s must not be negative", field)
	}
}

func (v *validator) between(field string, value, min, max float64) {
	if !(value >= min && value <= max) {
		v.fail(field, "%s must be between %s and %s", field, formatBound(min), formatBound(max))
	}
}

func (v *validator) intBetween(field string, value, min, max int) {
	if value < min || value > max {
		v.fail(field, "%s must be between %d and %d", field, min, max)
	}
}

func formatBound(f float64) string {
	return fmt.Sprintf("%g", f)
}

func validateSIPGrowth(in domain.SIPGrowthInput) error {
	var v validator
	v.positive("monthly_investment", in.MonthlyInvestment)
	v.intBetween("period_years", in.PeriodYears, MinPeriodYears, MaxPeriodYears)
	v.between("expected_returns", in.ExpectedReturns, MinExpectedReturns, MaxExpectedReturns)
	v.between("growth_in_savings", in.GrowthInSavings, 0, MaxGrowthInSavings)
	return v.err
}

func validateSIPNeed(in domain.SIPNeedInput) error {
	var v validator
	v.positive("target_amount", in.TargetAmount)
	v.intBetween("period_years", in.PeriodYears, MinPeriodYears, MaxPeriodYears)
	v.between("expected_returns", in.ExpectedReturns, MinExpectedReturns, MaxExpectedReturns)
	v.between("inflation", in.Inflation, 0, MaxInflation)
	v.between("growth_in_savings", in.GrowthInSavings, 0, MaxGrowthInSavings)
	return v.err
}

func validateSIPDelay(in domain.SIPDelayInput) error {
	var v validator
	v.positive("monthly_investment", in.MonthlyInvestment)
	v.intBetween("period_years", in.PeriodYears, MinPeriodYears, MaxPeriodYears)
	v.between("expected_returns", in.ExpectedReturns, MinExpectedReturns, MaxExpectedReturns)
	v.intBetween("delay_months", in.DelayMonths, 1, MaxDelayMonths)
	return v.err
}

func validateSWP(in domain.SWPInput) error {
	var v validator
	v.positive("initial_investment", in.InitialInvestment)
	v.positive("monthly_withdrawal", in.MonthlyWithdrawal)
	v.between("expected_returns", in.ExpectedReturns, MinSWPReturns, MaxSWPReturns)
	v.between("yearly_increase", in.YearlyIncrease, 0, MaxSWPYearlyIncrease)
	v.intBetween("swp_start_years", in.SWPStartYears, 0, MaxSWPStartYears)
	return v.err
}

func validateRetirement(in domain.RetirementInput) error {
	var v validator
	v.intBetween("present_age", in.PresentAge, MinPresentAge, MaxAge)
	v.intBetween("retirement_age", in.RetirementAge, MinRetirementAge, MaxAge)
	v.positive("monthly_expenses", in.MonthlyExpenses)
	v.between("expected_returns", in.ExpectedReturns, MinExpectedReturns, MaxExpectedReturns)
	v.between("inflation", in.Inflation, 0, MaxInflation)
	v.between("growth_in_savings", in.GrowthInSavings, 0, MaxGrowthInSavings)
	v.nonNegative("existing_investments", in.ExistingInvestments)

	switch in.CorpusModel {
	case domain.CorpusAnnuity:
	case domain.CorpusDiscounted:
		v.intBetween("life_expectancy", in.LifeExpectancy, MinRetirementAge+1, MaxLifeExpectancy)
		v.between("post_retirement_inflation", in.PostRetirementInflation, 0, MaxInflation)
		v.between("retirement_kitty_returns", in.RetirementKittyReturns, 0, MaxKittyReturns)
	default:
		v.fail("corpus_model", "corpus_model must be %q or %q", domain.CorpusAnnuity, domain.CorpusDiscounted)
	}
	return v.err
}

func validateGoal(in domain.GoalInput) error {
	var v validator
	v.intBetween("years_remaining", in.YearsRemaining, MinPeriodYears, MaxPeriodYears)
	v.positive("cost_today", in.CostToday)
	v.between("inflation", in.Inflation, 0, MaxInflation)
	v.between("expected_returns", in.ExpectedReturns, MinExpectedReturns, MaxExpectedReturns)
	v.between("growth_in_savings", in.GrowthInSavings, 0, MaxGrowthInSavings)
	v.nonNegative("existing_investments", in.ExistingInvestments)
	return v.err
}

func validateCalculationType(v *validator, t domain.CalculationType) {
	if !t.IsValid() {
		v.fail("calculate_type", "calculate_type must be %q or %q", domain.PresentValue, domain.FutureValue)
	}
}

func validateSingleAmount(in domain.SingleAmountInput) error {
	var v validator
	validateCalculationType(&v, in.CalculateType)
	v.positive("amount", in.Amount)
	v.intBetween("years", in.Years, MinPeriodYears, MaxPeriodYears)
	v.between("inflation", in.Inflation, 0, MaxSingleAmountRate)
	return v.err
}

func validateIrregularCashFlow(in domain.IrregularCashFlowInput) error {
	var v validator
	validateCalculationType(&v, in.CalculateType)
	if len(in.CashFlows) == 0 {
		v.fail("cash_flows", "cash_flows must contain at least one cash flow")
	}
	for i, cf := range in.CashFlows {
		v.intBetween(fmt.Sprintf("cash_flows[%d].years", i), cf.Years, MinPeriodYears, MaxPeriodYears)
	}
	v.between("discount_rate", in.DiscountRate, 0, MaxDiscountRate)
	return v.err
}

func validateWeightedReturns(in domain.WeightedReturnsInput) error {
	var v validator
	v.intBetween("years", in.Years, MinPeriodYears, MaxPeriodYears)
	if len(in.Assets) == 0 {
		v.fail("assets", "assets must contain at least one asset")
	}
	for i, a := range in.Assets {
		v.positive(fmt.Sprintf("assets[%d].investment_amount", i), a.InvestmentAmount)
		v.between(fmt.Sprintf("assets[%d].expected_return", i), a.ExpectedReturn, MinExpectedReturns, MaxAssetReturn)
	}
	return v.err
}

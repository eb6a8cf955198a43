package service

import (
	"log/slog"
	"time"

	"wealth-planner/domain"
)

// FinancialService hosts the SIP and SWP calculators.
type FinancialService struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewFinancialService creates a FinancialService that dates SWP schedules
// from the current time.
func NewFinancialService(logger *slog.Logger) *FinancialService {
	return NewFinancialServiceWithClock(logger, time.Now)
}

// NewFinancialServiceWithClock is NewFinancialService with an explicit clock.
func NewFinancialServiceWithClock(logger *slog.Logger, now func() time.Time) *FinancialService {
	return &FinancialService{
		logger: logger.With("component", "financial"),
		now:    now,
	}
}

// SIPGrowth projects the value of a monthly SIP with an optional yearly step-up.
func (s *FinancialService) SIPGrowth(input domain.SIPGrowthInput) (domain.SIPGrowthResult, error) {
	if err := validateSIPGrowth(input); err != nil {
		return domain.SIPGrowthResult{}, err
	}

	years := float64(input.PeriodYears)
	futureValue := FutureValueSIP(input.MonthlyInvestment, input.ExpectedReturns, years, input.GrowthInSavings)
	totalInvested := TotalSIPInvested(input.MonthlyInvestment, years, input.GrowthInSavings)

	growthMultiple := 0.0
	if totalInvested > 0 {
		growthMultiple = futureValue / totalInvested
	}

	r := newRounder("sip growth")
	result := domain.SIPGrowthResult{
		FutureValue:    r.round("future_value", futureValue),
		TotalInvested:  r.round("total_invested", totalInvested),
		WealthGain:     r.round("wealth_gain", futureValue-totalInvested),
		GrowthMultiple: r.round("growth_multiple", growthMultiple),
	}
	if err := r.Err(); err != nil {
		return domain.SIPGrowthResult{}, err
	}
	return result, nil
}

// SIPNeed finds the monthly SIP that reaches an inflation-adjusted target.
func (s *FinancialService) SIPNeed(input domain.SIPNeedInput) (domain.SIPNeedResult, error) {
	if err := validateSIPNeed(input); err != nil {
		return domain.SIPNeedResult{}, err
	}

	years := float64(input.PeriodYears)
	target := InflationAdjustedAmount(input.TargetAmount, input.Inflation, years)
	monthly := SIPNeeded(target, input.ExpectedReturns, years, input.GrowthInSavings)
	projected := TotalSIPInvested(monthly, years, input.GrowthInSavings)

	growthMultiple := 0.0
	if projected > 0 {
		growthMultiple = target / projected
	}

	r := newRounder("sip need")
	result := domain.SIPNeedResult{
		MonthlySIP:           r.round("monthly_sip", monthly),
		TargetAmountAdjusted: r.round("target_amount_adjusted", target),
		ProjectedInvestment:  r.round("projected_investment", projected),
		GrowthMultiple:       r.round("growth_multiple", growthMultiple),
	}
	if err := r.Err(); err != nil {
		return domain.SIPNeedResult{}, err
	}
	return result, nil
}

// SIPDelay measures how much terminal value is lost by starting a SIP late.
func (s *FinancialService) SIPDelay(input domain.SIPDelayInput) (domain.SIPDelayResult, error) {
	if err := validateSIPDelay(input); err != nil {
		return domain.SIPDelayResult{}, err
	}

	withoutDelay := FutureValueSIP(input.MonthlyInvestment, input.ExpectedReturns, float64(input.PeriodYears), 0)

	// El retraso está en meses enteros, así que el periodo reducido también
	reducedMonths := input.PeriodYears*12 - input.DelayMonths
	withDelay := 0.0
	if reducedMonths > 0 {
		withDelay = FutureValueSIP(input.MonthlyInvestment, input.ExpectedReturns, float64(reducedMonths)/12, 0)
	}

	r := newRounder("sip delay")
	result := domain.SIPDelayResult{
		DelayCost:               r.round("delay_cost", withoutDelay-withDelay),
		FutureValueWithoutDelay: r.round("future_value_without_delay", withoutDelay),
		FutureValueWithDelay:    r.round("future_value_with_delay", withDelay),
	}
	if err := r.Err(); err != nil {
		return domain.SIPDelayResult{}, err
	}
	return result, nil
}

// SWP estimates how long a corpus sustains monthly withdrawals.
func (s *FinancialService) SWP(input domain.SWPInput) (domain.SWPResult, error) {
	if err := validateSWP(input); err != nil {
		return domain.SWPResult{}, err
	}

	// Si el SWP empieza más tarde, el capital sigue creciendo hasta entonces
	initial := FutureValueLumpsum(input.InitialInvestment, input.ExpectedReturns, float64(input.SWPStartYears))

	months, remaining := SWPDuration(
		initial,
		input.MonthlyWithdrawal,
		input.ExpectedReturns,
		input.YearlyIncrease,
		input.IncreaseWithdrawal,
	)
	if months == MaxSimulationMonths && remaining > 0 {
		s.logger.Debug("swp outlasted simulation horizon", "months", months, "remaining", remaining)
	}

	withdrawn := TotalWithdrawn(input.MonthlyWithdrawal, input.YearlyIncrease, input.IncreaseWithdrawal, months)

	start := s.now().Add(days(DaysPerYear * input.SWPStartYears))
	last := start.Add(days(DaysPerMonth * months))

	r := newRounder("swp")
	result := domain.SWPResult{
		PeriodEndValue:     r.round("period_end_value", remaining),
		TotalWithdrawn:     r.round("total_withdrawn", withdrawn),
		FullInstalments:    months,
		LastInstalmentDate: last.Format(LastInstalmentDateLayout),
	}
	if err := r.Err(); err != nil {
		return domain.SWPResult{}, err
	}
	return result, nil
}

func days(n int) time.Duration {
	return time.Duration(n) * 24 * time.Hour
}

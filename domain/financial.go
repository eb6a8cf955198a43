package domain

type SIPGrowthInput struct {
	MonthlyInvestment float64 `json:"monthly_investment"`
	PeriodYears       int     `json:"period_years"`
	ExpectedReturns   float64 `json:"expected_returns"`
	GrowthInSavings   float64 `json:"growth_in_savings"` // annual step-up %
}

type SIPGrowthResult struct {
	FutureValue    float64 `json:"future_value"`
	TotalInvested  float64 `json:"total_invested"`
	WealthGain     float64 `json:"wealth_gain"`
	GrowthMultiple float64 `json:"growth_multiple"`
}

type SIPNeedInput struct {
	TargetAmount    float64 `json:"target_amount"`
	PeriodYears     int     `json:"period_years"`
	ExpectedReturns float64 `json:"expected_returns"`
	Inflation       float64 `json:"inflation"`
	GrowthInSavings float64 `json:"growth_in_savings"`
}

// DefaultSIPNeedInput returns an input populated with the documented defaults.
func DefaultSIPNeedInput() SIPNeedInput {
	return SIPNeedInput{Inflation: 8}
}

type SIPNeedResult struct {
	MonthlySIP           float64 `json:"monthly_sip"`
	TargetAmountAdjusted float64 `json:"target_amount_adjusted"`
	ProjectedInvestment  float64 `json:"projected_investment"`
	GrowthMultiple       float64 `json:"growth_multiple"`
}

type SIPDelayInput struct {
	MonthlyInvestment float64 `json:"monthly_investment"`
	PeriodYears       int     `json:"period_years"`
	ExpectedReturns   float64 `json:"expected_returns"`
	DelayMonths       int     `json:"delay_months"`
}

type SIPDelayResult struct {
	DelayCost               float64 `json:"delay_cost"`
	FutureValueWithoutDelay float64 `json:"future_value_without_delay"`
	FutureValueWithDelay    float64 `json:"future_value_with_delay"`
}

type SWPInput struct {
	InitialInvestment  float64 `json:"initial_investment"`
	MonthlyWithdrawal  float64 `json:"monthly_withdrawal"`
	ExpectedReturns    float64 `json:"expected_returns"`
	YearlyIncrease     float64 `json:"yearly_increase"`
	IncreaseWithdrawal bool    `json:"increase_withdrawal"`
	SWPStartYears      int     `json:"swp_start_years"`
}

// DefaultSWPInput returns an input populated with the documented defaults.
func DefaultSWPInput() SWPInput {
	return SWPInput{YearlyIncrease: 10}
}

type SWPResult struct {
	PeriodEndValue     float64 `json:"period_end_value"`
	TotalWithdrawn     float64 `json:"total_withdrawn"`
	FullInstalments    int     `json:"full_instalments"`
	LastInstalmentDate string  `json:"last_instalment_date"` // DD-MonthName-YYYY
}

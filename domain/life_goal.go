package domain

// CorpusModel selects how the retirement corpus is valued.
type CorpusModel string

const (
	// CorpusAnnuity values a fixed 25-year retirement as a real-return annuity.
	CorpusAnnuity CorpusModel = "annuity"
	// CorpusDiscounted sums each retirement year's expense, grown by
	// post-retirement inflation and discounted at the kitty return.
	CorpusDiscounted CorpusModel = "discounted"
)

type RetirementInput struct {
	PresentAge          int         `json:"present_age"`
	RetirementAge       int         `json:"retirement_age"`
	MonthlyExpenses     float64     `json:"monthly_expenses"`
	ExpectedReturns     float64     `json:"expected_returns"`
	Inflation           float64     `json:"inflation"`
	GrowthInSavings     float64     `json:"growth_in_savings"`
	ExistingInvestments float64     `json:"existing_investments"`
	CorpusModel         CorpusModel `json:"corpus_model"`

	// Only read by the discounted corpus model.
	LifeExpectancy          int     `json:"life_expectancy"`
	PostRetirementInflation float64 `json:"post_retirement_inflation"`
	RetirementKittyReturns  float64 `json:"retirement_kitty_returns"`
}

// DefaultRetirementInput returns an input populated with the documented defaults.
func DefaultRetirementInput() RetirementInput {
	return RetirementInput{
		Inflation:               6,
		CorpusModel:             CorpusAnnuity,
		LifeExpectancy:          85,
		PostRetirementInflation: 6,
		RetirementKittyReturns:  8,
	}
}

type RetirementResult struct {
	RecommendedCorpus         float64     `json:"recommended_corpus"`
	MonthlySIP                float64     `json:"monthly_sip"`
	YearlySIP                 float64     `json:"yearly_sip"`
	OneTimeInvestment         float64     `json:"one_time_investment"`
	FutureValueExisting       float64     `json:"future_value_existing"`
	Shortfall                 float64     `json:"shortfall"`
	MonthlyExpensesRetirement float64     `json:"monthly_expenses_retirement"`
	YearsRemaining            int         `json:"years_remaining"`
	CorpusModel               CorpusModel `json:"corpus_model"`
	Explanation               string      `json:"explanation,omitempty"`
}

// GoalInput is shared by the education, marriage and other-goal calculators.
type GoalInput struct {
	GoalName            string  `json:"goal_name,omitempty"`
	YearsRemaining      int     `json:"years_remaining"`
	CostToday           float64 `json:"cost_today"`
	Inflation           float64 `json:"inflation"`
	ExpectedReturns     float64 `json:"expected_returns"`
	GrowthInSavings     float64 `json:"growth_in_savings"`
	ExistingInvestments float64 `json:"existing_investments"`
}

// DefaultEducationInput uses the higher education-cost inflation.
func DefaultEducationInput() GoalInput {
	return GoalInput{Inflation: 10}
}

func DefaultMarriageInput() GoalInput {
	return GoalInput{Inflation: 8}
}

func DefaultOtherGoalInput() GoalInput {
	return GoalInput{Inflation: 8}
}

type GoalResult struct {
	TargetAmount        float64 `json:"target_amount"`
	MonthlySIP          float64 `json:"monthly_sip"`
	YearlySIP           float64 `json:"yearly_sip"`
	OneTimeInvestment   float64 `json:"one_time_investment"`
	FutureValueExisting float64 `json:"future_value_existing"`
	Shortfall           float64 `json:"shortfall"`
	Explanation         string  `json:"explanation,omitempty"`
}

// Funded reports whether existing investments already cover the target.
func (r GoalResult) Funded() bool {
	return r.Shortfall <= 0
}

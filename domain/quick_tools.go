package domain

// CalculationType selects between discounting and compounding.
type CalculationType string

const (
	PresentValue CalculationType = "present_value"
	FutureValue  CalculationType = "future_value"
)

func (c CalculationType) IsValid() bool {
	return c == PresentValue || c == FutureValue
}

type SingleAmountInput struct {
	CalculateType CalculationType `json:"calculate_type"`
	Amount        float64         `json:"amount"`
	Years         int             `json:"years"`
	Inflation     float64         `json:"inflation"` // inflation or discount rate %
}

func DefaultSingleAmountInput() SingleAmountInput {
	return SingleAmountInput{Inflation: 8}
}

type SingleAmountResult struct {
	Result          float64         `json:"result"`
	CalculationType CalculationType `json:"calculation_type"`
}

type CashFlow struct {
	Amount float64 `json:"amount"`
	Years  int     `json:"years"` // years from now
}

type IrregularCashFlowInput struct {
	CalculateType CalculationType `json:"calculate_type"`
	CashFlows     []CashFlow      `json:"cash_flows"`
	DiscountRate  float64         `json:"discount_rate"`
}

type IrregularCashFlowResult struct {
	TotalValue      float64         `json:"total_value"`
	CalculationType CalculationType `json:"calculation_type"`
}

type AssetReturn struct {
	InvestmentAmount float64 `json:"investment_amount"`
	ExpectedReturn   float64 `json:"expected_return"`
}

type WeightedReturnsInput struct {
	Years  int           `json:"years"`
	Assets []AssetReturn `json:"assets"`
}

type WeightedReturnsResult struct {
	FutureValue    float64 `json:"future_value"`
	WeightedReturn float64 `json:"weighted_return"`
	TotalInvested  float64 `json:"total_invested"`
}

package service

import (
	"wealth-planner/domain"
)

// QuickToolsService hosts the single-amount, cash-flow and weighted-return tools.
type QuickToolsService struct{}

func NewQuickToolsService() *QuickToolsService {
	return &QuickToolsService{}
}

// SingleAmount discounts or compounds one amount, depending on the mode.
func (s *QuickToolsService) SingleAmount(input domain.SingleAmountInput) (domain.SingleAmountResult, error) {
	if err := validateSingleAmount(input); err != nil {
		return domain.SingleAmountResult{}, err
	}

	years := float64(input.Years)
	var value float64
	if input.CalculateType == domain.PresentValue {
		value = PresentValueLumpsum(input.Amount, input.Inflation, years)
	} else {
		value = FutureValueLumpsum(input.Amount, input.Inflation, years)
	}

	r := newRounder("single amount")
	result := domain.SingleAmountResult{
		Result:          r.round("result", value),
		CalculationType: input.CalculateType,
	}
	if err := r.Err(); err != nil {
		return domain.SingleAmountResult{}, err
	}
	return result, nil
}

// IrregularCashFlow values a series of cash flows either today or at the
// year of the furthest flow.
func (s *QuickToolsService) IrregularCashFlow(input domain.IrregularCashFlowInput) (domain.IrregularCashFlowResult, error) {
	if err := validateIrregularCashFlow(input); err != nil {
		return domain.IrregularCashFlowResult{}, err
	}

	total := 0.0
	if input.CalculateType == domain.PresentValue {
		for _, cf := range input.CashFlows {
			total += PresentValueLumpsum(cf.Amount, input.DiscountRate, float64(cf.Years))
		}
	} else {
		horizon := 0
		for _, cf := range input.CashFlows {
			horizon = max(horizon, cf.Years)
		}
		for _, cf := range input.CashFlows {
			total += FutureValueLumpsum(cf.Amount, input.DiscountRate, float64(horizon-cf.Years))
		}
	}

	r := newRounder("irregular cash flow")
	result := domain.IrregularCashFlowResult{
		TotalValue:      r.round("total_value", total),
		CalculationType: input.CalculateType,
	}
	if err := r.Err(); err != nil {
		return domain.IrregularCashFlowResult{}, err
	}
	return result, nil
}

// WeightedReturns blends asset returns by amount invested and projects the
// total at the blended rate.
func (s *QuickToolsService) WeightedReturns(input domain.WeightedReturnsInput) (domain.WeightedReturnsResult, error) {
	if err := validateWeightedReturns(input); err != nil {
		return domain.WeightedReturnsResult{}, err
	}

	totalInvested := 0.0
	for _, a := range input.Assets {
		totalInvested += a.InvestmentAmount
	}
	if totalInvested == 0 {
		return domain.WeightedReturnsResult{}, nil
	}

	weighted := 0.0
	for _, a := range input.Assets {
		weighted += a.InvestmentAmount / totalInvested * a.ExpectedReturn
	}
	futureValue := FutureValueLumpsum(totalInvested, weighted, float64(input.Years))

	r := newRounder("weighted returns")
	result := domain.WeightedReturnsResult{
		FutureValue:    r.round("future_value", futureValue),
		WeightedReturn: r.round("weighted_return", weighted),
		TotalInvested:  r.round("total_invested", totalInvested),
	}
	if err := r.Err(); err != nil {
		return domain.WeightedReturnsResult{}, err
	}
	return result, nil
}

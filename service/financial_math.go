package service

import "math"

// MonthsIn converts a period in years to a whole number of monthly
// installments, rounding to the nearest month.
func MonthsIn(years float64) int {
	return int(math.Round(years * 12))
}

// FutureValueLumpsum compounds pv annually at ratePct for years.
func FutureValueLumpsum(pv, ratePct, years float64) float64 {
	if years == 0 {
		return pv
	}
	return pv * math.Pow(1+ratePct/100, years)
}

// PresentValueLumpsum discounts fv annually at ratePct for years.
func PresentValueLumpsum(fv, ratePct, years float64) float64 {
	if years == 0 {
		return fv
	}
	return fv / math.Pow(1+ratePct/100, years)
}

// InflationAdjustedAmount is the cost of amount after years of inflation.
func InflationAdjustedAmount(amount, inflationPct, years float64) float64 {
	return FutureValueLumpsum(amount, inflationPct, years)
}

// FutureValueSIP values a monthly SIP paid at the start of each month.
// A non-zero growthPct steps the installment up once a year.
func FutureValueSIP(monthly, annualRatePct, years, growthPct float64) float64 {
	r := annualRatePct / 12 / 100
	n := MonthsIn(years)

	if growthPct == 0 {
		if r == 0 {
			return monthly * float64(n)
		}
		return monthly * ((math.Pow(1+r, float64(n)) - 1) / r) * (1 + r)
	}

	fv := 0.0
	current := monthly
	for month := 1; month <= n; month++ {
		if month > 1 && (month-1)%12 == 0 {
			current *= 1 + growthPct/100
		}
		fv += current * math.Pow(1+r, float64(n-month+1))
	}
	return fv
}

// SIPNeeded returns the starting monthly installment that grows to target.
// With a step-up there is no closed form, so the installment is found by
// bisection; FutureValueSIP must stay increasing in its first argument.
func SIPNeeded(target, annualRatePct, years, growthPct float64) float64 {
	n := MonthsIn(years)
	if n == 0 {
		return 0
	}

	if growthPct == 0 {
		r := annualRatePct / 12 / 100
		if r == 0 {
			return target / float64(n)
		}
		return target / (((math.Pow(1+r, float64(n)) - 1) / r) * (1 + r))
	}

	low, high := 0.0, target/float64(n)
	for i := 0; i < MaxBisectionIterations; i++ {
		mid := (low + high) / 2
		fv := FutureValueSIP(mid, annualRatePct, years, growthPct)
		if math.Abs(fv-target) < BisectionTolerance {
			return mid
		}
		if fv < target {
			low = mid
		} else {
			high = mid
		}
	}
	return (low + high) / 2
}

// TotalSIPInvested is the sum of installments paid, following the same
// yearly step-up schedule as FutureValueSIP.
func TotalSIPInvested(monthly, years, growthPct float64) float64 {
	n := MonthsIn(years)
	if growthPct == 0 {
		return monthly * float64(n)
	}

	total := 0.0
	current := monthly
	for month := 1; month <= n; month++ {
		if month > 1 && (month-1)%12 == 0 {
			current *= 1 + growthPct/100
		}
		total += current
	}
	return total
}

// RetirementCorpus values RetirementPeriodYears of expenses, inflated to the
// retirement date, as an ordinary annuity at the real post-retirement return.
func RetirementCorpus(monthlyExpenses, yearsToRetirement, inflationPct, postRetirementReturnPct float64) float64 {
	annualExpenses := InflationAdjustedAmount(monthlyExpenses, inflationPct, yearsToRetirement) * 12

	realReturn := (1+postRetirementReturnPct/100)/(1+inflationPct/100) - 1
	if realReturn <= 0 {
		return annualExpenses * RetirementPeriodYears
	}
	return annualExpenses * (1 - math.Pow(1+realReturn, -RetirementPeriodYears)) / realReturn
}

// RetirementCorpusDiscounted sums the expense of every retirement year,
// drawn at the start of the year. The first year's expense is today's
// expense inflated to retirement at preInflationPct; later years grow at
// postInflationPct and are discounted at kittyReturnPct.
func RetirementCorpusDiscounted(
	monthlyExpenses float64,
	yearsToRetirement float64,
	preInflationPct float64,
	postInflationPct float64,
	kittyReturnPct float64,
	retirementYears int,
) float64 {
	annualExpenses := InflationAdjustedAmount(monthlyExpenses, preInflationPct, yearsToRetirement) * 12

	corpus := 0.0
	for year := 0; year < retirementYears; year++ {
		expense := FutureValueLumpsum(annualExpenses, postInflationPct, float64(year))
		corpus += PresentValueLumpsum(expense, kittyReturnPct, float64(year))
	}
	return corpus
}

// SWPDuration simulates monthly withdrawals from initialAmount until the
// balance runs out or MaxSimulationMonths pass. It returns the number of
// withdrawals made and the balance left.
func SWPDuration(
	initialAmount float64,
	monthlyWithdrawal float64,
	annualReturnPct float64,
	yearlyIncreasePct float64,
	increaseEnabled bool,
) (int, float64) {
	r := annualReturnPct / 12 / 100
	balance := initialAmount
	withdrawal := monthlyWithdrawal
	months := 0

	for balance > 0 && months < MaxSimulationMonths {
		balance = balance*(1+r) - withdrawal
		months++

		if increaseEnabled && months%12 == 0 {
			withdrawal *= 1 + yearlyIncreasePct/100
		}

		if balance < 0 {
			balance = 0
			break
		}
	}
	return months, balance
}

// TotalWithdrawn sums the first months withdrawals of an SWP, applying the
// yearly increase from the 13th withdrawal on when enabled.
func TotalWithdrawn(monthlyWithdrawal, yearlyIncreasePct float64, increaseEnabled bool, months int) float64 {
	if !increaseEnabled {
		return monthlyWithdrawal * float64(months)
	}
	total := 0.0
	current := monthlyWithdrawal
	for month := 1; month <= months; month++ {
		if month > 1 && (month-1)%12 == 0 {
			current *= 1 + yearlyIncreasePct/100
		}
		total += current
	}
	return total
}

package service

import (
	"math"
	"testing"
)

func approxEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestFutureValueLumpsum(t *testing.T) {
	got := FutureValueLumpsum(100000, 10, 10)
	if !approxEqual(got, 259374.246, 0.001) {
		t.Errorf("expected 259374.246, got %.4f", got)
	}

	if got := FutureValueLumpsum(5000, 12, 0); got != 5000 {
		t.Errorf("zero years should return the amount unchanged, got %.4f", got)
	}
}

func TestLumpsumRoundTrip(t *testing.T) {
	cases := []struct {
		pv, rate, years float64
	}{
		{100000, 10, 10},
		{1, 0, 30},
		{2500.5, 7.25, 1},
		{987654.32, 30, 50},
	}

	for _, c := range cases {
		fv := FutureValueLumpsum(c.pv, c.rate, c.years)
		back := PresentValueLumpsum(fv, c.rate, c.years)
		if !approxEqual(back, c.pv, c.pv*1e-9) {
			t.Errorf("round trip of %.2f at %.2f%% over %.0f years gave %.6f", c.pv, c.rate, c.years, back)
		}
	}
}

func TestFutureValueSIP_ClosedForm(t *testing.T) {
	got := FutureValueSIP(10000, 12, 10, 0)

	r := 0.01
	want := 10000 * ((math.Pow(1+r, 120) - 1) / r) * (1 + r)
	if got != want {
		t.Errorf("expected closed form %.6f, got %.6f", want, got)
	}
	if !approxEqual(got, 2323390.76, 0.01) {
		t.Errorf("expected 2323390.76, got %.4f", got)
	}
}

func TestFutureValueSIP_ZeroRate(t *testing.T) {
	got := FutureValueSIP(1500, 0, 7, 0)
	if got != 1500*7*12 {
		t.Errorf("expected %.2f, got %.2f", 1500.0*7*12, got)
	}
}

func TestFutureValueSIP_StepUp(t *testing.T) {
	got := FutureValueSIP(10000, 12, 10, 10)
	if !approxEqual(got, 3374326.26, 0.01) {
		t.Errorf("expected 3374326.26, got %.4f", got)
	}

	flat := FutureValueSIP(10000, 12, 10, 0)
	if got <= flat {
		t.Errorf("step-up SIP %.2f should beat flat SIP %.2f", got, flat)
	}
}

func TestFutureValueSIP_FractionalYearsRoundToNearestMonth(t *testing.T) {
	// 1.04 años = 12.48 meses -> 12 cuotas
	if got, want := FutureValueSIP(1000, 0, 1.04, 0), 12000.0; got != want {
		t.Errorf("expected %.2f, got %.2f", want, got)
	}
	// 1.05 años = 12.6 meses -> 13 cuotas
	if got, want := FutureValueSIP(1000, 0, 1.05, 0), 13000.0; got != want {
		t.Errorf("expected %.2f, got %.2f", want, got)
	}
	if got := MonthsIn(19.5); got != 234 {
		t.Errorf("expected 234 months, got %d", got)
	}
}

func TestSIPNeeded_InvertsFlatSIP(t *testing.T) {
	targets := []float64{100000, 2500000, 10000000}
	for _, target := range targets {
		monthly := SIPNeeded(target, 12, 15, 0)
		fv := FutureValueSIP(monthly, 12, 15, 0)
		if !approxEqual(fv, target, 1e-6*target) {
			t.Errorf("target %.2f: SIP %.4f grows to %.4f", target, monthly, fv)
		}
	}
}

func TestSIPNeeded_ZeroRate(t *testing.T) {
	if got := SIPNeeded(120000, 0, 10, 0); got != 1000 {
		t.Errorf("expected 1000, got %.4f", got)
	}
}

func TestSIPNeeded_StepUpBisection(t *testing.T) {
	target := 5000000.0
	monthly := SIPNeeded(target, 12, 10, 10)

	if !approxEqual(monthly, 14817.77, 0.5) {
		t.Errorf("expected about 14817.77, got %.4f", monthly)
	}
	if fv := FutureValueSIP(monthly, 12, 10, 10); !approxEqual(fv, target, BisectionTolerance) {
		t.Errorf("bisection result grows to %.4f, want %.2f", fv, target)
	}
	if flat := SIPNeeded(target, 12, 10, 0); monthly >= flat {
		t.Errorf("step-up SIP %.2f should start below flat SIP %.2f", monthly, flat)
	}
}

func TestTotalSIPInvested(t *testing.T) {
	if got := TotalSIPInvested(2500, 20, 0); got != 2500*20*12 {
		t.Errorf("expected %.2f, got %.2f", 2500.0*20*12, got)
	}
	// 120000 + 132000 + 145200
	if got := TotalSIPInvested(10000, 3, 10); !approxEqual(got, 397200, 1e-6) {
		t.Errorf("expected 397200, got %.4f", got)
	}
}

func TestRetirementCorpus(t *testing.T) {
	got := RetirementCorpus(50000, 30, 6, 8)
	if !approxEqual(got, 68182470.89, 0.01) {
		t.Errorf("expected 68182470.89, got %.4f", got)
	}
}

func TestRetirementCorpus_NonPositiveRealReturn(t *testing.T) {
	annual := FutureValueLumpsum(10000, 8, 20) * 12
	got := RetirementCorpus(10000, 20, 8, 6)
	if !approxEqual(got, annual*RetirementPeriodYears, 1e-6) {
		t.Errorf("expected flat multiple %.2f, got %.2f", annual*RetirementPeriodYears, got)
	}
}

func TestRetirementCorpusDiscounted(t *testing.T) {
	// Con inflación igual al retorno, cada año vale lo mismo hoy
	annual := FutureValueLumpsum(40000, 6, 25) * 12
	got := RetirementCorpusDiscounted(40000, 25, 6, 7, 7, 20)
	if !approxEqual(got, annual*20, 1e-3) {
		t.Errorf("expected %.2f, got %.2f", annual*20, got)
	}

	// Retorno mayor que inflación reduce el corpus
	if cheaper := RetirementCorpusDiscounted(40000, 25, 6, 6, 9, 20); cheaper >= got {
		t.Errorf("higher kitty return should lower the corpus: %.2f >= %.2f", cheaper, got)
	}
}

func TestSWPDuration_Depletes(t *testing.T) {
	months, remaining := SWPDuration(100000, 10000, 2, 0, false)
	if months != 11 {
		t.Errorf("expected 11 months, got %d", months)
	}
	if remaining != 0 {
		t.Errorf("expected 0 remaining, got %.2f", remaining)
	}
}

func TestSWPDuration_UnsustainableWithdrawalStopsBeforeCap(t *testing.T) {
	// Retiro mayor que el retorno mensual máximo posible
	months, remaining := SWPDuration(500000, 20000, MaxSWPReturns, 0, false)
	if months >= MaxSimulationMonths {
		t.Errorf("expected depletion before %d months, got %d", MaxSimulationMonths, months)
	}
	if remaining != 0 {
		t.Errorf("expected 0 remaining, got %.2f", remaining)
	}
}

func TestSWPDuration_CapsAtHorizon(t *testing.T) {
	months, remaining := SWPDuration(10000000, 10000, 12, 0, false)
	if months != MaxSimulationMonths {
		t.Errorf("expected %d months, got %d", MaxSimulationMonths, months)
	}
	if remaining <= 10000000 {
		t.Errorf("balance should keep growing, got %.2f", remaining)
	}
}

func TestSWPDuration_YearlyIncrease(t *testing.T) {
	months, _ := SWPDuration(1000000, 10000, 8, 10, true)
	if months != 99 {
		t.Errorf("expected 99 months, got %d", months)
	}

	flat, _ := SWPDuration(1000000, 10000, 8, 10, false)
	if flat <= months {
		t.Errorf("flat withdrawals should last longer: %d <= %d", flat, months)
	}
}

func TestTotalWithdrawn(t *testing.T) {
	if got := TotalWithdrawn(1000, 10, false, 30); got != 30000 {
		t.Errorf("expected 30000, got %.2f", got)
	}
	// 12*1000 + 12*1100 + 6*1210
	if got := TotalWithdrawn(1000, 10, true, 30); !approxEqual(got, 32460, 1e-6) {
		t.Errorf("expected 32460, got %.4f", got)
	}
}

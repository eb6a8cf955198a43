package service

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"wealth-planner/domain"
)

// roundTo2Decimals redondea un float64 a 2 decimales
func roundTo2Decimals(value float64) float64 {
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}

// rounder rounds a set of named outputs, remembering the first value that
// is not a finite number so the calculation can fail as a whole.
type rounder struct {
	op  string
	err error
}

func newRounder(op string) *rounder {
	return &rounder{op: op}
}

func (r *rounder) round(name string, value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		if r.err == nil {
			r.err = &domain.InternalError{
				Op:  r.op,
				Err: fmt.Errorf("%s is not a finite number", name),
			}
		}
		return 0
	}
	return roundTo2Decimals(value)
}

func (r *rounder) Err() error {
	return r.err
}

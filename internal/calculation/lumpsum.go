package calculation

import (
	"math"

	"github.com/rgehrsitz/fincalc/internal/domain"
)

// Lumpsum projects a one-time investment with monthly compounding. When an
// inflation rate is supplied the result also carries the value in today's money.
func Lumpsum(in domain.LumpsumInput) (*domain.LumpsumResult, error) {
	op := string(domain.KindLumpsum)
	check := newInputCheck(op)
	check.nonNegative("amount", in.Amount)
	check.nonNegativeInt("years", in.Years)
	check.horizon("years", in.Years)
	check.rate("annual_return", in.AnnualReturn)
	if in.Inflation != nil {
		check.rate("inflation", *in.Inflation)
	}
	if check.err != nil {
		return nil, check.err
	}

	months := float64(in.Years * 12)
	rm := effectiveMonthlyRate(f64(in.AnnualReturn))
	futureValue := f64(in.Amount) * math.Pow(1+rm, months)
	if err := checkFinite(op, futureValue); err != nil {
		return nil, err
	}

	result := &domain.LumpsumResult{FutureValue: money(futureValue)}

	if in.Inflation != nil {
		im := effectiveMonthlyRate(f64(*in.Inflation))
		realValue := futureValue / math.Pow(1+im, months)
		if err := checkFinite(op, realValue); err != nil {
			return nil, err
		}
		adjusted := money(realValue)
		result.InflationAdjustedValue = &adjusted
	}

	return result, nil
}

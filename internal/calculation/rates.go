package calculation

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// MaxTenureMonths caps the tenure search at 60 years
const MaxTenureMonths = 60 * 12

// MaxHorizonYears bounds every duration input, keeping month counts far from
// int overflow and the monthly loops short
const (
	MaxHorizonYears  = 100
	MaxHorizonMonths = MaxHorizonYears * 12
)

// effectiveMonthlyRate is the monthly rate that compounds to annualPct over 12 months
func effectiveMonthlyRate(annualPct float64) float64 {
	return math.Pow(1+annualPct/100, 1.0/12) - 1
}

// nominalMonthlyRate is the annual rate split evenly across months. It is what
// EMI and the annuity-due sizing use and must not be swapped for the effective rate.
func nominalMonthlyRate(annualPct float64) float64 {
	return annualPct / 100 / 12
}

// annuityDueFactor is the future value of 1 paid at the start of each of m periods at rate r
func annuityDueFactor(r float64, m int) float64 {
	return (math.Pow(1+r, float64(m)) - 1) / r * (1 + r)
}

// annualGrowth compounds once per year
func annualGrowth(annualPct float64, years int) float64 {
	return math.Pow(1+annualPct/100, float64(years))
}

// sipFutureValue grows a fixed contribution made at the start of every month
func sipFutureValue(contribution float64, months int, annualReturn float64) float64 {
	rm := effectiveMonthlyRate(annualReturn)
	corpus := 0.0
	for i := 0; i < months; i++ {
		corpus = (corpus + contribution) * (1 + rm)
	}
	return corpus
}

// roundHalfEven rounds the exact binary value of x, ties to even
func roundHalfEven(x float64, places int32) decimal.Decimal {
	d, err := decimal.NewFromString(strconv.FormatFloat(x, 'f', 64, 64))
	if err != nil {
		return decimal.NewFromFloat(x).RoundBank(places)
	}
	return d.RoundBank(places)
}

func money(x float64) decimal.Decimal {
	return roundHalfEven(x, 0)
}

func ratio(x float64) decimal.Decimal {
	return roundHalfEven(x, 2)
}

func f64(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

// checkFinite keeps NaN and Inf from leaving the engine
func checkFinite(op string, values ...float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return invalid(op, "", "inputs produce a result outside floating point range")
		}
	}
	return nil
}

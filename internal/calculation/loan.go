package calculation

import (
	"math"

	"github.com/rgehrsitz/fincalc/internal/domain"
)

// LoanEMI computes the equated monthly installment of an amortizing loan using
// the nominal monthly rate. A 0% loan is repaid in equal principal installments.
func LoanEMI(in domain.LoanInput) (*domain.LoanResult, error) {
	op := string(domain.KindEMI)
	check := newInputCheck(op)
	check.nonNegative("principal", in.Principal)
	if in.TenureYears <= 0 {
		check.fail("tenure_years", "must be positive")
	}
	check.horizon("tenure_years", in.TenureYears)
	check.nonNegative("annual_rate", in.AnnualRate)
	if check.err != nil {
		return nil, check.err
	}

	principal := f64(in.Principal)
	r := nominalMonthlyRate(f64(in.AnnualRate))
	n := in.TenureYears * 12

	var payment float64
	if r == 0 {
		payment = principal / float64(n)
	} else {
		growth := math.Pow(1+r, float64(n))
		payment = principal * r * growth / (growth - 1)
	}

	totalPayment := payment * float64(n)
	totalInterest := totalPayment - principal

	if err := checkFinite(op, payment, totalPayment); err != nil {
		return nil, err
	}

	return &domain.LoanResult{
		Payment:       money(payment),
		TotalPayment:  money(totalPayment),
		TotalInterest: money(totalInterest),
	}, nil
}

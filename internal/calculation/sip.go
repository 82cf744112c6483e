package calculation

import (
	"github.com/rgehrsitz/fincalc/internal/domain"
)

// SIPFutureValue projects a fixed monthly contribution invested at the start of each month
func SIPFutureValue(in domain.SIPInput) (*domain.SIPResult, error) {
	op := string(domain.KindSIP)
	check := newInputCheck(op)
	check.nonNegative("monthly_contribution", in.MonthlyContribution)
	check.nonNegativeInt("years", in.Years)
	check.horizon("years", in.Years)
	check.rate("annual_return", in.AnnualReturn)
	if check.err != nil {
		return nil, check.err
	}

	contribution := f64(in.MonthlyContribution)
	months := in.Years * 12

	corpus := sipFutureValue(contribution, months, f64(in.AnnualReturn))
	totalInvested := contribution * float64(months)

	return sipResult(op, corpus, totalInvested)
}

// StepUpSIPFutureValue projects a monthly contribution that grows by AnnualStepUp
// percent at the start of every contribution year (months 13, 25, ...)
func StepUpSIPFutureValue(in domain.StepUpSIPInput) (*domain.SIPResult, error) {
	op := string(domain.KindStepUpSIP)
	check := newInputCheck(op)
	check.nonNegative("monthly_contribution", in.MonthlyContribution)
	check.nonNegativeInt("years", in.Years)
	check.horizon("years", in.Years)
	check.rate("annual_return", in.AnnualReturn)
	check.rate("annual_step_up", in.AnnualStepUp)
	if check.err != nil {
		return nil, check.err
	}

	rm := effectiveMonthlyRate(f64(in.AnnualReturn))
	stepUp := 1 + f64(in.AnnualStepUp)/100
	totalMonths := in.Years * 12

	corpus := 0.0
	totalInvested := 0.0
	current := f64(in.MonthlyContribution)
	for month := 1; month <= totalMonths; month++ {
		if month > 1 && (month-1)%12 == 0 {
			current *= stepUp
		}
		corpus = (corpus + current) * (1 + rm)
		totalInvested += current
	}

	return sipResult(op, corpus, totalInvested)
}

func sipResult(op string, corpus, totalInvested float64) (*domain.SIPResult, error) {
	multiple := 0.0
	if totalInvested != 0 {
		multiple = corpus / totalInvested
	}
	if err := checkFinite(op, corpus, totalInvested, multiple); err != nil {
		return nil, err
	}
	return &domain.SIPResult{
		MaturityValue: money(corpus),
		TotalInvested: money(totalInvested),
		WealthGained:  money(corpus - totalInvested),
		Multiple:      ratio(multiple),
	}, nil
}

// SIPTenure finds the number of months a fixed contribution needs to reach
// TargetAmount. The search stops at MaxTenureMonths and returns whatever was
// accumulated by then; the result is flagged Capped in that case.
func SIPTenure(in domain.TenureInput) (*domain.TenureResult, error) {
	op := string(domain.KindTenure)
	check := newInputCheck(op)
	check.nonNegative("target_amount", in.TargetAmount)
	check.nonNegative("monthly_contribution", in.MonthlyContribution)
	check.rate("annual_return", in.AnnualReturn)
	if check.err != nil {
		return nil, check.err
	}

	rm := effectiveMonthlyRate(f64(in.AnnualReturn))
	target := f64(in.TargetAmount)
	contribution := f64(in.MonthlyContribution)

	corpus := 0.0
	totalInvested := 0.0
	months := 0
	for corpus < target && months < MaxTenureMonths {
		corpus = (corpus + contribution) * (1 + rm)
		totalInvested += contribution
		months++
	}

	if err := checkFinite(op, corpus, totalInvested); err != nil {
		return nil, err
	}

	return &domain.TenureResult{
		YearsRequired: (months + 11) / 12,
		TotalMonths:   months,
		TotalInvested: money(totalInvested),
		FinalCorpus:   money(corpus),
		Capped:        corpus < target,
	}, nil
}

// CostOfDelay compares a SIP started today with the same SIP started DelayMonths
// later and held to the same end date. A delay at or beyond the full duration
// leaves nothing to invest, so the late side is all zeros, amount invested
// included; it is never reported as a negative contribution count.
func CostOfDelay(in domain.CostOfDelayInput) (*domain.CostOfDelayResult, error) {
	op := string(domain.KindCostOfDelay)
	check := newInputCheck(op)
	check.nonNegative("monthly_contribution", in.MonthlyContribution)
	check.nonNegativeInt("years", in.Years)
	check.horizon("years", in.Years)
	check.rate("annual_return", in.AnnualReturn)
	check.nonNegativeInt("delay_months", in.DelayMonths)
	check.horizonMonths("delay_months", in.DelayMonths)
	if check.err != nil {
		return nil, check.err
	}

	contribution := f64(in.MonthlyContribution)
	annualReturn := f64(in.AnnualReturn)
	totalMonths := in.Years * 12
	lateMonths := totalMonths - in.DelayMonths
	if lateMonths < 0 {
		lateMonths = 0
	}

	fvNow := sipFutureValue(contribution, totalMonths, annualReturn)
	fvLate := sipFutureValue(contribution, lateMonths, annualReturn)
	investedNow := contribution * float64(totalMonths)
	investedLate := contribution * float64(lateMonths)

	if err := checkFinite(op, fvNow, fvLate, investedNow, investedLate); err != nil {
		return nil, err
	}

	return &domain.CostOfDelayResult{
		StartNow: domain.SIPOutcome{
			MaturityValue:  money(fvNow),
			AmountInvested: money(investedNow),
			WealthGained:   money(fvNow - investedNow),
		},
		StartLate: domain.DelayedSIPOutcome{
			DelayMonths:    in.DelayMonths,
			MaturityValue:  money(fvLate),
			AmountInvested: money(investedLate),
			WealthGained:   money(fvLate - investedLate),
		},
		CostOfDelay: money(fvNow - fvLate),
	}, nil
}

package calculation

import (
	"math"

	"github.com/rgehrsitz/fincalc/internal/domain"
)

// RetirementGoal sizes the corpus needed to fund inflation-linked expenses from
// RetirementAge to LifeExpectancy and compares it with what existing savings and
// the current monthly saving will have grown to by retirement.
//
// The corpus is the present value, at retirement, of an annuity paying the first
// year's expenses for every retirement year, discounted at the real post-retirement
// return.
func RetirementGoal(in domain.RetirementInput) (*domain.RetirementResult, error) {
	op := string(domain.KindRetirement)
	check := newInputCheck(op)
	check.nonNegativeInt("current_age", in.CurrentAge)
	check.after("retirement_age", in.RetirementAge, "current_age", in.CurrentAge)
	check.horizon("retirement_age", in.RetirementAge-in.CurrentAge)
	check.after("life_expectancy", in.LifeExpectancy, "retirement_age", in.RetirementAge)
	check.horizon("life_expectancy", in.LifeExpectancy-in.RetirementAge)
	check.nonNegative("current_monthly_expense", in.CurrentMonthlyExpense)
	check.rate("inflation_rate", in.InflationRate)
	check.nonNegative("current_monthly_saving", in.CurrentMonthlySaving)
	check.nonNegative("existing_corpus", in.ExistingCorpus)
	check.nonZeroRate("pre_retirement_return", in.PreRetirementReturn)
	check.rate("post_retirement_return", in.PostRetirementReturn)
	if check.err != nil {
		return nil, check.err
	}

	yearsToRetirement := in.RetirementAge - in.CurrentAge
	retirementYears := in.LifeExpectancy - in.RetirementAge
	inflation := f64(in.InflationRate)
	preReturn := f64(in.PreRetirementReturn)

	monthlyExpense := f64(in.CurrentMonthlyExpense) * annualGrowth(inflation, yearsToRetirement)
	annualExpense := monthlyExpense * 12

	realReturn := (1+f64(in.PostRetirementReturn)/100)/(1+inflation/100) - 1
	if realReturn == 0 {
		return nil, invalid(op, "post_retirement_return", "must differ from inflation_rate, the real return is 0%")
	}
	corpusRequired := annualExpense * (1 - math.Pow(1+realReturn, -float64(retirementYears))) / realReturn

	existingAtRetirement := f64(in.ExistingCorpus) * annualGrowth(preReturn, yearsToRetirement)
	factor := annuityDueFactor(nominalMonthlyRate(preReturn), yearsToRetirement*12)
	savingAtRetirement := f64(in.CurrentMonthlySaving) * factor
	totalAvailable := existingAtRetirement + savingAtRetirement

	shortfall := math.Max(0, corpusRequired-totalAvailable)
	sipRequired, lumpsumRequired := 0.0, 0.0
	if shortfall > 0 {
		sipRequired = shortfall / factor
		lumpsumRequired = shortfall / annualGrowth(preReturn, yearsToRetirement)
	}

	if err := checkFinite(op, monthlyExpense, corpusRequired, totalAvailable, sipRequired, lumpsumRequired); err != nil {
		return nil, err
	}

	return &domain.RetirementResult{
		MonthlyExpenseAtRetirement: money(monthlyExpense),
		CorpusRequired:             money(corpusRequired),
		TotalAvailable:             money(totalAvailable),
		Shortfall:                  money(shortfall),
		InvestmentRequired: domain.RetirementInvestment{
			SIP:     money(sipRequired),
			Lumpsum: money(lumpsumRequired),
		},
	}, nil
}

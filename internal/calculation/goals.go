package calculation

import (
	"math"

	"github.com/rgehrsitz/fincalc/internal/domain"
)

// goalFunding is what it takes to close the gap between a future cost and the
// projected value of existing savings
type goalFunding struct {
	gap          float64
	lumpSumToday float64
	monthlySIP   float64
}

// fundGoalGap sizes a lump sum invested today (annual compounding) and a monthly
// SIP paid at the start of each month (nominal monthly rate) that would each
// cover the gap on their own. A covered goal needs neither.
func fundGoalGap(required, existingAtGoal, annualReturn float64, years int) goalFunding {
	gap := math.Max(0, required-existingAtGoal)
	if gap == 0 {
		return goalFunding{}
	}
	return goalFunding{
		gap:          gap,
		lumpSumToday: gap / annualGrowth(annualReturn, years),
		monthlySIP:   gap / annuityDueFactor(nominalMonthlyRate(annualReturn), years*12),
	}
}

// EducationGoal sizes the saving needed for an education that starts at
// CollegeAge and lasts EducationDurationYears, with the yearly cost rising by
// EducationInflation both before and during the course.
func EducationGoal(in domain.EducationInput) (*domain.EducationResult, error) {
	op := string(domain.KindEducation)
	check := newInputCheck(op)
	check.nonNegativeInt("child_age", in.ChildAge)
	check.after("college_age", in.CollegeAge, "child_age", in.ChildAge)
	check.horizon("college_age", in.CollegeAge-in.ChildAge)
	check.nonNegativeInt("education_duration_years", in.EducationDurationYears)
	check.horizon("education_duration_years", in.EducationDurationYears)
	check.nonNegative("annual_cost_today", in.AnnualCostToday)
	check.nonNegative("existing_corpus", in.ExistingCorpus)
	check.nonZeroRate("investment_return", in.InvestmentReturn)
	check.rate("education_inflation", in.EducationInflation)
	if check.err != nil {
		return nil, check.err
	}

	yearsToCollege := in.CollegeAge - in.ChildAge
	inflation := f64(in.EducationInflation)
	investmentReturn := f64(in.InvestmentReturn)

	costAtStart := f64(in.AnnualCostToday) * annualGrowth(inflation, yearsToCollege)
	totalRequired := 0.0
	for year := 0; year < in.EducationDurationYears; year++ {
		totalRequired += costAtStart * annualGrowth(inflation, year)
	}

	existingAtCollege := f64(in.ExistingCorpus) * annualGrowth(investmentReturn, yearsToCollege)
	funding := fundGoalGap(totalRequired, existingAtCollege, investmentReturn, yearsToCollege)

	if err := checkFinite(op, totalRequired, existingAtCollege, funding.lumpSumToday, funding.monthlySIP); err != nil {
		return nil, err
	}

	return &domain.EducationResult{
		GoalAtCollege: domain.EducationGoal{TotalRequired: money(totalRequired)},
		ExistingCorpus: domain.EducationCorpus{
			Today:          in.ExistingCorpus,
			ValueAtCollege: money(existingAtCollege),
		},
		InvestmentRequired: domain.InvestmentRequired{
			LumpSumToday: money(funding.lumpSumToday),
			MonthlySIP:   money(funding.monthlySIP),
		},
	}, nil
}

// MarriageGoal sizes the saving needed for a single cost due at MarriageAge
func MarriageGoal(in domain.MarriageInput) (*domain.MarriageResult, error) {
	op := string(domain.KindMarriage)
	check := newInputCheck(op)
	check.nonNegativeInt("current_age", in.CurrentAge)
	check.after("marriage_age", in.MarriageAge, "current_age", in.CurrentAge)
	check.horizon("marriage_age", in.MarriageAge-in.CurrentAge)
	check.nonNegative("marriage_cost_today", in.MarriageCostToday)
	check.nonNegative("existing_corpus", in.ExistingCorpus)
	check.nonZeroRate("investment_return", in.InvestmentReturn)
	check.rate("cost_inflation", in.CostInflation)
	if check.err != nil {
		return nil, check.err
	}

	yearsToGoal := in.MarriageAge - in.CurrentAge
	investmentReturn := f64(in.InvestmentReturn)

	goalAmount := f64(in.MarriageCostToday) * annualGrowth(f64(in.CostInflation), yearsToGoal)
	existingAtGoal := f64(in.ExistingCorpus) * annualGrowth(investmentReturn, yearsToGoal)
	funding := fundGoalGap(goalAmount, existingAtGoal, investmentReturn, yearsToGoal)

	if err := checkFinite(op, goalAmount, existingAtGoal, funding.lumpSumToday, funding.monthlySIP); err != nil {
		return nil, err
	}

	return &domain.MarriageResult{
		GoalAmount: money(goalAmount),
		ExistingCorpus: domain.GoalCorpus{
			Today:       in.ExistingCorpus,
			ValueAtGoal: money(existingAtGoal),
		},
		InvestmentRequired: domain.InvestmentRequired{
			LumpSumToday: money(funding.lumpSumToday),
			MonthlySIP:   money(funding.monthlySIP),
		},
	}, nil
}

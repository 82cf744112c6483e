package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// fieldSpec describes one input of a calculator form
type fieldSpec struct {
	Key      string
	Label    string
	Default  string
	Integer  bool
	Optional bool
}

func formFields(kind domain.CalculatorKind) []fieldSpec {
	switch kind {
	case domain.KindSIP:
		return []fieldSpec{
			{Key: "monthly_contribution", Label: "Monthly contribution", Default: "10000"},
			{Key: "years", Label: "Years", Default: "10", Integer: true},
			{Key: "annual_return", Label: "Annual return %", Default: "12"},
		}
	case domain.KindStepUpSIP:
		return []fieldSpec{
			{Key: "monthly_contribution", Label: "Monthly contribution", Default: "10000"},
			{Key: "years", Label: "Years", Default: "10", Integer: true},
			{Key: "annual_return", Label: "Annual return %", Default: "12"},
			{Key: "annual_step_up", Label: "Annual step-up %", Default: "10"},
		}
	case domain.KindEMI:
		return []fieldSpec{
			{Key: "principal", Label: "Loan amount", Default: "1000000"},
			{Key: "tenure_years", Label: "Tenure (years)", Default: "20", Integer: true},
			{Key: "annual_rate", Label: "Annual interest rate %", Default: "8.5"},
		}
	case domain.KindTenure:
		return []fieldSpec{
			{Key: "target_amount", Label: "Target amount", Default: "1000000"},
			{Key: "monthly_contribution", Label: "Monthly contribution", Default: "10000"},
			{Key: "annual_return", Label: "Annual return %", Default: "12"},
		}
	case domain.KindLumpsum:
		return []fieldSpec{
			{Key: "amount", Label: "Amount", Default: "100000"},
			{Key: "years", Label: "Years", Default: "10", Integer: true},
			{Key: "annual_return", Label: "Annual return %", Default: "12"},
			{Key: "inflation", Label: "Inflation % (optional)", Optional: true},
		}
	case domain.KindEducation:
		return []fieldSpec{
			{Key: "child_age", Label: "Child age", Default: "5", Integer: true},
			{Key: "college_age", Label: "College age", Default: "18", Integer: true},
			{Key: "education_duration_years", Label: "Course length (years)", Default: "4", Integer: true},
			{Key: "annual_cost_today", Label: "Annual cost today", Default: "500000"},
			{Key: "existing_corpus", Label: "Existing savings", Default: "0"},
			{Key: "investment_return", Label: "Investment return %", Default: "12"},
			{Key: "education_inflation", Label: "Education inflation %", Default: "8"},
		}
	case domain.KindRetirement:
		return []fieldSpec{
			{Key: "current_age", Label: "Current age", Default: "35", Integer: true},
			{Key: "retirement_age", Label: "Retirement age", Default: "60", Integer: true},
			{Key: "life_expectancy", Label: "Life expectancy", Default: "85", Integer: true},
			{Key: "current_monthly_expense", Label: "Monthly expense today", Default: "50000"},
			{Key: "inflation_rate", Label: "Inflation %", Default: "6"},
			{Key: "current_monthly_saving", Label: "Monthly saving", Default: "10000"},
			{Key: "existing_corpus", Label: "Existing savings", Default: "0"},
			{Key: "pre_retirement_return", Label: "Return before retirement %", Default: "12"},
			{Key: "post_retirement_return", Label: "Return after retirement %", Default: "8"},
		}
	case domain.KindMarriage:
		return []fieldSpec{
			{Key: "current_age", Label: "Current age", Default: "25", Integer: true},
			{Key: "marriage_age", Label: "Marriage age", Default: "30", Integer: true},
			{Key: "marriage_cost_today", Label: "Cost today", Default: "2000000"},
			{Key: "existing_corpus", Label: "Existing savings", Default: "0"},
			{Key: "investment_return", Label: "Investment return %", Default: "10"},
			{Key: "cost_inflation", Label: "Cost inflation %", Default: "6"},
		}
	case domain.KindCostOfDelay:
		return []fieldSpec{
			{Key: "monthly_contribution", Label: "Monthly contribution", Default: "10000"},
			{Key: "years", Label: "Years", Default: "10", Integer: true},
			{Key: "annual_return", Label: "Annual return %", Default: "12"},
			{Key: "delay_months", Label: "Delay (months)", Default: "12", Integer: true},
		}
	}
	return nil
}

// formValues parses raw input strings and keeps the first error
type formValues struct {
	raw map[string]string
	err error
}

func (f *formValues) dec(key string) decimal.Decimal {
	v, err := decimal.NewFromString(strings.TrimSpace(f.raw[key]))
	if err != nil && f.err == nil {
		f.err = fmt.Errorf("%s: not a number", key)
	}
	return v
}

func (f *formValues) optionalDec(key string) *decimal.Decimal {
	if strings.TrimSpace(f.raw[key]) == "" {
		return nil
	}
	v := f.dec(key)
	return &v
}

func (f *formValues) integer(key string) int {
	v, err := strconv.Atoi(strings.TrimSpace(f.raw[key]))
	if err != nil && f.err == nil {
		f.err = fmt.Errorf("%s: not a whole number", key)
	}
	return v
}

// buildCalculation turns the form contents into an engine input
func buildCalculation(kind domain.CalculatorKind, raw map[string]string) (*domain.Calculation, error) {
	f := &formValues{raw: raw}
	calc := &domain.Calculation{Name: kind.Title()}

	switch kind {
	case domain.KindSIP:
		calc.SIP = &domain.SIPInput{
			MonthlyContribution: f.dec("monthly_contribution"),
			Years:               f.integer("years"),
			AnnualReturn:        f.dec("annual_return"),
		}
	case domain.KindStepUpSIP:
		calc.StepUpSIP = &domain.StepUpSIPInput{
			MonthlyContribution: f.dec("monthly_contribution"),
			Years:               f.integer("years"),
			AnnualReturn:        f.dec("annual_return"),
			AnnualStepUp:        f.dec("annual_step_up"),
		}
	case domain.KindEMI:
		calc.EMI = &domain.LoanInput{
			Principal:   f.dec("principal"),
			TenureYears: f.integer("tenure_years"),
			AnnualRate:  f.dec("annual_rate"),
		}
	case domain.KindTenure:
		calc.Tenure = &domain.TenureInput{
			TargetAmount:        f.dec("target_amount"),
			MonthlyContribution: f.dec("monthly_contribution"),
			AnnualReturn:        f.dec("annual_return"),
		}
	case domain.KindLumpsum:
		calc.Lumpsum = &domain.LumpsumInput{
			Amount:       f.dec("amount"),
			Years:        f.integer("years"),
			AnnualReturn: f.dec("annual_return"),
			Inflation:    f.optionalDec("inflation"),
		}
	case domain.KindEducation:
		calc.Education = &domain.EducationInput{
			ChildAge:               f.integer("child_age"),
			CollegeAge:             f.integer("college_age"),
			EducationDurationYears: f.integer("education_duration_years"),
			AnnualCostToday:        f.dec("annual_cost_today"),
			ExistingCorpus:         f.dec("existing_corpus"),
			InvestmentReturn:       f.dec("investment_return"),
			EducationInflation:     f.dec("education_inflation"),
		}
	case domain.KindRetirement:
		calc.Retirement = &domain.RetirementInput{
			CurrentAge:            f.integer("current_age"),
			RetirementAge:         f.integer("retirement_age"),
			LifeExpectancy:        f.integer("life_expectancy"),
			CurrentMonthlyExpense: f.dec("current_monthly_expense"),
			InflationRate:         f.dec("inflation_rate"),
			CurrentMonthlySaving:  f.dec("current_monthly_saving"),
			ExistingCorpus:        f.dec("existing_corpus"),
			PreRetirementReturn:   f.dec("pre_retirement_return"),
			PostRetirementReturn:  f.dec("post_retirement_return"),
		}
	case domain.KindMarriage:
		calc.Marriage = &domain.MarriageInput{
			CurrentAge:        f.integer("current_age"),
			MarriageAge:       f.integer("marriage_age"),
			MarriageCostToday: f.dec("marriage_cost_today"),
			ExistingCorpus:    f.dec("existing_corpus"),
			InvestmentReturn:  f.dec("investment_return"),
			CostInflation:     f.dec("cost_inflation"),
		}
	case domain.KindCostOfDelay:
		calc.CostOfDelay = &domain.CostOfDelayInput{
			MonthlyContribution: f.dec("monthly_contribution"),
			Years:               f.integer("years"),
			AnnualReturn:        f.dec("annual_return"),
			DelayMonths:         f.integer("delay_months"),
		}
	default:
		return nil, fmt.Errorf("unknown calculator: %s", kind)
	}

	if f.err != nil {
		return nil, f.err
	}
	return calc, nil
}

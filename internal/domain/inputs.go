package domain

import (
	"github.com/shopspring/decimal"
)

// Rates are annual percentages (12 means 12%) unless the field name says monthly.
// Durations named years are converted to months internally.

// SIPInput describes a fixed monthly contribution plan
type SIPInput struct {
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`
	Years               int             `yaml:"years" json:"years"`
	AnnualReturn        decimal.Decimal `yaml:"annual_return" json:"annual_return"`
}

// StepUpSIPInput describes a monthly contribution that grows once a year
type StepUpSIPInput struct {
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`
	Years               int             `yaml:"years" json:"years"`
	AnnualReturn        decimal.Decimal `yaml:"annual_return" json:"annual_return"`
	AnnualStepUp        decimal.Decimal `yaml:"annual_step_up" json:"annual_step_up"`
}

// LoanInput describes an amortizing loan
type LoanInput struct {
	Principal   decimal.Decimal `yaml:"principal" json:"principal"`
	TenureYears int             `yaml:"tenure_years" json:"tenure_years"`
	AnnualRate  decimal.Decimal `yaml:"annual_rate" json:"annual_rate"`
}

// TenureInput asks how long a monthly contribution needs to reach a target
type TenureInput struct {
	TargetAmount        decimal.Decimal `yaml:"target_amount" json:"target_amount"`
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`
	AnnualReturn        decimal.Decimal `yaml:"annual_return" json:"annual_return"`
}

// LumpsumInput describes a one-time investment. Inflation is optional: nil means
// no real value is requested, while a zero value means 0% inflation.
type LumpsumInput struct {
	Amount       decimal.Decimal  `yaml:"amount" json:"amount"`
	Years        int              `yaml:"years" json:"years"`
	AnnualReturn decimal.Decimal  `yaml:"annual_return" json:"annual_return"`
	Inflation    *decimal.Decimal `yaml:"inflation,omitempty" json:"inflation,omitempty"`
}

// EducationInput describes a multi-year education goal for a child
type EducationInput struct {
	ChildAge               int             `yaml:"child_age" json:"child_age"`
	CollegeAge             int             `yaml:"college_age" json:"college_age"`
	EducationDurationYears int             `yaml:"education_duration_years" json:"education_duration_years"`
	AnnualCostToday        decimal.Decimal `yaml:"annual_cost_today" json:"annual_cost_today"`
	ExistingCorpus         decimal.Decimal `yaml:"existing_corpus" json:"existing_corpus"`
	InvestmentReturn       decimal.Decimal `yaml:"investment_return" json:"investment_return"`
	EducationInflation     decimal.Decimal `yaml:"education_inflation" json:"education_inflation"`
}

// RetirementInput describes the household position ahead of retirement
type RetirementInput struct {
	CurrentAge            int             `yaml:"current_age" json:"current_age"`
	RetirementAge         int             `yaml:"retirement_age" json:"retirement_age"`
	LifeExpectancy        int             `yaml:"life_expectancy" json:"life_expectancy"`
	CurrentMonthlyExpense decimal.Decimal `yaml:"current_monthly_expense" json:"current_monthly_expense"`
	InflationRate         decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`
	CurrentMonthlySaving  decimal.Decimal `yaml:"current_monthly_saving" json:"current_monthly_saving"`
	ExistingCorpus        decimal.Decimal `yaml:"existing_corpus" json:"existing_corpus"`
	PreRetirementReturn   decimal.Decimal `yaml:"pre_retirement_return" json:"pre_retirement_return"`
	PostRetirementReturn  decimal.Decimal `yaml:"post_retirement_return" json:"post_retirement_return"`
}

// MarriageInput describes a single future lump cost
type MarriageInput struct {
	CurrentAge        int             `yaml:"current_age" json:"current_age"`
	MarriageAge       int             `yaml:"marriage_age" json:"marriage_age"`
	MarriageCostToday decimal.Decimal `yaml:"marriage_cost_today" json:"marriage_cost_today"`
	ExistingCorpus    decimal.Decimal `yaml:"existing_corpus" json:"existing_corpus"`
	InvestmentReturn  decimal.Decimal `yaml:"investment_return" json:"investment_return"`
	CostInflation     decimal.Decimal `yaml:"cost_inflation" json:"cost_inflation"`
}

// CostOfDelayInput compares starting a SIP now against starting it later
type CostOfDelayInput struct {
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`
	Years               int             `yaml:"years" json:"years"`
	AnnualReturn        decimal.Decimal `yaml:"annual_return" json:"annual_return"`
	DelayMonths         int             `yaml:"delay_months" json:"delay_months"`
}

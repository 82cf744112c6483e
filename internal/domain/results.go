package domain

import (
	"github.com/shopspring/decimal"
)

// SIPResult is shared by the plain and step-up SIP calculators
type SIPResult struct {
	MaturityValue decimal.Decimal `yaml:"maturity_value" json:"maturity_value"`
	TotalInvested decimal.Decimal `yaml:"total_invested" json:"total_invested"`
	WealthGained  decimal.Decimal `yaml:"wealth_gained" json:"wealth_gained"`
	Multiple      decimal.Decimal `yaml:"multiple" json:"multiple"` // maturity / invested, 0 when nothing was invested
}

// LoanResult holds the amortized payment breakdown
type LoanResult struct {
	Payment       decimal.Decimal `yaml:"payment" json:"payment"`
	TotalPayment  decimal.Decimal `yaml:"total_payment" json:"total_payment"`
	TotalInterest decimal.Decimal `yaml:"total_interest" json:"total_interest"`
}

// TenureResult holds the time needed to reach a target
type TenureResult struct {
	YearsRequired int             `yaml:"years_required" json:"years_required"`
	TotalMonths   int             `yaml:"total_months" json:"total_months"`
	TotalInvested decimal.Decimal `yaml:"total_invested" json:"total_invested"`
	FinalCorpus   decimal.Decimal `yaml:"final_corpus" json:"final_corpus"`

	// Capped is set when the search stopped at the month cap without reaching the target
	Capped bool `yaml:"-" json:"-"`
}

// LumpsumResult holds the projected value of a one-time investment
type LumpsumResult struct {
	FutureValue            decimal.Decimal  `yaml:"future_value" json:"future_value"`
	InflationAdjustedValue *decimal.Decimal `yaml:"inflation_adjusted_value,omitempty" json:"inflation_adjusted_value,omitempty"`
}

// InvestmentRequired is the additional saving needed to close a goal gap
type InvestmentRequired struct {
	LumpSumToday decimal.Decimal `yaml:"lump_sum_today" json:"lump_sum_today"`
	MonthlySIP   decimal.Decimal `yaml:"monthly_sip" json:"monthly_sip"`
}

// EducationGoal is the inflated cost of the full education
type EducationGoal struct {
	TotalRequired decimal.Decimal `yaml:"total_required" json:"total_required"`
}

// EducationCorpus echoes the existing savings and their value when college starts
type EducationCorpus struct {
	Today          decimal.Decimal `yaml:"today" json:"today"`
	ValueAtCollege decimal.Decimal `yaml:"value_at_college" json:"value_at_college"`
}

// EducationResult is the funding plan for an education goal
type EducationResult struct {
	GoalAtCollege      EducationGoal      `yaml:"goal_at_college" json:"goal_at_college"`
	ExistingCorpus     EducationCorpus    `yaml:"existing_corpus" json:"existing_corpus"`
	InvestmentRequired InvestmentRequired `yaml:"investment_required" json:"investment_required"`
}

// RetirementInvestment is the extra saving needed to close a retirement shortfall
type RetirementInvestment struct {
	SIP     decimal.Decimal `yaml:"sip" json:"sip"`
	Lumpsum decimal.Decimal `yaml:"lumpsum" json:"lumpsum"`
}

// RetirementResult is the funding plan for retirement
type RetirementResult struct {
	MonthlyExpenseAtRetirement decimal.Decimal      `yaml:"monthly_expense_at_retirement" json:"monthly_expense_at_retirement"`
	CorpusRequired             decimal.Decimal      `yaml:"corpus_required" json:"corpus_required"`
	TotalAvailable             decimal.Decimal      `yaml:"total_available" json:"total_available"`
	Shortfall                  decimal.Decimal      `yaml:"shortfall" json:"shortfall"`
	InvestmentRequired         RetirementInvestment `yaml:"investment_required" json:"investment_required"`
}

// GoalCorpus echoes the existing savings and their value on the goal date
type GoalCorpus struct {
	Today       decimal.Decimal `yaml:"today" json:"today"`
	ValueAtGoal decimal.Decimal `yaml:"value_at_goal" json:"value_at_goal"`
}

// MarriageResult is the funding plan for a marriage goal
type MarriageResult struct {
	GoalAmount         decimal.Decimal    `yaml:"goal_amount" json:"goal_amount"`
	ExistingCorpus     GoalCorpus         `yaml:"existing_corpus" json:"existing_corpus"`
	InvestmentRequired InvestmentRequired `yaml:"investment_required" json:"investment_required"`
}

// SIPOutcome is one side of a cost-of-delay comparison
type SIPOutcome struct {
	MaturityValue  decimal.Decimal `yaml:"maturity_value" json:"maturity_value"`
	AmountInvested decimal.Decimal `yaml:"amount_invested" json:"amount_invested"`
	WealthGained   decimal.Decimal `yaml:"wealth_gained" json:"wealth_gained"`
}

// DelayedSIPOutcome is the late-start side of a cost-of-delay comparison
type DelayedSIPOutcome struct {
	DelayMonths    int             `yaml:"delay_months" json:"delay_months"`
	MaturityValue  decimal.Decimal `yaml:"maturity_value" json:"maturity_value"`
	AmountInvested decimal.Decimal `yaml:"amount_invested" json:"amount_invested"`
	WealthGained   decimal.Decimal `yaml:"wealth_gained" json:"wealth_gained"`
}

// CostOfDelayResult compares starting now against starting late
type CostOfDelayResult struct {
	StartNow    SIPOutcome        `yaml:"start_now" json:"start_now"`
	StartLate   DelayedSIPOutcome `yaml:"start_late" json:"start_late"`
	CostOfDelay decimal.Decimal   `yaml:"cost_of_delay" json:"cost_of_delay"`
}

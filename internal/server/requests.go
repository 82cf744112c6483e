package server

import (
	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Request bodies use the public field names of the HTTP API. Every field is a
// pointer so that a missing field can be told apart from a zero value.

// calcRequest is implemented by every calculator request body
type calcRequest interface {
	// calculation returns the engine input, or the names of the missing fields
	calculation() (*domain.Calculation, []string)
}

// required records the JSON names of nil fields
type required []string

func (r *required) dec(name string, v *decimal.Decimal) decimal.Decimal {
	if v == nil {
		*r = append(*r, name)
		return decimal.Zero
	}
	return *v
}

func (r *required) integer(name string, v *int) int {
	if v == nil {
		*r = append(*r, name)
		return 0
	}
	return *v
}

type sipRequest struct {
	MonthlySIP   *decimal.Decimal `json:"monthly_sip"`
	Years        *int             `json:"years"`
	AnnualReturn *decimal.Decimal `json:"annual_return"`
}

func (r *sipRequest) calculation() (*domain.Calculation, []string) {
	var missing required
	in := domain.SIPInput{
		MonthlyContribution: missing.dec("monthly_sip", r.MonthlySIP),
		Years:               missing.integer("years", r.Years),
		AnnualReturn:        missing.dec("annual_return", r.AnnualReturn),
	}
	return &domain.Calculation{Name: string(domain.KindSIP), SIP: &in}, missing
}

type stepUpRequest struct {
	MonthlySIP   *decimal.Decimal `json:"monthly_sip"`
	Years        *int             `json:"years"`
	AnnualReturn *decimal.Decimal `json:"annual_return"`
	AnnualStepUp *decimal.Decimal `json:"annual_step_up"`
}

func (r *stepUpRequest) calculation() (*domain.Calculation, []string) {
	var missing required
	in := domain.StepUpSIPInput{
		MonthlyContribution: missing.dec("monthly_sip", r.MonthlySIP),
		Years:               missing.integer("years", r.Years),
		AnnualReturn:        missing.dec("annual_return", r.AnnualReturn),
		AnnualStepUp:        missing.dec("annual_step_up", r.AnnualStepUp),
	}
	return &domain.Calculation{Name: string(domain.KindStepUpSIP), StepUpSIP: &in}, missing
}

type emiRequest struct {
	LoanAmount         *decimal.Decimal `json:"loan_amount"`
	TenureYears        *int             `json:"tenure_years"`
	AnnualInterestRate *decimal.Decimal `json:"annual_interest_rate"`
}

func (r *emiRequest) calculation() (*domain.Calculation, []string) {
	var missing required
	in := domain.LoanInput{
		Principal:   missing.dec("loan_amount", r.LoanAmount),
		TenureYears: missing.integer("tenure_years", r.TenureYears),
		AnnualRate:  missing.dec("annual_interest_rate", r.AnnualInterestRate),
	}
	return &domain.Calculation{Name: string(domain.KindEMI), EMI: &in}, missing
}

type tenureRequest struct {
	TargetAmount *decimal.Decimal `json:"target_amount"`
	MonthlySIP   *decimal.Decimal `json:"monthly_sip"`
	AnnualReturn *decimal.Decimal `json:"annual_return"`
}

func (r *tenureRequest) calculation() (*domain.Calculation, []string) {
	var missing required
	in := domain.TenureInput{
		TargetAmount:        missing.dec("target_amount", r.TargetAmount),
		MonthlyContribution: missing.dec("monthly_sip", r.MonthlySIP),
		AnnualReturn:        missing.dec("annual_return", r.AnnualReturn),
	}
	return &domain.Calculation{Name: string(domain.KindTenure), Tenure: &in}, missing
}

type lumpsumRequest struct {
	Amount       *decimal.Decimal `json:"amount"`
	Years        *int             `json:"years"`
	AnnualReturn *decimal.Decimal `json:"annual_return"`
	Inflation    *decimal.Decimal `json:"inflation"` // optional, null or absent means none
}

func (r *lumpsumRequest) calculation() (*domain.Calculation, []string) {
	var missing required
	in := domain.LumpsumInput{
		Amount:       missing.dec("amount", r.Amount),
		Years:        missing.integer("years", r.Years),
		AnnualReturn: missing.dec("annual_return", r.AnnualReturn),
		Inflation:    r.Inflation,
	}
	return &domain.Calculation{Name: string(domain.KindLumpsum), Lumpsum: &in}, missing
}

type educationRequest struct {
	ChildAge               *int             `json:"child_age"`
	CollegeAge             *int             `json:"college_age"`
	EducationDurationYears *int             `json:"education_duration_years"`
	AnnualCostToday        *decimal.Decimal `json:"annual_cost_today"`
	ExistingCorpus         *decimal.Decimal `json:"existing_corpus"`
	InvestmentReturn       *decimal.Decimal `json:"investment_return"`
	EducationInflation     *decimal.Decimal `json:"education_inflation"`
}

func (r *educationRequest) calculation() (*domain.Calculation, []string) {
	var missing required
	in := domain.EducationInput{
		ChildAge:               missing.integer("child_age", r.ChildAge),
		CollegeAge:             missing.integer("college_age", r.CollegeAge),
		EducationDurationYears: missing.integer("education_duration_years", r.EducationDurationYears),
		AnnualCostToday:        missing.dec("annual_cost_today", r.AnnualCostToday),
		ExistingCorpus:         missing.dec("existing_corpus", r.ExistingCorpus),
		InvestmentReturn:       missing.dec("investment_return", r.InvestmentReturn),
		EducationInflation:     missing.dec("education_inflation", r.EducationInflation),
	}
	return &domain.Calculation{Name: string(domain.KindEducation), Education: &in}, missing
}

type retirementRequest struct {
	CurrentAge            *int             `json:"current_age"`
	RetirementAge         *int             `json:"retirement_age"`
	LifeExpectancy        *int             `json:"life_expectancy"`
	CurrentMonthlyExpense *decimal.Decimal `json:"current_monthly_expense"`
	InflationRate         *decimal.Decimal `json:"inflation_rate"`
	CurrentMonthlySaving  *decimal.Decimal `json:"current_monthly_saving"`
	ExistingCorpus        *decimal.Decimal `json:"existing_corpus"`
	PreRetirementReturn   *decimal.Decimal `json:"pre_retirement_return"`
	PostRetirementReturn  *decimal.Decimal `json:"post_retirement_return"`
}

func (r *retirementRequest) calculation() (*domain.Calculation, []string) {
	var missing required
	in := domain.RetirementInput{
		CurrentAge:            missing.integer("current_age", r.CurrentAge),
		RetirementAge:         missing.integer("retirement_age", r.RetirementAge),
		LifeExpectancy:        missing.integer("life_expectancy", r.LifeExpectancy),
		CurrentMonthlyExpense: missing.dec("current_monthly_expense", r.CurrentMonthlyExpense),
		InflationRate:         missing.dec("inflation_rate", r.InflationRate),
		CurrentMonthlySaving:  missing.dec("current_monthly_saving", r.CurrentMonthlySaving),
		ExistingCorpus:        missing.dec("existing_corpus", r.ExistingCorpus),
		PreRetirementReturn:   missing.dec("pre_retirement_return", r.PreRetirementReturn),
		PostRetirementReturn:  missing.dec("post_retirement_return", r.PostRetirementReturn),
	}
	return &domain.Calculation{Name: string(domain.KindRetirement), Retirement: &in}, missing
}

type marriageRequest struct {
	CurrentAge        *int             `json:"current_age"`
	MarriageAge       *int             `json:"marriage_age"`
	MarriageCostToday *decimal.Decimal `json:"marriage_cost_today"`
	ExistingCorpus    *decimal.Decimal `json:"existing_corpus"`
	InvestmentReturn  *decimal.Decimal `json:"investment_return"`
	CostInflation     *decimal.Decimal `json:"cost_inflation"`
}

func (r *marriageRequest) calculation() (*domain.Calculation, []string) {
	var missing required
	in := domain.MarriageInput{
		CurrentAge:        missing.integer("current_age", r.CurrentAge),
		MarriageAge:       missing.integer("marriage_age", r.MarriageAge),
		MarriageCostToday: missing.dec("marriage_cost_today", r.MarriageCostToday),
		ExistingCorpus:    missing.dec("existing_corpus", r.ExistingCorpus),
		InvestmentReturn:  missing.dec("investment_return", r.InvestmentReturn),
		CostInflation:     missing.dec("cost_inflation", r.CostInflation),
	}
	return &domain.Calculation{Name: string(domain.KindMarriage), Marriage: &in}, missing
}

type costOfDelayRequest struct {
	MonthlySIP   *decimal.Decimal `json:"monthly_sip"`
	Years        *int             `json:"years"`
	AnnualReturn *decimal.Decimal `json:"annual_return"`
	DelayMonths  *int             `json:"delay_months"`
}

func (r *costOfDelayRequest) calculation() (*domain.Calculation, []string) {
	var missing required
	in := domain.CostOfDelayInput{
		MonthlyContribution: missing.dec("monthly_sip", r.MonthlySIP),
		Years:               missing.integer("years", r.Years),
		AnnualReturn:        missing.dec("annual_return", r.AnnualReturn),
		DelayMonths:         missing.integer("delay_months", r.DelayMonths),
	}
	return &domain.Calculation{Name: string(domain.KindCostOfDelay), CostOfDelay: &in}, missing
}

// emiResponse keeps the public name of the installment field
type emiResponse struct {
	EMI           decimal.Decimal `json:"emi"`
	TotalPayment  decimal.Decimal `json:"total_payment"`
	TotalInterest decimal.Decimal `json:"total_interest"`
}

// responseBody maps an engine result onto its wire shape
func responseBody(result domain.Result) any {
	if loan, ok := result.(*domain.LoanResult); ok {
		return emiResponse{
			EMI:           loan.Payment,
			TotalPayment:  loan.TotalPayment,
			TotalInterest: loan.TotalInterest,
		}
	}
	return result
}

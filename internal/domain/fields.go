package domain

import (
	"github.com/shopspring/decimal"
)

// Field is one flattened result value. Nested results use dotted keys,
// e.g. investment_required.monthly_sip.
type Field struct {
	Key   string
	Value decimal.Decimal
}

func intField(key string, v int) Field {
	return Field{Key: key, Value: decimal.NewFromInt(int64(v))}
}

func (r *SIPResult) Fields() []Field {
	return []Field{
		{"maturity_value", r.MaturityValue},
		{"total_invested", r.TotalInvested},
		{"wealth_gained", r.WealthGained},
		{"multiple", r.Multiple},
	}
}

func (r *LoanResult) Fields() []Field {
	return []Field{
		{"payment", r.Payment},
		{"total_payment", r.TotalPayment},
		{"total_interest", r.TotalInterest},
	}
}

func (r *TenureResult) Fields() []Field {
	return []Field{
		intField("years_required", r.YearsRequired),
		intField("total_months", r.TotalMonths),
		{"total_invested", r.TotalInvested},
		{"final_corpus", r.FinalCorpus},
	}
}

// Fields omits inflation_adjusted_value when no inflation was supplied
func (r *LumpsumResult) Fields() []Field {
	fields := []Field{{"future_value", r.FutureValue}}
	if r.InflationAdjustedValue != nil {
		fields = append(fields, Field{"inflation_adjusted_value", *r.InflationAdjustedValue})
	}
	return fields
}

func (r *EducationResult) Fields() []Field {
	return []Field{
		{"goal_at_college.total_required", r.GoalAtCollege.TotalRequired},
		{"existing_corpus.today", r.ExistingCorpus.Today},
		{"existing_corpus.value_at_college", r.ExistingCorpus.ValueAtCollege},
		{"investment_required.lump_sum_today", r.InvestmentRequired.LumpSumToday},
		{"investment_required.monthly_sip", r.InvestmentRequired.MonthlySIP},
	}
}

func (r *RetirementResult) Fields() []Field {
	return []Field{
		{"monthly_expense_at_retirement", r.MonthlyExpenseAtRetirement},
		{"corpus_required", r.CorpusRequired},
		{"total_available", r.TotalAvailable},
		{"shortfall", r.Shortfall},
		{"investment_required.sip", r.InvestmentRequired.SIP},
		{"investment_required.lumpsum", r.InvestmentRequired.Lumpsum},
	}
}

func (r *MarriageResult) Fields() []Field {
	return []Field{
		{"goal_amount", r.GoalAmount},
		{"existing_corpus.today", r.ExistingCorpus.Today},
		{"existing_corpus.value_at_goal", r.ExistingCorpus.ValueAtGoal},
		{"investment_required.lump_sum_today", r.InvestmentRequired.LumpSumToday},
		{"investment_required.monthly_sip", r.InvestmentRequired.MonthlySIP},
	}
}

func (r *CostOfDelayResult) Fields() []Field {
	return []Field{
		{"start_now.maturity_value", r.StartNow.MaturityValue},
		{"start_now.amount_invested", r.StartNow.AmountInvested},
		{"start_now.wealth_gained", r.StartNow.WealthGained},
		intField("start_late.delay_months", r.StartLate.DelayMonths),
		{"start_late.maturity_value", r.StartLate.MaturityValue},
		{"start_late.amount_invested", r.StartLate.AmountInvested},
		{"start_late.wealth_gained", r.StartLate.WealthGained},
		{"cost_of_delay", r.CostOfDelay},
	}
}

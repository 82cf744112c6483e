package calculation

import (
	"testing"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func retirementInput() domain.RetirementInput {
	return domain.RetirementInput{
		CurrentAge:            35,
		RetirementAge:         60,
		LifeExpectancy:        85,
		CurrentMonthlyExpense: d(50000),
		InflationRate:         d(6),
		CurrentMonthlySaving:  d(10000),
		ExistingCorpus:        d(500000),
		PreRetirementReturn:   d(12),
		PostRetirementReturn:  d(8),
	}
}

func TestRetirementGoal_Shortfall(t *testing.T) {
	result, err := RetirementGoal(retirementInput())
	require.NoError(t, err)

	assertDecimal(t, "214594", result.MonthlyExpenseAtRetirement)
	assertDecimal(t, "50949909", result.CorpusRequired)
	assertDecimal(t, "27476383", result.TotalAvailable)
	assertDecimal(t, "23473525", result.Shortfall)
	assertDecimal(t, "12370", result.InvestmentRequired.SIP)
	assertDecimal(t, "1380790", result.InvestmentRequired.Lumpsum)
}

func TestRetirementGoal_NoShortfall(t *testing.T) {
	in := domain.RetirementInput{
		CurrentAge:            30,
		RetirementAge:         60,
		LifeExpectancy:        85,
		CurrentMonthlyExpense: d(50000),
		InflationRate:         d(6),
		CurrentMonthlySaving:  d(20000),
		ExistingCorpus:        d(1000000),
		PreRetirementReturn:   d(12),
		PostRetirementReturn:  d(8),
	}

	result, err := RetirementGoal(in)
	require.NoError(t, err)

	assertDecimal(t, "287175", result.MonthlyExpenseAtRetirement)
	assertDecimal(t, "68182471", result.CorpusRequired)
	assertDecimal(t, "100558198", result.TotalAvailable)
	assert.True(t, result.Shortfall.IsZero())
	assert.True(t, result.InvestmentRequired.SIP.IsZero())
	assert.True(t, result.InvestmentRequired.Lumpsum.IsZero())
}

func TestRetirementGoal_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *domain.RetirementInput)
		field  string
	}{
		{"retire before today", func(in *domain.RetirementInput) { in.RetirementAge = 30 }, "retirement_age"},
		{"no retirement years", func(in *domain.RetirementInput) { in.LifeExpectancy = in.RetirementAge }, "life_expectancy"},
		{"retirement too far away", func(in *domain.RetirementInput) { in.RetirementAge = in.CurrentAge + MaxHorizonYears + 1 }, "retirement_age"},
		{"retirement beyond horizon", func(in *domain.RetirementInput) { in.LifeExpectancy = 768614336404564651 }, "life_expectancy"},
		{"zero pre-retirement return", func(in *domain.RetirementInput) { in.PreRetirementReturn = d(0) }, "pre_retirement_return"},
		{"real return of zero", func(in *domain.RetirementInput) { in.PostRetirementReturn = in.InflationRate }, "post_retirement_return"},
		{"negative expense", func(in *domain.RetirementInput) { in.CurrentMonthlyExpense = d(-1) }, "current_monthly_expense"},
		{"inflation below -100", func(in *domain.RetirementInput) { in.InflationRate = d(-100) }, "inflation_rate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := retirementInput()
			tt.mutate(&in)
			result, err := RetirementGoal(in)
			assert.Nil(t, result)
			assertValidationError(t, err, tt.field)
		})
	}
}

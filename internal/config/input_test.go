package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const householdPlan = `
name: Household goals
stop_on_error: true
calculations:
  - name: Daughter college
    education_goal:
      child_age: 5
      college_age: 18
      education_duration_years: 4
      annual_cost_today: 500000
      existing_corpus: 200000
      investment_return: 12
      education_inflation: 8
  - name: Car loan
    emi: {principal: 800000, tenure_years: 5, annual_rate: 9.5}
  - name: Bonus
    lumpsum:
      amount: 100000
      years: 10
      annual_return: 12
      inflation: 0
  - name: Windfall
    lumpsum: {amount: 50000, years: 3, annual_return: 7.25}
`

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser, "Should create input parser")
}

func TestInputParser_LoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()

	plan, err := parser.LoadFromFile("nonexistent.yaml")

	assert.Error(t, err, "Should error for nonexistent file")
	assert.Nil(t, plan, "Should return nil plan")
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestInputParser_LoadFromFile_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	invalidFile := filepath.Join(tmpDir, "invalid.yaml")

	err := os.WriteFile(invalidFile, []byte("invalid: yaml: content: [unclosed"), 0644)
	require.NoError(t, err)

	parser := NewInputParser()
	plan, err := parser.LoadFromFile(invalidFile)

	assert.Error(t, err, "Should error for invalid YAML")
	assert.Nil(t, plan)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestInputParser_LoadFromFile_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	validFile := filepath.Join(tmpDir, "plan.yaml")
	require.NoError(t, os.WriteFile(validFile, []byte(householdPlan), 0644))

	plan, err := NewInputParser().LoadFromFile(validFile)
	require.NoError(t, err)

	assert.Equal(t, "Household goals", plan.Name)
	assert.True(t, plan.StopOnError)
	require.Len(t, plan.Calculations, 4)

	college := plan.Calculations[0]
	require.NotNil(t, college.Education)
	assert.Equal(t, 18, college.Education.CollegeAge)
	assert.True(t, decimal.NewFromInt(500000).Equal(college.Education.AnnualCostToday))

	loan := plan.Calculations[1]
	kind, err := loan.Kind()
	require.NoError(t, err)
	assert.Equal(t, domain.KindEMI, kind)
	assert.True(t, decimal.RequireFromString("9.5").Equal(loan.EMI.AnnualRate))
}

func TestInputParser_Parse_OptionalInflation(t *testing.T) {
	plan, err := NewInputParser().Parse([]byte(householdPlan))
	require.NoError(t, err)

	bonus := plan.Calculations[2].Lumpsum
	require.NotNil(t, bonus.Inflation, "explicit zero inflation should be kept")
	assert.True(t, bonus.Inflation.IsZero())

	windfall := plan.Calculations[3].Lumpsum
	assert.Nil(t, windfall.Inflation, "missing inflation should stay absent")
	assert.True(t, decimal.RequireFromString("7.25").Equal(windfall.AnnualReturn))
}

func TestInputParser_Parse_JSON(t *testing.T) {
	data := []byte(`{"name":"json plan","calculations":[{"name":"sip","sip":{"monthly_contribution":10000,"years":10,"annual_return":12}}]}`)

	plan, err := NewInputParser().Parse(data)
	require.NoError(t, err)
	require.Len(t, plan.Calculations, 1)
	assert.Equal(t, 10, plan.Calculations[0].SIP.Years)
}

func TestInputParser_ValidateConfiguration(t *testing.T) {
	sip := &domain.SIPInput{MonthlyContribution: decimal.NewFromInt(100), Years: 1, AnnualReturn: decimal.NewFromInt(8)}
	loan := &domain.LoanInput{Principal: decimal.NewFromInt(1000), TenureYears: 1, AnnualRate: decimal.NewFromInt(8)}

	tests := []struct {
		name    string
		plan    *domain.Plan
		wantErr string
	}{
		{
			name: "valid",
			plan: &domain.Plan{Calculations: []domain.Calculation{{Name: "a", SIP: sip}, {Name: "b", EMI: loan}}},
		},
		{
			name:    "nil plan",
			plan:    nil,
			wantErr: "plan is required",
		},
		{
			name:    "no calculations",
			plan:    &domain.Plan{Name: "empty"},
			wantErr: "no calculations provided",
		},
		{
			name:    "missing name",
			plan:    &domain.Plan{Calculations: []domain.Calculation{{SIP: sip}}},
			wantErr: "name is required",
		},
		{
			name:    "no block",
			plan:    &domain.Plan{Calculations: []domain.Calculation{{Name: "a"}}},
			wantErr: "calculation 0 (a) validation failed: no calculator block set",
		},
		{
			name:    "two blocks",
			plan:    &domain.Plan{Calculations: []domain.Calculation{{Name: "a", SIP: sip, EMI: loan}}},
			wantErr: "exactly one calculator block allowed, got 2",
		},
		{
			name:    "duplicate names",
			plan:    &domain.Plan{Calculations: []domain.Calculation{{Name: "a", SIP: sip}, {Name: "a", EMI: loan}}},
			wantErr: "name already used by calculation 0",
		},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parser.ValidateConfiguration(tt.plan)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestInputParser_Parse_RejectsInvalidPlan(t *testing.T) {
	data := []byte(`
calculations:
  - name: nothing here
`)
	plan, err := NewInputParser().Parse(data)
	assert.Nil(t, plan)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")
}

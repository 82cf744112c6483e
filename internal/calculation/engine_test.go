package calculation

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingLogger captures formatted log lines by level
type recordingLogger struct {
	mu    sync.Mutex
	lines map[string][]string
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{lines: make(map[string][]string)}
}

func (l *recordingLogger) record(level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines[level] = append(l.lines[level], fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Debugf(format string, args ...any) { l.record("debug", format, args...) }
func (l *recordingLogger) Infof(format string, args ...any)  { l.record("info", format, args...) }
func (l *recordingLogger) Warnf(format string, args ...any)  { l.record("warn", format, args...) }
func (l *recordingLogger) Errorf(format string, args ...any) { l.record("error", format, args...) }

func (l *recordingLogger) count(level string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.lines[level])
}

func sipCalculation(name string) domain.Calculation {
	return domain.Calculation{
		Name: name,
		SIP: &domain.SIPInput{
			MonthlyContribution: d(10000),
			Years:               10,
			AnnualReturn:        d(12),
		},
	}
}

func TestCalculationEngine_SetLogger(t *testing.T) {
	ce := NewCalculationEngine()
	assert.IsType(t, NopLogger{}, ce.Logger)

	logger := newRecordingLogger()
	ce.SetLogger(logger)
	assert.Same(t, logger, ce.Logger)

	ce.SetLogger(nil)
	assert.IsType(t, NopLogger{}, ce.Logger)
}

func TestCalculationEngine_ZeroValueIsUsable(t *testing.T) {
	ce := &CalculationEngine{}
	calc := sipCalculation("zero value engine")

	result, err := ce.Calculate(context.Background(), &calc)
	require.NoError(t, err)
	assert.NotNil(t, result)
}

func TestCalculationEngine_CalculateDispatch(t *testing.T) {
	ce := NewCalculationEngine()

	tests := []struct {
		name  string
		calc  domain.Calculation
		key   string
		value string
	}{
		{
			name:  "sip",
			calc:  sipCalculation("sip"),
			key:   "maturity_value",
			value: "2240359",
		},
		{
			name: "step-up",
			calc: domain.Calculation{StepUpSIP: &domain.StepUpSIPInput{
				MonthlyContribution: d(10000), Years: 10, AnnualReturn: d(12), AnnualStepUp: d(10),
			}},
			key:   "maturity_value",
			value: "3268898",
		},
		{
			name:  "emi",
			calc:  domain.Calculation{EMI: &domain.LoanInput{Principal: d(1000000), TenureYears: 20, AnnualRate: d(8.5)}},
			key:   "payment",
			value: "8678",
		},
		{
			name:  "tenure",
			calc:  domain.Calculation{Tenure: &domain.TenureInput{TargetAmount: d(1000000), MonthlyContribution: d(10000), AnnualReturn: d(12)}},
			key:   "total_months",
			value: "71",
		},
		{
			name:  "lumpsum",
			calc:  domain.Calculation{Lumpsum: &domain.LumpsumInput{Amount: d(100000), Years: 10, AnnualReturn: d(12), Inflation: dPtr(6)}},
			key:   "inflation_adjusted_value",
			value: "173429",
		},
		{
			name: "education",
			calc: domain.Calculation{Education: &domain.EducationInput{
				ChildAge: 5, CollegeAge: 18, EducationDurationYears: 4,
				AnnualCostToday: d(500000), ExistingCorpus: d(200000),
				InvestmentReturn: d(12), EducationInflation: d(8),
			}},
			key:   "investment_required.monthly_sip",
			value: "13978",
		},
		{
			name: "retirement",
			calc: domain.Calculation{Retirement: &domain.RetirementInput{
				CurrentAge: 35, RetirementAge: 60, LifeExpectancy: 85,
				CurrentMonthlyExpense: d(50000), InflationRate: d(6),
				CurrentMonthlySaving: d(10000), ExistingCorpus: d(500000),
				PreRetirementReturn: d(12), PostRetirementReturn: d(8),
			}},
			key:   "shortfall",
			value: "23473525",
		},
		{
			name: "marriage",
			calc: domain.Calculation{Marriage: &domain.MarriageInput{
				CurrentAge: 25, MarriageAge: 30, MarriageCostToday: d(2000000),
				ExistingCorpus: d(300000), InvestmentReturn: d(10), CostInflation: d(6),
			}},
			key:   "goal_amount",
			value: "2676451",
		},
		{
			name: "cost of delay",
			calc: domain.Calculation{CostOfDelay: &domain.CostOfDelayInput{
				MonthlyContribution: d(10000), Years: 10, AnnualReturn: d(12), DelayMonths: 12,
			}},
			key:   "cost_of_delay",
			value: "354025",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ce.Calculate(context.Background(), &tt.calc)
			require.NoError(t, err)
			require.NotNil(t, result)

			var found bool
			for _, f := range result.Fields() {
				if f.Key == tt.key {
					found = true
					assertDecimal(t, tt.value, f.Value)
				}
			}
			assert.True(t, found, "field %s not reported", tt.key)
		})
	}
}

func TestCalculationEngine_CalculateRejectsBlockCount(t *testing.T) {
	ce := NewCalculationEngine()

	_, err := ce.Calculate(context.Background(), &domain.Calculation{Name: "empty"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no calculator block set")

	both := sipCalculation("both")
	both.Lumpsum = &domain.LumpsumInput{Amount: d(1), Years: 1, AnnualReturn: d(1)}
	_, err = ce.Calculate(context.Background(), &both)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one calculator block allowed, got 2")
}

func TestCalculationEngine_CalculateReturnsValidationError(t *testing.T) {
	ce := NewCalculationEngine()
	logger := newRecordingLogger()
	ce.SetLogger(logger)

	calc := domain.Calculation{EMI: &domain.LoanInput{Principal: d(1000), TenureYears: 0, AnnualRate: d(5)}}
	result, err := ce.Calculate(context.Background(), &calc)
	assert.Nil(t, result)
	assertValidationError(t, err, "tenure_years")
	assert.Equal(t, 1, logger.count("info"))
}

func TestCalculationEngine_CappedTenureWarns(t *testing.T) {
	ce := NewCalculationEngine()
	logger := newRecordingLogger()
	ce.SetLogger(logger)

	calc := domain.Calculation{
		Name: "never",
		Tenure: &domain.TenureInput{
			TargetAmount:        decimal.New(1, 12),
			MonthlyContribution: d(1),
			AnnualReturn:        d(0.01),
		},
	}
	result, err := ce.Calculate(context.Background(), &calc)
	require.NoError(t, err)

	tenure, ok := result.(*domain.TenureResult)
	require.True(t, ok)
	assert.True(t, tenure.Capped)
	assert.Equal(t, MaxTenureMonths, tenure.TotalMonths)
	assert.Equal(t, 1, logger.count("warn"))
}

func TestCalculationEngine_DebugLogsFields(t *testing.T) {
	ce := NewCalculationEngine()
	ce.Debug = true
	logger := newRecordingLogger()
	ce.SetLogger(logger)

	calc := sipCalculation("debug")
	_, err := ce.Calculate(context.Background(), &calc)
	require.NoError(t, err)

	// one line announcing the run plus one per result field
	assert.Equal(t, 5, logger.count("debug"))
}

func TestCalculationEngine_CalculateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calc := sipCalculation("cancelled")
	_, err := NewCalculationEngine().Calculate(ctx, &calc)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCalculationEngine_RunPlan(t *testing.T) {
	ce := NewCalculationEngine()
	plan := &domain.Plan{
		Name: "household",
		Calculations: []domain.Calculation{
			sipCalculation("monthly sip"),
			{Name: "bad loan", EMI: &domain.LoanInput{Principal: d(1000), TenureYears: 0, AnnualRate: d(5)}},
			{Name: "home loan", EMI: &domain.LoanInput{Principal: d(1000000), TenureYears: 20, AnnualRate: d(8.5)}},
		},
	}

	result, err := ce.RunPlan(context.Background(), plan)
	require.NoError(t, err)
	require.Len(t, result.Results, 3)

	assert.Equal(t, "household", result.Name)
	assert.Equal(t, 1, result.Failed)

	assert.False(t, result.Results[0].Failed())
	assert.Equal(t, domain.KindSIP, result.Results[0].Kind)

	bad := result.Results[1]
	assert.True(t, bad.Failed())
	assert.Equal(t, domain.KindEMI, bad.Kind)
	assert.Equal(t, "tenure_years", bad.ErrorField)
	assert.Nil(t, bad.Result)

	loan, ok := result.Results[2].Result.(*domain.LoanResult)
	require.True(t, ok)
	assertDecimal(t, "8678", loan.Payment)
}

func TestCalculationEngine_RunPlanStopOnError(t *testing.T) {
	ce := NewCalculationEngine()
	plan := &domain.Plan{
		Name:        "strict",
		StopOnError: true,
		Calculations: []domain.Calculation{
			sipCalculation("first"),
			{Name: "broken"},
			sipCalculation("never reached"),
		},
	}

	result, err := ce.RunPlan(context.Background(), plan)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "calculation 1 (broken) failed")

	require.NotNil(t, result)
	assert.Len(t, result.Results, 2)
	assert.Equal(t, 1, result.Failed)
	assert.Empty(t, result.Results[1].ErrorField)
}

func TestCalculationEngine_RunPlanCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	plan := &domain.Plan{Calculations: []domain.Calculation{sipCalculation("a")}}
	result, err := NewCalculationEngine().RunPlan(ctx, plan)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCalculationEngine_RunPlanNil(t *testing.T) {
	_, err := NewCalculationEngine().RunPlan(context.Background(), nil)
	assert.Error(t, err)
}

func TestCalculationEngine_ConcurrentCalculate(t *testing.T) {
	ce := NewCalculationEngine()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			calc := sipCalculation("concurrent")
			result, err := ce.Calculate(context.Background(), &calc)
			if assert.NoError(t, err) {
				assertDecimal(t, "2240359", result.(*domain.SIPResult).MaturityValue)
			}
		}()
	}
	wg.Wait()
}

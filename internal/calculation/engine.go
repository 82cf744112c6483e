package calculation

import (
	"context"
	"errors"
	"fmt"

	"github.com/rgehrsitz/fincalc/internal/domain"
)

// CalculationEngine dispatches named calculations to the projection functions.
// It holds no state beyond its logger and is safe for concurrent use.
type CalculationEngine struct {
	Logger Logger
	Debug  bool // Enable debug output for detailed calculations
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger installs a logger; nil restores the no-op logger
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

func (ce *CalculationEngine) logger() Logger {
	if ce.Logger == nil {
		return NopLogger{}
	}
	return ce.Logger
}

// Calculate runs the single calculator block of calc
func (ce *CalculationEngine) Calculate(ctx context.Context, calc *domain.Calculation) (domain.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	kind, err := calc.Kind()
	if err != nil {
		return nil, fmt.Errorf("calculation %q: %w", calc.Name, err)
	}

	log := ce.logger()
	if ce.Debug {
		log.Debugf("running %s calculation %q", kind, calc.Name)
	}

	var result domain.Result
	switch kind {
	case domain.KindSIP:
		result, err = SIPFutureValue(*calc.SIP)
	case domain.KindStepUpSIP:
		result, err = StepUpSIPFutureValue(*calc.StepUpSIP)
	case domain.KindEMI:
		result, err = LoanEMI(*calc.EMI)
	case domain.KindTenure:
		var tenure *domain.TenureResult
		tenure, err = SIPTenure(*calc.Tenure)
		if err == nil {
			if tenure.Capped {
				log.Warnf("calculation %q: target not reached within %d months, returning capped state", calc.Name, MaxTenureMonths)
			}
			result = tenure
		}
	case domain.KindLumpsum:
		result, err = Lumpsum(*calc.Lumpsum)
	case domain.KindEducation:
		result, err = EducationGoal(*calc.Education)
	case domain.KindRetirement:
		result, err = RetirementGoal(*calc.Retirement)
	case domain.KindMarriage:
		result, err = MarriageGoal(*calc.Marriage)
	case domain.KindCostOfDelay:
		result, err = CostOfDelay(*calc.CostOfDelay)
	default:
		err = fmt.Errorf("unsupported calculator: %s", kind)
	}

	// result may hold a typed nil here, so err is checked first
	if err != nil {
		log.Infof("calculation %q rejected: %v", calc.Name, err)
		return nil, err
	}

	if ce.Debug {
		for _, f := range result.Fields() {
			log.Debugf("  %s.%s = %s", kind, f.Key, f.Value.String())
		}
	}
	return result, nil
}

// RunPlan evaluates every calculation of the plan in order. Failed calculations
// are recorded on the result; with StopOnError the run ends at the first failure.
func (ce *CalculationEngine) RunPlan(ctx context.Context, plan *domain.Plan) (*domain.PlanResult, error) {
	if plan == nil {
		return nil, fmt.Errorf("plan is required")
	}

	out := &domain.PlanResult{
		Name:    plan.Name,
		Results: make([]domain.CalculationResult, 0, len(plan.Calculations)),
	}

	for i := range plan.Calculations {
		calc := &plan.Calculations[i]

		// Check context cancellation
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		entry := domain.CalculationResult{Name: calc.Name}
		if kind, err := calc.Kind(); err == nil {
			entry.Kind = kind
		}

		result, err := ce.Calculate(ctx, calc)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			entry.Error = err.Error()
			var verr *ValidationError
			if errors.As(err, &verr) {
				entry.ErrorField = verr.Field
			}
			out.Failed++
			out.Results = append(out.Results, entry)
			if plan.StopOnError {
				return out, fmt.Errorf("calculation %d (%s) failed: %w", i, calc.Name, err)
			}
			continue
		}

		entry.Result = result
		out.Results = append(out.Results, entry)
	}

	ce.logger().Infof("plan %q: %d calculations, %d failed", plan.Name, len(out.Results), out.Failed)
	return out, nil
}

package domain

import (
	"fmt"
	"strings"
)

// CalculatorKind identifies one of the projection calculators
type CalculatorKind string

const (
	KindSIP         CalculatorKind = "sip"
	KindStepUpSIP   CalculatorKind = "sip_step_up"
	KindEMI         CalculatorKind = "emi"
	KindTenure      CalculatorKind = "sip_tenure"
	KindLumpsum     CalculatorKind = "lumpsum"
	KindEducation   CalculatorKind = "education_goal"
	KindRetirement  CalculatorKind = "retirement_goal"
	KindMarriage    CalculatorKind = "marriage_goal"
	KindCostOfDelay CalculatorKind = "cost_of_delay_sip"
)

// AllKinds lists the calculators in display order
func AllKinds() []CalculatorKind {
	return []CalculatorKind{
		KindSIP, KindStepUpSIP, KindEMI, KindTenure, KindLumpsum,
		KindEducation, KindRetirement, KindMarriage, KindCostOfDelay,
	}
}

// Title returns a human readable calculator name
func (k CalculatorKind) Title() string {
	switch k {
	case KindSIP:
		return "SIP Future Value"
	case KindStepUpSIP:
		return "Step-Up SIP"
	case KindEMI:
		return "Loan EMI"
	case KindTenure:
		return "SIP Tenure to Target"
	case KindLumpsum:
		return "Lump Sum"
	case KindEducation:
		return "Education Goal"
	case KindRetirement:
		return "Retirement Goal"
	case KindMarriage:
		return "Marriage Goal"
	case KindCostOfDelay:
		return "Cost of Delay"
	default:
		return string(k)
	}
}

// ParseCalculatorKind accepts the canonical kind names plus the dashed endpoint spelling
func ParseCalculatorKind(s string) (CalculatorKind, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for _, k := range AllKinds() {
		if string(k) == normalized {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown calculator: %q", s)
}

// Calculation is one named entry of a plan. Exactly one calculator block must be set.
type Calculation struct {
	Name string `yaml:"name" json:"name"`

	SIP         *SIPInput         `yaml:"sip,omitempty" json:"sip,omitempty"`
	StepUpSIP   *StepUpSIPInput   `yaml:"sip_step_up,omitempty" json:"sip_step_up,omitempty"`
	EMI         *LoanInput        `yaml:"emi,omitempty" json:"emi,omitempty"`
	Tenure      *TenureInput      `yaml:"sip_tenure,omitempty" json:"sip_tenure,omitempty"`
	Lumpsum     *LumpsumInput     `yaml:"lumpsum,omitempty" json:"lumpsum,omitempty"`
	Education   *EducationInput   `yaml:"education_goal,omitempty" json:"education_goal,omitempty"`
	Retirement  *RetirementInput  `yaml:"retirement_goal,omitempty" json:"retirement_goal,omitempty"`
	Marriage    *MarriageInput    `yaml:"marriage_goal,omitempty" json:"marriage_goal,omitempty"`
	CostOfDelay *CostOfDelayInput `yaml:"cost_of_delay_sip,omitempty" json:"cost_of_delay_sip,omitempty"`
}

// Kinds returns every calculator block present on the calculation
func (c *Calculation) Kinds() []CalculatorKind {
	var kinds []CalculatorKind
	if c.SIP != nil {
		kinds = append(kinds, KindSIP)
	}
	if c.StepUpSIP != nil {
		kinds = append(kinds, KindStepUpSIP)
	}
	if c.EMI != nil {
		kinds = append(kinds, KindEMI)
	}
	if c.Tenure != nil {
		kinds = append(kinds, KindTenure)
	}
	if c.Lumpsum != nil {
		kinds = append(kinds, KindLumpsum)
	}
	if c.Education != nil {
		kinds = append(kinds, KindEducation)
	}
	if c.Retirement != nil {
		kinds = append(kinds, KindRetirement)
	}
	if c.Marriage != nil {
		kinds = append(kinds, KindMarriage)
	}
	if c.CostOfDelay != nil {
		kinds = append(kinds, KindCostOfDelay)
	}
	return kinds
}

// Kind returns the single calculator block of the calculation
func (c *Calculation) Kind() (CalculatorKind, error) {
	kinds := c.Kinds()
	switch len(kinds) {
	case 0:
		return "", fmt.Errorf("no calculator block set")
	case 1:
		return kinds[0], nil
	default:
		return "", fmt.Errorf("exactly one calculator block allowed, got %d", len(kinds))
	}
}

// Plan is a named batch of calculations, loaded from a YAML file or posted as JSON
type Plan struct {
	Name         string        `yaml:"name" json:"name"`
	StopOnError  bool          `yaml:"stop_on_error" json:"stop_on_error"`
	Calculations []Calculation `yaml:"calculations" json:"calculations"`
}

// Result is implemented by every calculator result
type Result interface {
	Fields() []Field
}

// CalculationResult is the outcome of one plan entry
type CalculationResult struct {
	Name       string         `yaml:"name" json:"name"`
	Kind       CalculatorKind `yaml:"calculator" json:"calculator"`
	Result     Result         `yaml:"result,omitempty" json:"result,omitempty"`
	Error      string         `yaml:"error,omitempty" json:"error,omitempty"`
	ErrorField string         `yaml:"error_field,omitempty" json:"error_field,omitempty"`
}

// Failed reports whether the calculation produced an error instead of a result
func (cr *CalculationResult) Failed() bool {
	return cr.Error != ""
}

// PlanResult collects the outcomes of a plan run
type PlanResult struct {
	Name    string              `yaml:"name" json:"name"`
	Results []CalculationResult `yaml:"results" json:"results"`
	Failed  int                 `yaml:"failed" json:"failed"`
}

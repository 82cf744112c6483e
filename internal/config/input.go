package config

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of calculation plan files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan from a YAML (or JSON) file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a plan document
func (ip *InputParser) Parse(data []byte) (*domain.Plan, error) {
	var plan domain.Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&plan); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &plan, nil
}

// ValidateConfiguration checks the shape of a plan. Value ranges are left to the
// calculators, which report them per calculation.
func (ip *InputParser) ValidateConfiguration(plan *domain.Plan) error {
	if plan == nil {
		return fmt.Errorf("plan is required")
	}
	if len(plan.Calculations) == 0 {
		return fmt.Errorf("no calculations provided")
	}

	seen := make(map[string]int, len(plan.Calculations))
	for i := range plan.Calculations {
		calc := &plan.Calculations[i]
		if err := ip.validateCalculation(calc); err != nil {
			return fmt.Errorf("calculation %d (%s) validation failed: %w", i, calc.Name, err)
		}
		if prev, ok := seen[calc.Name]; ok {
			return fmt.Errorf("calculation %d (%s) validation failed: name already used by calculation %d", i, calc.Name, prev)
		}
		seen[calc.Name] = i
	}

	return nil
}

func (ip *InputParser) validateCalculation(calc *domain.Calculation) error {
	if calc.Name == "" {
		return fmt.Errorf("name is required")
	}
	if _, err := calc.Kind(); err != nil {
		return err
	}
	return nil
}

package tui

import (
	"github.com/rgehrsitz/fincalc/internal/domain"
)

// Scene represents different screens in the TUI
type Scene int

const (
	SceneMenu Scene = iota
	SceneForm
	SceneResult
)

func (s Scene) String() string {
	switch s {
	case SceneMenu:
		return "Calculators"
	case SceneForm:
		return "Inputs"
	case SceneResult:
		return "Result"
	default:
		return "Unknown"
	}
}

// Message types for the Bubble Tea update cycle

// CalculationCompleteMsg signals a calculation has finished
type CalculationCompleteMsg struct {
	Kind   domain.CalculatorKind
	Result domain.Result
	Err    error
}

package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/fincalc/internal/calculation"
	"github.com/rgehrsitz/fincalc/internal/domain"
)

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene Scene

	// Terminal dimensions
	width  int
	height int

	// Calculation engine
	calcEngine *calculation.CalculationEngine

	keys keyMap
	help help.Model

	// Calculator menu
	kinds  []domain.CalculatorKind
	cursor int

	// Input form of the selected calculator
	kind   domain.CalculatorKind
	fields []fieldSpec
	inputs []textinput.Model
	focus  int

	result domain.Result

	// Error state
	err error

	// Loading state
	loading bool
}

// NewModel creates a new application model
func NewModel(engine *calculation.CalculationEngine) Model {
	if engine == nil {
		engine = calculation.NewCalculationEngine()
	}
	return Model{
		currentScene: SceneMenu,
		calcEngine:   engine,
		keys:         defaultKeyMap(),
		help:         help.New(),
		kinds:        domain.AllKinds(),
		width:        80,
		height:       24,
	}
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	if m.currentScene == SceneForm {
		return textinput.Blink
	}
	return nil
}

// WithCalculator starts the model on the input form of kind
func (m Model) WithCalculator(kind domain.CalculatorKind) Model {
	for i, k := range m.kinds {
		if k == kind {
			m.cursor = i
		}
	}
	m.openForm(kind)
	return m
}

// openForm prepares the inputs of kind, prefilled with example values
func (m *Model) openForm(kind domain.CalculatorKind) tea.Cmd {
	m.kind = kind
	m.fields = formFields(kind)
	m.inputs = make([]textinput.Model, len(m.fields))
	for i, f := range m.fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 16
		ti.Width = 20
		ti.SetValue(f.Default)
		if f.Optional {
			ti.Placeholder = "leave empty to skip"
		}
		m.inputs[i] = ti
	}
	m.focus = 0
	m.err = nil
	m.result = nil
	m.currentScene = SceneForm
	return m.focusInput(0)
}

func (m *Model) focusInput(i int) tea.Cmd {
	if len(m.inputs) == 0 {
		return nil
	}
	m.inputs[m.focus].Blur()
	m.focus = (i + len(m.inputs)) % len(m.inputs)
	return m.inputs[m.focus].Focus()
}

func (m Model) formValues() map[string]string {
	values := make(map[string]string, len(m.fields))
	for i, f := range m.fields {
		values[f.Key] = m.inputs[i].Value()
	}
	return values
}

// calculateCmd returns a command that runs a calculation on the engine
func calculateCmd(engine *calculation.CalculationEngine, calc *domain.Calculation) tea.Cmd {
	return func() tea.Msg {
		kind, _ := calc.Kind()
		result, err := engine.Calculate(context.Background(), calc)
		return CalculationCompleteMsg{Kind: kind, Result: result, Err: err}
	}
}

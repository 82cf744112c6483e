package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case CalculationCompleteMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.result = msg.Result
		m.currentScene = SceneResult
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Force) {
			return m, tea.Quit
		}
		return m.handleKeyPress(msg)
	}

	// Let the focused input handle cursor blinks
	if m.currentScene == SceneForm && len(m.inputs) > 0 {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKeyPress processes keyboard input for the current scene
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.currentScene {
	case SceneMenu:
		return m.updateMenu(msg)
	case SceneForm:
		return m.updateForm(msg)
	case SceneResult:
		return m.updateResult(msg)
	}
	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.kinds)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		cmd := m.openForm(m.kinds[m.cursor])
		return m, cmd
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		m.inputs[m.focus].Blur()
		m.err = nil
		m.currentScene = SceneMenu
		return m, nil
	case key.Matches(msg, m.keys.Next):
		cmd := m.focusInput(m.focus + 1)
		return m, cmd
	case key.Matches(msg, m.keys.Prev):
		cmd := m.focusInput(m.focus - 1)
		return m, cmd
	case key.Matches(msg, m.keys.Submit):
		calc, err := buildCalculation(m.kind, m.formValues())
		if err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.loading = true
		return m, calculateCmd(m.calcEngine, calc)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.currentScene = SceneForm
		cmd := m.focusInput(m.focus)
		return m, cmd
	case key.Matches(msg, m.keys.New):
		m.result = nil
		m.currentScene = SceneMenu
	}
	return m, nil
}

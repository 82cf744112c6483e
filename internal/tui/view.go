package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/fincalc/internal/output"
	"github.com/rgehrsitz/fincalc/internal/tui/components"
)

// View renders the current state of the application
func (m Model) View() string {
	var content string
	switch m.currentScene {
	case SceneMenu:
		content = m.renderMenu()
	case SceneForm:
		content = m.renderForm()
	case SceneResult:
		content = m.renderResult()
	default:
		content = "Unknown scene"
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		content,
		m.help.View(m.keys.help(m.currentScene)),
	)
}

// renderTitleBar renders the application title and breadcrumb
func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("fincalc - Personal Finance Calculators")

	breadcrumb := m.currentScene.String()
	if m.currentScene != SceneMenu && m.kind != "" {
		breadcrumb = fmt.Sprintf("%s / %s", m.kind.Title(), breadcrumb)
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, SubtitleStyle.Render(breadcrumb))
}

func (m Model) renderMenu() string {
	var b strings.Builder
	for i, k := range m.kinds {
		if i == m.cursor {
			b.WriteString(SelectedItemStyle.Render("> " + k.Title()))
		} else {
			b.WriteString(UnselectedItemStyle.Render("  " + k.Title()))
		}
		if i < len(m.kinds)-1 {
			b.WriteString("\n")
		}
	}
	return BorderStyle.Render(b.String())
}

func (m Model) renderForm() string {
	var b strings.Builder
	for i, f := range m.fields {
		label := f.Label
		if i == m.focus {
			label = SelectedItemStyle.Render(label)
		}
		b.WriteString(ParameterLabelStyle.Render(label))
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	switch {
	case m.loading:
		b.WriteString("\nCalculating...")
	case m.err != nil:
		b.WriteString("\n" + ErrorStyle.Render("Error: "+m.err.Error()))
	}

	return BorderStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderResult() string {
	if m.result == nil {
		return BorderStyle.Render("No result")
	}

	fields := m.result.Fields()
	cards := make([]*components.MetricCard, 0, len(fields))
	for _, f := range fields {
		cards = append(cards, components.NewMetricCard(f.Key, output.FormatAmount(f.Value)).WithWidth(36))
	}

	columns := max(1, m.width/38)
	return components.MetricGrid(cards, columns)
}

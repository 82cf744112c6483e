package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/fincalc/internal/domain"
)

var (
	consoleTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	consoleEntryStyle = lipgloss.NewStyle().Bold(true)
	consoleKindStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	consoleLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	consoleValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	consoleErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87"))
)

// ConsoleFormatter renders a human readable report, one block per calculation.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.PlanResult) ([]byte, error) {
	var buf bytes.Buffer

	title := results.Name
	if title == "" {
		title = "Calculation results"
	}
	fmt.Fprintln(&buf, consoleTitleStyle.Render(title))
	fmt.Fprintln(&buf, strings.Repeat("=", lipgloss.Width(title)))

	for i := range results.Results {
		cr := &results.Results[i]
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "%s  %s\n",
			consoleEntryStyle.Render(fmt.Sprintf("%d. %s", i+1, cr.Name)),
			consoleKindStyle.Render(calculatorTitle(cr)))

		if cr.Failed() {
			fmt.Fprintf(&buf, "   %s\n", consoleErrorStyle.Render("error: "+cr.Error))
			continue
		}

		fields := resultFields(cr)
		width := 0
		for _, f := range fields {
			width = max(width, len(f.Key))
		}
		for _, f := range fields {
			label := consoleLabelStyle.Render(fmt.Sprintf("%-*s", width, f.Key))
			fmt.Fprintf(&buf, "   %s  %s\n", label, consoleValueStyle.Render(FormatAmount(f.Value)))
		}
	}

	fmt.Fprintln(&buf)
	summary := fmt.Sprintf("%d calculations, %d failed", len(results.Results), results.Failed)
	if results.Failed > 0 {
		summary = consoleErrorStyle.Render(summary)
	}
	fmt.Fprintln(&buf, summary)
	return buf.Bytes(), nil
}

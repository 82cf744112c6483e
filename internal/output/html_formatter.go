package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/rgehrsitz/fincalc/internal/domain"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"amount": FormatAmount,
	"title":  func(cr domain.CalculationResult) string { return calculatorTitle(&cr) },
	"fields": func(cr domain.CalculationResult) []domain.Field { return resultFields(&cr) },
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(results *domain.PlanResult) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, results); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

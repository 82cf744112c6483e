package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rgehrsitz/fincalc/internal/domain"
)

// CSVFormatter writes one row per result field in plan order. A failed
// calculation contributes a single row with field "error".
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(results *domain.PlanResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"calculation", "calculator", "field", "value"}); err != nil {
		return nil, err
	}
	for i := range results.Results {
		cr := &results.Results[i]
		if cr.Failed() {
			if err := w.Write([]string{cr.Name, string(cr.Kind), "error", cr.Error}); err != nil {
				return nil, err
			}
			continue
		}
		for _, f := range resultFields(cr) {
			if err := w.Write([]string{cr.Name, string(cr.Kind), f.Key, f.Value.String()}); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

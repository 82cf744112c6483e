package output

import (
	"strings"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// FormatAmount renders a value with thousands separators, keeping any fraction
// digits as computed (ratios carry two places, money none).
func FormatAmount(amount decimal.Decimal) string {
	s := amount.String()
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if hasFrac {
		return sign + b.String() + "." + frac
	}
	return sign + b.String()
}

// calculatorTitle names the calculator of an entry, falling back when the
// entry never resolved to a single calculator
func calculatorTitle(cr *domain.CalculationResult) string {
	if cr.Kind == "" {
		return "invalid calculation"
	}
	return cr.Kind.Title()
}

func resultFields(cr *domain.CalculationResult) []domain.Field {
	if cr.Result == nil {
		return nil
	}
	return cr.Result.Fields()
}

package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func dPtr(v float64) *decimal.Decimal {
	x := decimal.NewFromFloat(v)
	return &x
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	want := decimal.RequireFromString(expected)
	assert.True(t, want.Equal(actual), append([]interface{}{"expected %s, got %s", want.String(), actual.String()}, msgAndArgs...)...)
}

func assertValidationError(t *testing.T, err error, field string) {
	t.Helper()
	if !assert.Error(t, err) {
		return
	}
	var verr *ValidationError
	if assert.ErrorAs(t, err, &verr) {
		assert.Equal(t, field, verr.Field)
	}
	assert.ErrorIs(t, err, ErrValidation)
}

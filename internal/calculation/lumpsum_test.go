package calculation

import (
	"encoding/json"
	"testing"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLumpsum_WithoutInflation(t *testing.T) {
	result, err := Lumpsum(domain.LumpsumInput{
		Amount:       d(100000),
		Years:        10,
		AnnualReturn: d(12),
	})
	require.NoError(t, err)

	assertDecimal(t, "310585", result.FutureValue)
	assert.Nil(t, result.InflationAdjustedValue)

	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "inflation_adjusted_value")

	for _, f := range result.Fields() {
		assert.NotEqual(t, "inflation_adjusted_value", f.Key)
	}
}

func TestLumpsum_WithInflation(t *testing.T) {
	result, err := Lumpsum(domain.LumpsumInput{
		Amount:       d(100000),
		Years:        10,
		AnnualReturn: d(12),
		Inflation:    dPtr(6),
	})
	require.NoError(t, err)

	assertDecimal(t, "310585", result.FutureValue)
	require.NotNil(t, result.InflationAdjustedValue)
	assertDecimal(t, "173429", *result.InflationAdjustedValue)
}

func TestLumpsum_ZeroInflationIsNotAbsent(t *testing.T) {
	result, err := Lumpsum(domain.LumpsumInput{
		Amount:       d(100000),
		Years:        10,
		AnnualReturn: d(12),
		Inflation:    dPtr(0),
	})
	require.NoError(t, err)

	require.NotNil(t, result.InflationAdjustedValue)
	assert.True(t, result.FutureValue.Equal(*result.InflationAdjustedValue))

	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.Contains(t, string(data), "inflation_adjusted_value")
}

func TestLumpsum_InflationEqualToReturnKeepsRealValue(t *testing.T) {
	for _, rate := range []float64{3, 7, 12.5} {
		result, err := Lumpsum(domain.LumpsumInput{
			Amount:       d(100000),
			Years:        10,
			AnnualReturn: d(rate),
			Inflation:    dPtr(rate),
		})
		require.NoError(t, err)
		require.NotNil(t, result.InflationAdjustedValue)
		assertDecimal(t, "100000", *result.InflationAdjustedValue)
	}
}

func TestLumpsum_Validation(t *testing.T) {
	_, err := Lumpsum(domain.LumpsumInput{Amount: d(100), Years: -2, AnnualReturn: d(5)})
	assertValidationError(t, err, "years")

	_, err = Lumpsum(domain.LumpsumInput{Amount: d(100), Years: 2, AnnualReturn: d(5), Inflation: dPtr(-100)})
	assertValidationError(t, err, "inflation")

	_, err = Lumpsum(domain.LumpsumInput{Amount: decimal.NewFromInt(-5), Years: 2, AnnualReturn: d(5)})
	assertValidationError(t, err, "amount")
}

package output

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func buildTestPlanResult() *domain.PlanResult {
	return &domain.PlanResult{
		Name: "Household goals",
		Results: []domain.CalculationResult{
			{
				Name: "Monthly SIP",
				Kind: domain.KindSIP,
				Result: &domain.SIPResult{
					MaturityValue: dec("2240359"),
					TotalInvested: dec("1200000"),
					WealthGained:  dec("1040359"),
					Multiple:      dec("1.87"),
				},
			},
			{
				Name: "Daughter college",
				Kind: domain.KindEducation,
				Result: &domain.EducationResult{
					GoalAtCollege:  domain.EducationGoal{TotalRequired: dec("6127465")},
					ExistingCorpus: domain.EducationCorpus{Today: dec("200000"), ValueAtCollege: dec("872699")},
					InvestmentRequired: domain.InvestmentRequired{
						LumpSumToday: dec("1204257"),
						MonthlySIP:   dec("13978"),
					},
				},
			},
			{
				Name:       "Bad loan",
				Kind:       domain.KindEMI,
				Error:      "emi: tenure_years: must be positive",
				ErrorField: "tenure_years",
			},
		},
		Failed: 1,
	}
}

func TestGetFormatterByName(t *testing.T) {
	for _, name := range []string{"console", "json", "yaml", "csv", "html"} {
		f := GetFormatterByName(name)
		require.NotNil(t, f, "formatter %s should be registered", name)
		assert.Equal(t, name, f.Name())
	}

	assert.Equal(t, "yaml", GetFormatterByName(" YML ").Name())
	assert.Equal(t, "console", GetFormatterByName("table").Name())
	assert.Nil(t, GetFormatterByName("non-existent"))
}

func TestAvailableFormatterNames(t *testing.T) {
	assert.Equal(t, []string{"console", "csv", "html", "json", "yaml"}, AvailableFormatterNames())
}

func TestFormatAmount(t *testing.T) {
	tests := map[string]string{
		"0":        "0",
		"999":      "999",
		"1000":     "1,000",
		"2240359":  "2,240,359",
		"-1234567": "-1,234,567",
		"1.87":     "1.87",
		"12345.5":  "12,345.5",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatAmount(dec(in)), "input %s", in)
	}
}

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestPlanResult())
	require.NoError(t, err)

	content := string(out)
	assert.Contains(t, content, "Household goals")
	assert.Contains(t, content, "1. Monthly SIP")
	assert.Contains(t, content, "SIP Future Value")
	assert.Contains(t, content, "2,240,359")
	assert.Contains(t, content, "investment_required.monthly_sip")
	assert.Contains(t, content, "error: emi: tenure_years: must be positive")
	assert.Contains(t, content, "3 calculations, 1 failed")
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{}.Format(buildTestPlanResult())
	require.NoError(t, err)

	var decoded struct {
		Name    string `json:"name"`
		Failed  int    `json:"failed"`
		Results []struct {
			Name       string                 `json:"name"`
			Calculator string                 `json:"calculator"`
			Result     map[string]interface{} `json:"result"`
			ErrorField string                 `json:"error_field"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(out, &decoded))

	assert.Equal(t, "Household goals", decoded.Name)
	assert.Equal(t, 1, decoded.Failed)
	require.Len(t, decoded.Results, 3)
	assert.Equal(t, "sip", decoded.Results[0].Calculator)
	assert.Contains(t, decoded.Results[0].Result, "maturity_value")
	assert.Contains(t, decoded.Results[1].Result, "investment_required")
	assert.Nil(t, decoded.Results[2].Result)
	assert.Equal(t, "tenure_years", decoded.Results[2].ErrorField)
}

func TestYAMLFormatter(t *testing.T) {
	out, err := YAMLFormatter{}.Format(buildTestPlanResult())
	require.NoError(t, err)

	content := string(out)
	assert.Contains(t, content, "maturity_value: 2240359")
	assert.Contains(t, content, "multiple: 1.87")
	assert.NotContains(t, content, `"2240359"`, "numbers should not be quoted")

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, "Household goals", decoded["name"])
	assert.Equal(t, 1, decoded["failed"])

	results := decoded["results"].([]interface{})
	require.Len(t, results, 3)

	college := results[1].(map[string]interface{})["result"].(map[string]interface{})
	required := college["investment_required"].(map[string]interface{})
	assert.Equal(t, 13978, required["monthly_sip"])
	assert.Equal(t, 1204257, required["lump_sum_today"])

	bad := results[2].(map[string]interface{})
	assert.Equal(t, "tenure_years", bad["error_field"])
	assert.NotContains(t, bad, "result")
}

func TestCSVFormatter(t *testing.T) {
	out, err := CSVFormatter{}.Format(buildTestPlanResult())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)

	// header + 4 SIP fields + 5 education fields + 1 error row
	require.Len(t, records, 11)
	assert.Equal(t, []string{"calculation", "calculator", "field", "value"}, records[0])
	assert.Equal(t, []string{"Monthly SIP", "sip", "maturity_value", "2240359"}, records[1])
	assert.Equal(t, []string{"Daughter college", "education_goal", "investment_required.monthly_sip", "13978"}, records[9])
	assert.Equal(t, []string{"Bad loan", "emi", "error", "emi: tenure_years: must be positive"}, records[10])
}

func TestHTMLFormatter(t *testing.T) {
	out, err := HTMLFormatter{}.Format(buildTestPlanResult())
	require.NoError(t, err)

	content := string(out)
	assert.Contains(t, content, "<h1>Household goals</h1>")
	assert.Contains(t, content, "2,240,359")
	assert.Contains(t, content, "Education Goal")
	assert.Contains(t, content, `class="error"`)
	assert.Contains(t, content, "3 calculations, 1 failed")
}

func TestFormatterFuncAndWriteFormatted(t *testing.T) {
	f := FormatterFunc{ID: "names", F: func(r *domain.PlanResult) ([]byte, error) {
		names := make([]string, 0, len(r.Results))
		for _, cr := range r.Results {
			names = append(names, cr.Name)
		}
		return []byte(strings.Join(names, ",")), nil
	}}

	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, WriteFormatted(f, buildTestPlanResult(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Monthly SIP,Daughter college,Bad loan", string(data))
}

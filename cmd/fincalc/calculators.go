package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/fincalc/internal/domain"
)

// decimalValue lets decimal fields be bound as command-line flags
type decimalValue struct {
	p *decimal.Decimal
}

func (v *decimalValue) String() string {
	if v.p == nil {
		return "0"
	}
	return v.p.String()
}

func (v *decimalValue) Set(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("not a number: %q", s)
	}
	*v.p = d
	return nil
}

func (v *decimalValue) Type() string { return "decimal" }

// optionalDecimalValue leaves the target nil until the flag is given
type optionalDecimalValue struct {
	p **decimal.Decimal
}

func (v *optionalDecimalValue) String() string {
	if v.p == nil || *v.p == nil {
		return ""
	}
	return (*v.p).String()
}

func (v *optionalDecimalValue) Set(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("not a number: %q", s)
	}
	*v.p = &d
	return nil
}

func (v *optionalDecimalValue) Type() string { return "decimal" }

func decimalFlag(cmd *cobra.Command, p *decimal.Decimal, name, usage string) {
	cmd.Flags().Var(&decimalValue{p: p}, name, usage)
	_ = cmd.MarkFlagRequired(name)
}

func intFlag(cmd *cobra.Command, p *int, name, usage string) {
	cmd.Flags().IntVar(p, name, 0, usage)
	_ = cmd.MarkFlagRequired(name)
}

// calculatorCmd wires a single calculation to a subcommand. The calculation is
// filled in by flag parsing before RunE runs.
func calculatorCmd(kind domain.CalculatorKind, use string, calc *domain.Calculation) *cobra.Command {
	calc.Name = kind.Title()
	return &cobra.Command{
		Use:   use,
		Short: kind.Title() + " calculator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAndFormat(cmd, &domain.Plan{
				Name:         kind.Title(),
				Calculations: []domain.Calculation{*calc},
			}, "")
		},
	}
}

func calculatorCmds() []*cobra.Command {
	return []*cobra.Command{
		sipCmd(), stepUpCmd(), emiCmd(), tenureCmd(), lumpsumCmd(),
		educationCmd(), retirementCmd(), marriageCmd(), delayCmd(),
	}
}

func sipCmd() *cobra.Command {
	in := &domain.SIPInput{}
	cmd := calculatorCmd(domain.KindSIP, "sip", &domain.Calculation{SIP: in})
	decimalFlag(cmd, &in.MonthlyContribution, "monthly-contribution", "Monthly contribution")
	intFlag(cmd, &in.Years, "years", "Investment period in years")
	decimalFlag(cmd, &in.AnnualReturn, "annual-return", "Expected annual return in percent")
	return cmd
}

func stepUpCmd() *cobra.Command {
	in := &domain.StepUpSIPInput{}
	cmd := calculatorCmd(domain.KindStepUpSIP, "step-up", &domain.Calculation{StepUpSIP: in})
	decimalFlag(cmd, &in.MonthlyContribution, "monthly-contribution", "Starting monthly contribution")
	intFlag(cmd, &in.Years, "years", "Investment period in years")
	decimalFlag(cmd, &in.AnnualReturn, "annual-return", "Expected annual return in percent")
	decimalFlag(cmd, &in.AnnualStepUp, "annual-step-up", "Yearly contribution increase in percent")
	return cmd
}

func emiCmd() *cobra.Command {
	in := &domain.LoanInput{}
	cmd := calculatorCmd(domain.KindEMI, "emi", &domain.Calculation{EMI: in})
	decimalFlag(cmd, &in.Principal, "principal", "Loan amount")
	intFlag(cmd, &in.TenureYears, "tenure-years", "Loan tenure in years")
	decimalFlag(cmd, &in.AnnualRate, "annual-rate", "Annual interest rate in percent")
	return cmd
}

func tenureCmd() *cobra.Command {
	in := &domain.TenureInput{}
	cmd := calculatorCmd(domain.KindTenure, "tenure", &domain.Calculation{Tenure: in})
	decimalFlag(cmd, &in.TargetAmount, "target-amount", "Amount to reach")
	decimalFlag(cmd, &in.MonthlyContribution, "monthly-contribution", "Monthly contribution")
	decimalFlag(cmd, &in.AnnualReturn, "annual-return", "Expected annual return in percent")
	return cmd
}

func lumpsumCmd() *cobra.Command {
	in := &domain.LumpsumInput{}
	cmd := calculatorCmd(domain.KindLumpsum, "lumpsum", &domain.Calculation{Lumpsum: in})
	decimalFlag(cmd, &in.Amount, "amount", "Amount invested today")
	intFlag(cmd, &in.Years, "years", "Investment period in years")
	decimalFlag(cmd, &in.AnnualReturn, "annual-return", "Expected annual return in percent")
	cmd.Flags().Var(&optionalDecimalValue{p: &in.Inflation}, "inflation", "Annual inflation in percent, adds the real value when set")
	return cmd
}

func educationCmd() *cobra.Command {
	in := &domain.EducationInput{}
	cmd := calculatorCmd(domain.KindEducation, "education", &domain.Calculation{Education: in})
	intFlag(cmd, &in.ChildAge, "child-age", "Child's current age")
	intFlag(cmd, &in.CollegeAge, "college-age", "Age at which college starts")
	intFlag(cmd, &in.EducationDurationYears, "duration-years", "Length of the course in years")
	decimalFlag(cmd, &in.AnnualCostToday, "annual-cost", "Yearly education cost in today's money")
	cmd.Flags().Var(&decimalValue{p: &in.ExistingCorpus}, "existing-corpus", "Savings already set aside")
	decimalFlag(cmd, &in.InvestmentReturn, "investment-return", "Expected annual return in percent")
	decimalFlag(cmd, &in.EducationInflation, "education-inflation", "Annual education inflation in percent")
	return cmd
}

func retirementCmd() *cobra.Command {
	in := &domain.RetirementInput{}
	cmd := calculatorCmd(domain.KindRetirement, "retirement", &domain.Calculation{Retirement: in})
	intFlag(cmd, &in.CurrentAge, "current-age", "Current age")
	intFlag(cmd, &in.RetirementAge, "retirement-age", "Planned retirement age")
	intFlag(cmd, &in.LifeExpectancy, "life-expectancy", "Age the corpus has to last until")
	decimalFlag(cmd, &in.CurrentMonthlyExpense, "monthly-expense", "Monthly expense in today's money")
	decimalFlag(cmd, &in.InflationRate, "inflation", "Annual inflation in percent")
	cmd.Flags().Var(&decimalValue{p: &in.CurrentMonthlySaving}, "monthly-saving", "Current monthly saving")
	cmd.Flags().Var(&decimalValue{p: &in.ExistingCorpus}, "existing-corpus", "Savings already set aside")
	decimalFlag(cmd, &in.PreRetirementReturn, "pre-retirement-return", "Annual return before retirement in percent")
	decimalFlag(cmd, &in.PostRetirementReturn, "post-retirement-return", "Annual return after retirement in percent")
	return cmd
}

func marriageCmd() *cobra.Command {
	in := &domain.MarriageInput{}
	cmd := calculatorCmd(domain.KindMarriage, "marriage", &domain.Calculation{Marriage: in})
	intFlag(cmd, &in.CurrentAge, "current-age", "Current age")
	intFlag(cmd, &in.MarriageAge, "marriage-age", "Age at the goal date")
	decimalFlag(cmd, &in.MarriageCostToday, "cost-today", "Cost in today's money")
	cmd.Flags().Var(&decimalValue{p: &in.ExistingCorpus}, "existing-corpus", "Savings already set aside")
	decimalFlag(cmd, &in.InvestmentReturn, "investment-return", "Expected annual return in percent")
	decimalFlag(cmd, &in.CostInflation, "cost-inflation", "Annual cost inflation in percent")
	return cmd
}

func delayCmd() *cobra.Command {
	in := &domain.CostOfDelayInput{}
	cmd := calculatorCmd(domain.KindCostOfDelay, "delay", &domain.Calculation{CostOfDelay: in})
	decimalFlag(cmd, &in.MonthlyContribution, "monthly-contribution", "Monthly contribution")
	intFlag(cmd, &in.Years, "years", "Investment period in years")
	decimalFlag(cmd, &in.AnnualReturn, "annual-return", "Expected annual return in percent")
	intFlag(cmd, &in.DelayMonths, "delay-months", "Months the start is postponed")
	return cmd
}

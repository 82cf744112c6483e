package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/fincalc/internal/calculation"
	"github.com/rgehrsitz/fincalc/internal/config"
	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/rgehrsitz/fincalc/internal/output"
	"github.com/rgehrsitz/fincalc/internal/server"
	"github.com/rgehrsitz/fincalc/internal/tui"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fincalc %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.Main.Version
	}
	return ""
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "fincalc",
		Short: "Personal finance projection calculators",
		Long: `Deterministic projections for systematic investment plans, loans,
lump sums and savings goals.

Examples:
  fincalc sip --monthly-contribution 10000 --years 10 --annual-return 12
  fincalc emi --principal 1000000 --tenure-years 20 --annual-rate 8.5 -f json
  fincalc run plan.yaml --format html --output report.html
  fincalc serve --config fincalc.toml
`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringP("format", "f", "console", "Output format ("+strings.Join(output.AvailableFormatterNames(), ", ")+")")
	root.PersistentFlags().Bool("debug", false, "Enable debug output for detailed calculations")

	for _, c := range calculatorCmds() {
		root.AddCommand(c)
	}
	root.AddCommand(runCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(serveCmd())
	root.AddCommand(tuiCmd())
	root.AddCommand(versionCmd())
	return root
}

// newEngine builds a calculation engine honouring the --debug flag
func newEngine(cmd *cobra.Command) *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	debugMode, _ := cmd.Flags().GetBool("debug")
	if debugMode {
		engine.SetLogger(simpleCLILogger{})
	}
	engine.Debug = debugMode
	return engine
}

// runAndFormat runs the plan and writes it in the selected format, to filename
// when one is given and to the command output otherwise
func runAndFormat(cmd *cobra.Command, plan *domain.Plan, filename string) error {
	outputFormat, _ := cmd.Flags().GetString("format")
	f := output.GetFormatterByName(outputFormat)
	if f == nil {
		return fmt.Errorf("unsupported format %q (available: %s)", outputFormat, strings.Join(output.AvailableFormatterNames(), ", "))
	}

	results, runErr := newEngine(cmd).RunPlan(cmd.Context(), plan)
	if results == nil {
		return runErr
	}

	if filename != "" {
		if err := output.WriteFormatted(f, results, filename); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", filename)
	} else {
		data, err := f.Format(results)
		if err != nil {
			return err
		}
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return err
		}
	}

	if runErr != nil {
		return runErr
	}
	if results.Failed > 0 {
		return fmt.Errorf("%d of %d calculations failed", results.Failed, len(results.Results))
	}
	return nil
}

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [plan-file]",
		Short: "Run every calculation of a YAML plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			outputFile, _ := cmd.Flags().GetString("output")
			return runAndFormat(cmd, plan, outputFile)
		},
	}
	cmd.Flags().StringP("output", "o", "", "Write the report to a file instead of stdout")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [plan-file]",
		Short: "Validate a plan file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Plan file %s is valid (%d calculations)\n", args[0], len(plan.Calculations))
			return nil
		},
	}
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculators over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile, _ := cmd.Flags().GetString("config")
			cfg, err := config.LoadAppConfig(configFile)
			if err != nil {
				return err
			}

			cache, err := server.NewResultCache(cfg)
			if err != nil {
				return err
			}
			if closer, ok := cache.(io.Closer); ok {
				defer closer.Close()
			}

			logger := simpleCLILogger{}
			srv := server.NewServer(cfg, newEngine(cmd), cache, logger)

			addr := cfg.Addr()
			if flagAddr, _ := cmd.Flags().GetString("addr"); flagAddr != "" {
				addr = flagAddr
			}
			logger.Infof("result cache: %s", cfg.Cache.Backend)
			return srv.Run(cmd.Context(), addr)
		},
	}
	cmd.Flags().StringP("config", "c", "", "Path to a TOML server config (defaults are used when empty)")
	cmd.Flags().String("addr", "", "Listen address, overrides server.port")
	return cmd
}

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui [calculator]",
		Short: "Browse the calculators interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model := tui.NewModel(newEngine(cmd))
			if len(args) == 1 {
				kind, err := domain.ParseCalculatorKind(args[0])
				if err != nil {
					return err
				}
				model = model.WithCalculator(kind)
			}

			p := tea.NewProgram(
				model,
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running TUI: %w", err)
			}
			return nil
		},
	}
}

func main() {
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/investment-projector/internal/buildinfo"
	"github.com/rpgo/investment-projector/internal/calculation"
	"github.com/rpgo/investment-projector/internal/config"
	"github.com/rpgo/investment-projector/internal/domain"
	"github.com/rpgo/investment-projector/internal/output"
)

// rootOptions holds the persistent flags shared by every subcommand
type rootOptions struct {
	configPath string
	format     string
	verbose    bool
	save       bool
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "invproj",
		Short:   "Project investment growth and Monte Carlo risk ranges by asset class",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "asset catalog file (.yaml, .json or .toml); built-in catalog if empty")
	rootCmd.PersistentFlags().StringVarP(&opts.format, "format", "f", "console", "output format: "+fmt.Sprint(output.FormatNames()))
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log calculation details to stderr")
	rootCmd.PersistentFlags().BoolVar(&opts.save, "save", false, "also write the output to a timestamped file")

	rootCmd.AddCommand(
		newAssetsCommand(opts),
		newInitConfigCommand(),
		newProjectCommand(opts),
		newRiskCommand(opts),
		newDashboardCommand(opts),
		newCompareCommand(opts),
	)

	return rootCmd
}

// loadEngine reads the configured catalog and wires logging into a new engine
func loadEngine(cmd *cobra.Command, opts *rootOptions) (*calculation.Engine, error) {
	cfg, err := config.NewInputParser().Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("loading asset catalog: %w", err)
	}
	engine := calculation.NewEngine(cfg)
	engine.SetLogger(newLogger(cmd.ErrOrStderr(), opts.verbose))
	return engine, nil
}

// emit renders a report to stdout and optionally saves it
func emit(cmd *cobra.Command, opts *rootOptions, report *domain.Report) error {
	if err := output.Render(cmd.OutOrStdout(), report, opts.format); err != nil {
		return err
	}
	if opts.save {
		name, err := output.Save(report, opts.format)
		if err != nil {
			return fmt.Errorf("saving report: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Report saved to %s\n", name)
	}
	return nil
}

// seedFlag returns the --seed value when it was given explicitly
func seedFlag(cmd *cobra.Command, seed int64) *int64 {
	if !cmd.Flags().Changed("seed") {
		return nil
	}
	return &seed
}

// planFlags registers the investment plan flags with dashboard defaults
func planFlags(cmd *cobra.Command, plan *domain.InvestmentPlan) {
	cmd.Flags().Float64VarP(&plan.Principal, "principal", "p", 10000, "initial investment")
	cmd.Flags().Float64VarP(&plan.MonthlyContribution, "monthly", "m", 500, "monthly contribution")
	cmd.Flags().IntVarP(&plan.HorizonYears, "years", "y", 10, "time horizon in years")
}

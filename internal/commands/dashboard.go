package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rpgo/investment-projector/internal/calculation"
	"github.com/rpgo/investment-projector/internal/domain"
)

func newDashboardCommand(opts *rootOptions) *cobra.Command {
	var plan domain.InvestmentPlan
	var seed int64

	cmd := &cobra.Command{
		Use:   "dashboard <asset>",
		Short: "Show the growth projection and risk range for one asset class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := loadEngine(cmd, opts)
			if err != nil {
				return err
			}
			name, ok := engine.Catalog.Resolve(args[0])
			if !ok {
				return fmt.Errorf("%w: %q (available: %s)", calculation.ErrUnknownAsset, args[0],
					strings.Join(engine.Catalog.Names(), ", "))
			}
			report, err := engine.BuildReport(name, plan, seedFlag(cmd, seed))
			if err != nil {
				return err
			}
			return emit(cmd, opts, &domain.Report{Assets: []domain.AssetReport{*report}})
		},
	}

	planFlags(cmd, &plan)
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for reproducible results")

	return cmd
}

func newCompareCommand(opts *rootOptions) *cobra.Command {
	var plan domain.InvestmentPlan
	var seed int64

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run the same plan against every asset class",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := loadEngine(cmd, opts)
			if err != nil {
				return err
			}
			report, err := engine.CompareAssets(cmd.Context(), plan, seedFlag(cmd, seed))
			if err != nil {
				return err
			}
			return emit(cmd, opts, report)
		},
	}

	planFlags(cmd, &plan)
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for reproducible results")

	return cmd
}

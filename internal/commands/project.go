package commands

import (
	"github.com/spf13/cobra"

	"github.com/rpgo/investment-projector/internal/domain"
)

func newProjectCommand(opts *rootOptions) *cobra.Command {
	var in domain.ProjectionInput

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project a balance with monthly compounding and fixed contributions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := loadEngine(cmd, opts)
			if err != nil {
				return err
			}
			series, err := engine.Project(in)
			if err != nil {
				return err
			}
			return emit(cmd, opts, &domain.Report{Assets: []domain.AssetReport{{
				Asset: domain.AssetClass{ExpectedReturn: in.AnnualRate},
				Plan: domain.InvestmentPlan{
					Principal:           in.Principal,
					MonthlyContribution: in.MonthlyContribution,
					HorizonYears:        in.HorizonYears,
				},
				Growth: series,
			}}})
		},
	}

	cmd.Flags().Float64VarP(&in.Principal, "principal", "p", 0, "initial investment")
	cmd.Flags().Float64VarP(&in.MonthlyContribution, "monthly", "m", 0, "monthly contribution")
	cmd.Flags().Float64VarP(&in.AnnualRate, "rate", "r", 0, "annual rate as a decimal (0.05 = 5%)")
	cmd.Flags().IntVarP(&in.HorizonYears, "years", "y", 10, "time horizon in years")

	return cmd
}

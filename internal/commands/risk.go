package commands

import (
	"github.com/spf13/cobra"

	"github.com/rpgo/investment-projector/internal/domain"
)

func newRiskCommand(opts *rootOptions) *cobra.Command {
	var in domain.RiskInput
	var seed int64

	cmd := &cobra.Command{
		Use:   "risk",
		Short: "Estimate the 5th/50th/95th percentile outcome of a lump sum",
		Long: "Runs a Monte Carlo simulation of a single lump sum under a lognormal annual return model.\n" +
			"Periodic contributions are not simulated; pass principal plus total contributions to approximate them.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := loadEngine(cmd, opts)
			if err != nil {
				return err
			}
			in.Seed = seedFlag(cmd, seed)
			if in.SimulationCount == 0 {
				in.SimulationCount = engine.Simulations
			}
			est, err := engine.EstimateRisk(in)
			if err != nil {
				return err
			}
			return emit(cmd, opts, &domain.Report{Assets: []domain.AssetReport{{
				Asset:       domain.AssetClass{ExpectedReturn: in.MeanReturn, Volatility: in.Volatility},
				Plan:        domain.InvestmentPlan{Principal: in.BasePrincipal, HorizonYears: in.HorizonYears},
				Risk:        &est,
				RiskBasis:   in.BasePrincipal,
				Simulations: in.SimulationCount,
			}}})
		},
	}

	cmd.Flags().Float64VarP(&in.BasePrincipal, "principal", "p", 0, "lump sum to simulate")
	cmd.Flags().IntVarP(&in.HorizonYears, "years", "y", 10, "time horizon in years")
	cmd.Flags().Float64Var(&in.MeanReturn, "mean", 0, "annual expected return as a decimal")
	cmd.Flags().Float64Var(&in.Volatility, "volatility", 0, "annual volatility (standard deviation) as a decimal")
	cmd.Flags().IntVarP(&in.SimulationCount, "simulations", "s", 0, "number of simulated paths (0 = configured default)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for reproducible results")

	return cmd
}

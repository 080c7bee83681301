package calculation

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/rpgo/investment-projector/internal/domain"
)

// Engine runs growth projections and risk estimates against an asset catalog
type Engine struct {
	Catalog     domain.AssetCatalog
	Limits      domain.Limits
	Simulations int
	Logger      Logger
}

// NewEngine creates an engine from a loaded configuration
func NewEngine(config *domain.Configuration) *Engine {
	engine := &Engine{
		Limits:      DefaultLimits(),
		Simulations: DefaultSimulations,
		Logger:      NopLogger{},
	}
	if config != nil {
		engine.Catalog = config.Assets
		engine.Limits = withDefaults(config.Limits)
		if config.Simulations > 0 {
			engine.Simulations = config.Simulations
		}
	}
	return engine
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Project runs ProjectGrowth under the engine's limits
func (e *Engine) Project(in domain.ProjectionInput) (domain.GrowthSeries, error) {
	e.Logger.Debugf("projecting growth: principal=%.2f monthly=%.2f rate=%.4f years=%d",
		in.Principal, in.MonthlyContribution, in.AnnualRate, in.HorizonYears)
	return projectGrowth(in, e.Limits)
}

// EstimateRisk runs the Monte Carlo estimate under the engine's limits.
// A zero SimulationCount uses the engine's configured count.
func (e *Engine) EstimateRisk(in domain.RiskInput) (domain.RiskEstimate, error) {
	if in.SimulationCount == 0 {
		in.SimulationCount = e.Simulations
	}
	e.Logger.Debugf("estimating risk: base=%.2f years=%d mean=%.4f vol=%.4f sims=%d",
		in.BasePrincipal, in.HorizonYears, in.MeanReturn, in.Volatility, in.SimulationCount)
	return estimateRisk(in, e.Limits)
}

// BuildReport projects a plan against one asset class. The risk range is
// estimated on the combined basis of principal plus every contribution,
// treated as a lump sum.
func (e *Engine) BuildReport(assetName string, plan domain.InvestmentPlan, seed *int64) (*domain.AssetReport, error) {
	asset, ok := e.Catalog.Lookup(assetName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAsset, assetName)
	}

	growth, err := e.Project(domain.ProjectionInput{
		Principal:           plan.Principal,
		MonthlyContribution: plan.MonthlyContribution,
		AnnualRate:          asset.ExpectedReturn,
		HorizonYears:        plan.HorizonYears,
	})
	if err != nil {
		return nil, fmt.Errorf("growth projection for %s: %w", assetName, err)
	}

	basis := plan.TotalContributed()
	if plan.MonthlyContribution > 0 {
		e.Logger.Warnf("risk range for %s treats %.2f of contributions as invested at the start", assetName, basis-plan.Principal)
	}
	risk, err := e.EstimateRisk(domain.RiskInput{
		BasePrincipal:   basis,
		HorizonYears:    plan.HorizonYears,
		MeanReturn:      asset.ExpectedReturn,
		Volatility:      asset.Volatility,
		SimulationCount: e.Simulations,
		Seed:            seed,
	})
	if err != nil {
		return nil, fmt.Errorf("risk estimate for %s: %w", assetName, err)
	}

	e.Logger.Infof("built report for %s over %d years", assetName, plan.HorizonYears)
	return &domain.AssetReport{
		Asset:       asset,
		Plan:        plan,
		Growth:      growth,
		Risk:        &risk,
		RiskBasis:   basis,
		Simulations: e.Simulations,
	}, nil
}

// CompareAssets builds a report for every asset class in the catalog
// concurrently. Results are in catalog name order. When seed is set, the
// i-th asset uses seed+i so the comparison is reproducible.
func (e *Engine) CompareAssets(ctx context.Context, plan domain.InvestmentPlan, seed *int64) (*domain.Report, error) {
	names := e.Catalog.Names()
	if len(names) == 0 {
		return nil, fmt.Errorf("asset catalog is empty")
	}

	reports := make([]domain.AssetReport, len(names))
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		var assetSeed *int64
		if seed != nil {
			s := *seed + int64(i)
			assetSeed = &s
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			report, err := e.BuildReport(name, plan, assetSeed)
			if err != nil {
				return err
			}
			reports[i] = *report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		e.Logger.Errorf("asset comparison failed: %v", err)
		return nil, err
	}

	return &domain.Report{Assets: reports}, nil
}

package calculation

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/rpgo/investment-projector/internal/domain"
)

// EstimateRisk runs a Monte Carlo simulation of a single lump sum over
// whole-year steps and reports the 5th, 50th and 95th percentile ending values.
//
// Annual log-returns are independent normal draws with mean
// meanReturn - volatility²/2 and standard deviation volatility (geometric
// Brownian motion with a one-year step). Each path ends at
// basePrincipal × exp(sum of its log-returns).
//
// Limitation: only a lump sum is modelled. A caller that also makes periodic
// contributions must approximate a combined basis itself (for example
// principal plus everything contributed over the horizon); contribution
// timing under volatility is not simulated.
//
// The percentile ordering is whatever the sample produces; with very small
// simulation counts ties are possible.
func EstimateRisk(in domain.RiskInput) (domain.RiskEstimate, error) {
	return estimateRisk(in, DefaultLimits())
}

func estimateRisk(in domain.RiskInput, limits domain.Limits) (domain.RiskEstimate, error) {
	if in.SimulationCount == 0 {
		in.SimulationCount = DefaultSimulations
	}
	if err := validateRisk(in, withDefaults(limits)); err != nil {
		return domain.RiskEstimate{}, err
	}

	// nothing invested or no time elapsed: every path ends at the base
	if in.HorizonYears == 0 || in.BasePrincipal == 0 {
		base := decimal.NewFromFloat(in.BasePrincipal)
		return domain.RiskEstimate{P5: base, P50: base, P95: base}, nil
	}

	seed := seedFunc()
	if in.Seed != nil {
		seed = *in.Seed
	}
	rng := newRandomSource(seed)

	drift := in.MeanReturn - 0.5*in.Volatility*in.Volatility
	endings := make([]float64, in.SimulationCount)
	for sim := range endings {
		var cumulative float64
		for year := 0; year < in.HorizonYears; year++ {
			cumulative += drift + in.Volatility*rng.NormFloat64()
		}
		endings[sim] = in.BasePrincipal * math.Exp(cumulative)
	}

	p := percentiles(endings, 5, 50, 95)
	for _, v := range p {
		if !isFinite(v) {
			return domain.RiskEstimate{}, invalid("ending values overflow for mean %g and volatility %g over %d years", in.MeanReturn, in.Volatility, in.HorizonYears)
		}
	}
	return domain.RiskEstimate{
		P5:  decimal.NewFromFloat(p[0]),
		P50: decimal.NewFromFloat(p[1]),
		P95: decimal.NewFromFloat(p[2]),
	}, nil
}

func validateRisk(in domain.RiskInput, limits domain.Limits) error {
	switch {
	case !isFinite(in.BasePrincipal):
		return invalid("base principal must be finite")
	case !isFinite(in.MeanReturn):
		return invalid("mean return must be finite")
	case !isFinite(in.Volatility):
		return invalid("volatility must be finite")
	case in.BasePrincipal < 0:
		return invalid("base principal cannot be negative")
	case in.Volatility < 0:
		return invalid("volatility cannot be negative")
	case in.HorizonYears < 0:
		return invalid("horizon years cannot be negative, got %d", in.HorizonYears)
	case in.HorizonYears > limits.MaxHorizonYears:
		return invalid("horizon years cannot exceed %d, got %d", limits.MaxHorizonYears, in.HorizonYears)
	case in.SimulationCount <= 0:
		return invalid("simulation count must be positive, got %d", in.SimulationCount)
	case in.SimulationCount > limits.MaxSimulations:
		return invalid("simulation count cannot exceed %d, got %d", limits.MaxSimulations, in.SimulationCount)
	}
	return nil
}

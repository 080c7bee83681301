package domain

import (
	"github.com/shopspring/decimal"
)

// ProjectionInput holds the parameters of a deterministic growth projection
type ProjectionInput struct {
	Principal           float64 `json:"principal"`
	MonthlyContribution float64 `json:"monthly_contribution"`
	AnnualRate          float64 `json:"annual_rate"` // decimal, e.g. 0.05 for 5%
	HorizonYears        int     `json:"horizon_years"`
}

// YearlySnapshot is one row of a growth projection, captured at each 12-month boundary
type YearlySnapshot struct {
	Year           int             `json:"year"`
	Balance        decimal.Decimal `json:"balance"`
	TotalPrincipal decimal.Decimal `json:"total_principal"`
	Interest       decimal.Decimal `json:"interest"`
}

// GrowthSeries is the ordered sequence of yearly snapshots, one per elapsed year
type GrowthSeries []YearlySnapshot

// Final returns the last snapshot of the series
func (gs GrowthSeries) Final() (YearlySnapshot, bool) {
	if len(gs) == 0 {
		return YearlySnapshot{}, false
	}
	return gs[len(gs)-1], true
}

// RiskInput holds the parameters of a Monte Carlo risk estimate.
// SimulationCount of zero selects the default count. A nil Seed draws a
// fresh seed for each call.
type RiskInput struct {
	BasePrincipal   float64 `json:"base_principal"`
	HorizonYears    int     `json:"horizon_years"`
	MeanReturn      float64 `json:"mean_return"`
	Volatility      float64 `json:"volatility"`
	SimulationCount int     `json:"simulation_count"`
	Seed            *int64  `json:"seed,omitempty"`
}

// RiskEstimate reports the 5th, 50th and 95th percentile ending values
type RiskEstimate struct {
	P5  decimal.Decimal `json:"p5"`  // pessimistic
	P50 decimal.Decimal `json:"p50"` // median
	P95 decimal.Decimal `json:"p95"` // optimistic
}

// InvestmentPlan is the user side of a dashboard: what goes in and for how long
type InvestmentPlan struct {
	Principal           float64 `json:"principal"`
	MonthlyContribution float64 `json:"monthly_contribution"`
	HorizonYears        int     `json:"horizon_years"`
}

// TotalContributed returns principal plus every monthly contribution over the horizon
func (p InvestmentPlan) TotalContributed() float64 {
	return p.Principal + p.MonthlyContribution*12*float64(p.HorizonYears)
}

// AssetReport combines the deterministic and stochastic views of one asset class
type AssetReport struct {
	Asset       AssetClass     `json:"asset"`
	Plan        InvestmentPlan `json:"plan"`
	Growth      GrowthSeries   `json:"growth,omitempty"`
	Risk        *RiskEstimate  `json:"risk,omitempty"`
	RiskBasis   float64        `json:"risk_basis,omitempty"`
	Simulations int            `json:"simulations,omitempty"`
}

// Report is what output formatters render; a single dashboard carries one asset
type Report struct {
	Assets []AssetReport `json:"assets"`
}

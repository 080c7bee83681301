package calculation

import (
	"github.com/rpgo/investment-projector/internal/domain"
	"github.com/rpgo/investment-projector/pkg/decimal"
)

// ProjectGrowth simulates a balance month by month with a fixed contribution
// and a fixed annual rate, returning one snapshot per elapsed year.
//
// The monthly rate is annualRate/12 (simple division, not the geometric
// equivalent rate). Each month interest on the current balance is added
// first, then the contribution. Values are rounded to cents only when a
// snapshot is emitted.
func ProjectGrowth(in domain.ProjectionInput) (domain.GrowthSeries, error) {
	return projectGrowth(in, DefaultLimits())
}

func projectGrowth(in domain.ProjectionInput, limits domain.Limits) (domain.GrowthSeries, error) {
	if err := validateProjection(in, withDefaults(limits)); err != nil {
		return nil, err
	}

	months := in.HorizonYears * 12
	monthlyRate := in.AnnualRate / 12

	series := make(domain.GrowthSeries, 0, in.HorizonYears)
	balance := in.Principal
	totalPrincipal := in.Principal

	for month := 1; month <= months; month++ {
		interest := balance * monthlyRate
		balance += interest + in.MonthlyContribution
		totalPrincipal += in.MonthlyContribution
		if !isFinite(balance) || !isFinite(totalPrincipal) {
			return nil, invalid("balance overflows in year %d", (month+11)/12)
		}

		if month%12 == 0 {
			series = append(series, domain.YearlySnapshot{
				Year:           month / 12,
				Balance:        decimal.Cents(balance),
				TotalPrincipal: decimal.Cents(totalPrincipal),
				Interest:       decimal.Cents(balance - totalPrincipal),
			})
		}
	}

	return series, nil
}

func validateProjection(in domain.ProjectionInput, limits domain.Limits) error {
	switch {
	case !isFinite(in.Principal):
		return invalid("principal must be finite")
	case !isFinite(in.MonthlyContribution):
		return invalid("monthly contribution must be finite")
	case !isFinite(in.AnnualRate):
		return invalid("annual rate must be finite")
	case in.Principal < 0:
		return invalid("principal cannot be negative")
	case in.MonthlyContribution < 0:
		return invalid("monthly contribution cannot be negative")
	case in.AnnualRate < -1:
		return invalid("annual rate cannot be less than -100%%")
	case in.HorizonYears <= 0:
		return invalid("horizon years must be positive, got %d", in.HorizonYears)
	case in.HorizonYears > limits.MaxHorizonYears:
		return invalid("horizon years cannot exceed %d, got %d", limits.MaxHorizonYears, in.HorizonYears)
	}
	return nil
}

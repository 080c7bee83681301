package calculation

import (
	"errors"
	"fmt"
	"math"

	"github.com/rpgo/investment-projector/internal/domain"
)

// ErrInvalidInput marks a caller-contract violation. Every validation error
// returned by this package wraps it; test with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// ErrUnknownAsset is returned when an asset class is not in the catalog
var ErrUnknownAsset = errors.New("unknown asset class")

// Default bounds for a single request. Simulation cost is
// O(horizonYears × simulationCount).
const (
	DefaultSimulations     = 1000
	DefaultMaxHorizonYears = 100
	DefaultMaxSimulations  = 100000
)

// DefaultLimits returns the bounds applied when none are configured
func DefaultLimits() domain.Limits {
	return domain.Limits{
		MaxHorizonYears: DefaultMaxHorizonYears,
		MaxSimulations:  DefaultMaxSimulations,
	}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// withDefaults fills zero-valued limits
func withDefaults(l domain.Limits) domain.Limits {
	if l.MaxHorizonYears <= 0 {
		l.MaxHorizonYears = DefaultMaxHorizonYears
	}
	if l.MaxSimulations <= 0 {
		l.MaxSimulations = DefaultMaxSimulations
	}
	return l
}

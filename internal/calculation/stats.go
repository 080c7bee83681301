package calculation

import (
	"math"
	"math/rand/v2"
	"slices"
)

// newRandomSource builds a generator owned by a single call, so concurrent
// estimates never share state and a given seed always replays the same draws.
func newRandomSource(seed int64) *rand.Rand {
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// percentile returns the p-th percentile (0..100) of ascending values using
// linear interpolation between the two nearest order statistics, or NaN for
// an empty sample.
func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	switch n {
	case 0:
		return math.NaN()
	case 1:
		return sorted[0]
	}
	p = math.Max(0, math.Min(100, p))
	rank := p / 100 * float64(n-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	frac := rank - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

// percentiles sorts values in place and reads several percentiles from them
func percentiles(values []float64, ps ...float64) []float64 {
	slices.Sort(values)
	out := make([]float64, len(ps))
	for i, p := range ps {
		out[i] = percentile(values, p)
	}
	return out
}

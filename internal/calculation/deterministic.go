package calculation

import "math/rand/v2"

// seedFunc returns a seed for calls that do not supply one
// (override for deterministic Monte Carlo tests).
var seedFunc = func() int64 { return rand.Int64() }

// SetSeedFunc overrides the seed provider (use only in tests).
func SetSeedFunc(f func() int64) { seedFunc = f }

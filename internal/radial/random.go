package radial

import (
	"math"
	"math/rand/v2"
)

// RandomInt returns a uniformly distributed integer in [ceil(min), floor(max)]
// using the global math/rand/v2 source. Safe for concurrent use.
//
// Bounds are not validated. When floor(max) < ceil(min) the result falls
// outside the range, as the underlying formula dictates.
func RandomInt(min, max float64) float64 {
	return randomInt(rand.Float64(), min, max)
}

// RandomIntFrom is RandomInt drawing from src. A *rand.Rand is not safe for
// concurrent use; callers sharing one must synchronize.
func RandomIntFrom(src *rand.Rand, min, max float64) float64 {
	return randomInt(src.Float64(), min, max)
}

// randomInt maps u in [0, 1) onto the integers of [ceil(min), floor(max)].
func randomInt(u, min, max float64) float64 {
	lo := math.Ceil(min)
	hi := math.Floor(max)
	return math.Floor(u*(hi-lo+1)) + lo
}

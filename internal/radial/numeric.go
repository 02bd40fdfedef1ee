package radial

import "math"

// DefaultRotationMax is the rotation span used by PerRotationDefault.
//
// The value is the bitwise OR of a full turn and a half turn (508), kept for
// compatibility with widgets that were tuned against it. Pass an explicit
// max to PerRotation for a real 360 or 180 degree span.
const DefaultRotationMax = 360 | 180

// Round rounds n to a granularity of 1/r: Round(3.14159, 100) is 3.14.
//
// Ties round towards positive infinity, so Round(-2.5, 1) is -2.
// An r of zero is not guarded and produces NaN or ±Inf.
func Round(n, r float64) float64 {
	return roundHalfUp(n*r) / r
}

// roundHalfUp is math.Round with ties broken towards +Inf instead of away
// from zero. x-Floor(x) is exact, so values just below .5 are not pushed up.
func roundHalfUp(x float64) float64 {
	f := math.Floor(x)
	if x-f >= 0.5 {
		return f + 1
	}
	return f
}

// Percent returns n as a percentage of t.
//
// A NaN or infinite ratio is reported as 0, so Percent(n, 0) is always 0.
func Percent(n, t float64) float64 {
	p := n / t * 100
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0
	}
	return p
}

// AppPercent applies the percentage p to the total t.
func AppPercent(t, p float64) float64 {
	return t * p * 0.01
}

// PerRotation converts a percentage into a rotation over a span of max
// degrees (360 for a full ring, 180 for a half gauge).
func PerRotation(per, max float64) float64 {
	return per * 0.01 * max
}

// PerRotationDefault is PerRotation over DefaultRotationMax.
func PerRotationDefault(per float64) float64 {
	return PerRotation(per, DefaultRotationMax)
}

// StrokeOffset returns the part of a perimeter not covered by perc percent.
// It is the value of an SVG stroke-dashoffset for a progress ring whose
// stroke-dasharray equals the perimeter.
func StrokeOffset(peri, perc float64) float64 {
	return peri - peri*perc*0.01
}

// Package radial provides the numeric and geometric helpers used to lay out
// circular widgets: progress rings, gauges, dials and anything placed around
// a circle.
//
// Every function is pure and stateless apart from RandomInt, which reads the
// global math/rand/v2 source. Inputs and outputs are plain float64 values;
// two-dimensional values use Point and ranges use Interval.
//
// # Degenerate inputs
//
// Only Between reports an error (an Interval whose Min exceeds its Max).
// Every other function lets IEEE-754 semantics run their course, so a zero
// rounding factor yields NaN or ±Inf and Limit with inverted bounds returns
// the upper bound. Percent is the one exception: a NaN or infinite ratio is
// reported as 0 so that an empty total renders as an empty ring.
//
// # Angles
//
// Angles are in degrees unless a name says otherwise (AngRad converts).
// Zero degrees points along the positive x-axis and angles grow towards the
// positive y-axis, which is clockwise on screen where y grows downwards.
package radial

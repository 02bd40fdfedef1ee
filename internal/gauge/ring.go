// Package gauge computes the geometry of radial progress rings and gauges.
//
// A Ring is drawn as an SVG-style circle whose stroke-dasharray is the arc
// length and whose stroke-dashoffset hides the part not yet filled. For a
// span below 360 degrees (a half gauge for instance) the visible arc is the
// matching fraction of the circumference.
package gauge

import (
	"fmt"

	"github.com/roach88/radial/internal/radial"
)

// FullSpan is the span of a complete ring, in degrees.
const FullSpan = 360

// Ring describes a ring of Radius centered on Center covering Span degrees,
// starting at angle 0.
type Ring struct {
	Radius float64      `json:"radius"`
	Center radial.Point `json:"center"`
	Span   float64      `json:"span"`
}

// Layout is the geometry of a ring showing a value.
type Layout struct {
	// Value is the input value clamped to [0, total].
	Value float64 `json:"value"`

	// Percent is Value as a percentage of total (0 when total is 0).
	Percent float64 `json:"percent"`

	// Circumference is the full circle circumference.
	Circumference float64 `json:"circumference"`

	// Arc is the length of the visible arc (Circumference scaled by Span).
	Arc float64 `json:"arc"`

	// StrokeOffset is the stroke-dashoffset for a dasharray of Arc.
	StrokeOffset float64 `json:"stroke_offset"`

	// Rotation is the angle reached by the value, in degrees.
	Rotation float64 `json:"rotation"`

	// Needle is the point on the ring at Rotation.
	Needle radial.Point `json:"needle"`

	// Heading is the direction from Center to Needle, in [0, 360).
	Heading float64 `json:"heading"`
}

// NewRing creates a full ring.
func NewRing(radius float64, center radial.Point) Ring {
	return Ring{Radius: radius, Center: center, Span: FullSpan}
}

// Validate checks that the radius is positive and the span is in (0, 360].
func (r Ring) Validate() error {
	if !(r.Radius > 0) {
		return fmt.Errorf("radius must be > 0, got %v", r.Radius)
	}
	if !(r.Span > 0 && r.Span <= FullSpan) {
		return fmt.Errorf("span must be in (0, %d], got %v", FullSpan, r.Span)
	}
	return nil
}

// Layout returns the geometry of the ring showing value out of total.
// value is clamped to [0, total] first.
func (r Ring) Layout(value, total float64) Layout {
	v := radial.Interval{Min: 0, Max: total}.Clamp(value)
	pct := radial.Percent(v, total)

	circ := radial.Circ(r.Radius)
	arc := radial.AppPercent(circ, radial.Percent(r.Span, FullSpan))
	rot := radial.PerRotation(pct, r.Span)
	needle := r.Center.Add(radial.CartesXY(r.Radius, rot, radial.Point{}))

	return Layout{
		Value:         v,
		Percent:       pct,
		Circumference: circ,
		Arc:           arc,
		StrokeOffset:  radial.StrokeOffset(arc, pct),
		Rotation:      rot,
		Needle:        needle,
		Heading:       radial.Arctangent(r.Center, needle),
	}
}

// Ticks returns n points evenly spread along the ring's span. A full ring
// spaces them by 360/n; a partial span places the first and last tick on
// the span's ends. n <= 0 returns nil.
func (r Ring) Ticks(n int) []radial.Point {
	if n <= 0 {
		return nil
	}

	step := r.Span / float64(n)
	if r.Span < FullSpan && n > 1 {
		step = r.Span / float64(n-1)
	}

	ticks := make([]radial.Point, n)
	for i := range ticks {
		ticks[i] = radial.CartesXY(r.Radius, step*float64(i), r.Center)
	}
	return ticks
}

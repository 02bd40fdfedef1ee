package calc

import (
	"github.com/roach88/radial/internal/ir"
	"github.com/roach88/radial/internal/radial"
)

// builtins returns the radial library as registry operations.
func (r *Registry) builtins() []Op {
	return []Op{
		{
			Name:   "round",
			Params: []string{"n", "r"},
			Doc:    "round n to a granularity of 1/r",
			Fn: func(a []float64) (ir.Value, error) {
				return ir.Number(radial.Round(a[0], a[1])), nil
			},
		},
		{
			Name:   "percent",
			Params: []string{"n", "t"},
			Doc:    "n as a percentage of t (0 when undefined)",
			Fn: func(a []float64) (ir.Value, error) {
				return ir.Number(radial.Percent(a[0], a[1])), nil
			},
		},
		{
			Name:   "appPercent",
			Params: []string{"t", "p"},
			Doc:    "apply percentage p to total t",
			Fn: func(a []float64) (ir.Value, error) {
				return ir.Number(radial.AppPercent(a[0], a[1])), nil
			},
		},
		{
			Name:   "circ",
			Params: []string{"r"},
			Doc:    "circumference of a circle of radius r",
			Fn: func(a []float64) (ir.Value, error) {
				return ir.Number(radial.Circ(a[0])), nil
			},
		},
		{
			Name:     "perRotation",
			Params:   []string{"per", "max"},
			Optional: 1,
			Doc:      "rotation in degrees for a percentage over a span of max",
			Fn: func(a []float64) (ir.Value, error) {
				max := r.rotationMax
				if len(a) > 1 {
					max = a[1]
				}
				return ir.Number(radial.PerRotation(a[0], max)), nil
			},
		},
		{
			Name:   "strokeOffset",
			Params: []string{"peri", "perc"},
			Doc:    "part of perimeter peri not covered by perc percent",
			Fn: func(a []float64) (ir.Value, error) {
				return ir.Number(radial.StrokeOffset(a[0], a[1])), nil
			},
		},
		{
			Name:   "angRad",
			Params: []string{"a"},
			Doc:    "degrees to radians",
			Fn: func(a []float64) (ir.Value, error) {
				return ir.Number(radial.AngRad(a[0])), nil
			},
		},
		{
			Name:   "cartesXY",
			Params: []string{"r", "a", "ox", "oy"},
			Doc:    "point at angle a on a circle of radius r centered on (ox, oy)",
			Fn: func(a []float64) (ir.Value, error) {
				p := radial.CartesXY(a[0], a[1], radial.Point{X: a[2], Y: a[3]})
				return ir.NewCoordinate(p), nil
			},
		},
		{
			Name:   "limit",
			Params: []string{"n", "min", "max"},
			Doc:    "clamp n into [min, max]",
			Fn: func(a []float64) (ir.Value, error) {
				return ir.Number(radial.Limit(a[0], radial.Interval{Min: a[1], Max: a[2]})), nil
			},
		},
		{
			Name:     "between",
			Params:   []string{"n", "min", "max", "inclusive"},
			Optional: 1,
			Doc:      "whether n lies inside [min, max] (inclusive when non-zero)",
			Fn: func(a []float64) (ir.Value, error) {
				inclusive := len(a) > 3 && a[3] != 0
				ok, err := radial.Between(a[0], radial.Interval{Min: a[1], Max: a[2]}, inclusive)
				if err != nil {
					return nil, err
				}
				return ir.Bool(ok), nil
			},
		},
		{
			Name:   "randomInt",
			Params: []string{"min", "max"},
			Doc:    "uniform random integer in [ceil(min), floor(max)]",
			Fn: func(a []float64) (ir.Value, error) {
				return ir.Number(r.randomInt(a[0], a[1])), nil
			},
		},
		{
			Name:   "arctangent",
			Params: []string{"ox", "oy", "tx", "ty"},
			Doc:    "angle in [0, 360) of the vector from (ox, oy) to (tx, ty)",
			Fn: func(a []float64) (ir.Value, error) {
				theta := radial.Arctangent(radial.Point{X: a[0], Y: a[1]}, radial.Point{X: a[2], Y: a[3]})
				return ir.Number(theta), nil
			},
		},
	}
}

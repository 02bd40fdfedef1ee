package radial

import "math"

// Point is a two-dimensional coordinate.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Add returns the translation of p by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Circ returns the circumference of a circle of radius r.
func Circ(r float64) float64 {
	return 2 * math.Pi * r
}

// AngRad converts an angle in degrees to radians.
func AngRad(a float64) float64 {
	return a * (math.Pi / 180)
}

// CartesXY returns the point at angle a (degrees) on a circle of radius r
// centered on offset. Used to place elements around a circle.
func CartesXY(r, a float64, offset Point) Point {
	rad := AngRad(a)
	return Point{
		X: r*math.Cos(rad) + offset.X,
		Y: r*math.Sin(rad) + offset.Y,
	}
}

// Arctangent returns the angle in degrees, in [0, 360), between the positive
// x-axis and the vector going from origin to target.
func Arctangent(origin, target Point) float64 {
	dx := origin.X - target.X
	dy := origin.Y - target.Y

	theta := math.Atan2(-dy, -dx) * (180 / math.Pi)
	if theta < 0 {
		theta += 360
		// a tiny negative angle rounds up to a full turn
		if theta >= 360 {
			theta = 0
		}
	}
	return theta
}

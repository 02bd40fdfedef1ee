package ir

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/roach88/radial/internal/radial"
)

// Value is a sealed interface over the result kinds of a radial operation.
// Only Number, Coordinate and Bool implement it.
type Value interface {
	irValue() // Sealed - only these types implement it

	// Kind names the result kind: "number", "coordinate" or "bool".
	Kind() string

	// String renders the value for text output.
	String() string
}

// Number is a numeric result. It may be NaN or infinite.
type Number float64

func (Number) irValue() {}

// Kind implements Value.
func (Number) Kind() string { return "number" }

// String implements Value.
func (n Number) String() string { return FormatNumber(float64(n)) }

// MarshalJSON encodes finite numbers as JSON numbers and non-finite ones as
// strings.
func (n Number) MarshalJSON() ([]byte, error) {
	return marshalNumber(float64(n)), nil
}

// Coordinate is an (x, y) result.
type Coordinate [2]float64

func (Coordinate) irValue() {}

// Kind implements Value.
func (Coordinate) Kind() string { return "coordinate" }

// String implements Value.
func (c Coordinate) String() string {
	return "[" + FormatNumber(c[0]) + ", " + FormatNumber(c[1]) + "]"
}

// MarshalJSON encodes the coordinate as a two-element array.
func (c Coordinate) MarshalJSON() ([]byte, error) {
	return []byte("[" + string(marshalNumber(c[0])) + "," + string(marshalNumber(c[1])) + "]"), nil
}

// Point converts the coordinate to a radial.Point.
func (c Coordinate) Point() radial.Point {
	return radial.Point{X: c[0], Y: c[1]}
}

// NewCoordinate creates a Coordinate from a radial.Point.
func NewCoordinate(p radial.Point) Coordinate {
	return Coordinate{p.X, p.Y}
}

// Bool is a boolean result.
type Bool bool

func (Bool) irValue() {}

// Kind implements Value.
func (Bool) Kind() string { return "bool" }

// String implements Value.
func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

// MarshalJSON implements json.Marshaler.
func (b Bool) MarshalJSON() ([]byte, error) {
	if b {
		return []byte("true"), nil
	}
	return []byte("false"), nil
}

// FormatNumber renders f the way encoding/json does for finite values
// (plain decimal between 1e-6 and 1e21, exponent form outside) and as
// "NaN", "+Inf" or "-Inf" otherwise. Negative zero renders as "0".
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "+Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	case f == 0:
		return "0"
	}

	format := byte('f')
	if abs := math.Abs(f); abs < 1e-6 || abs >= 1e21 {
		format = 'e'
	}
	s := strconv.FormatFloat(f, format, -1, 64)
	if format == 'e' {
		// clean up e-09 to e-9
		n := len(s)
		if n >= 4 && s[n-4] == 'e' && s[n-3] == '-' && s[n-2] == '0' {
			s = s[:n-2] + s[n-1:]
		}
	}
	return s
}

// ParseNumber parses a decimal number. "NaN", "Inf", "+Inf" and "-Inf" are
// accepted in any letter case.
func ParseNumber(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return f, nil
}

func marshalNumber(f float64) []byte {
	s := FormatNumber(f)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte(`"` + s + `"`)
	}
	return []byte(s)
}

// ValueOf converts a decoded YAML or JSON value into a Value.
//
// Accepted inputs: numbers (any Go numeric kind), bools, the strings "NaN",
// "Inf", "+Inf" and "-Inf", and two-element lists of numbers.
func ValueOf(v any) (Value, error) {
	switch val := v.(type) {
	case nil:
		return nil, fmt.Errorf("null is not a value")
	case Value:
		return val, nil
	case bool:
		return Bool(val), nil
	case []any:
		if len(val) != 2 {
			return nil, fmt.Errorf("coordinate must have 2 elements, got %d", len(val))
		}
		var c Coordinate
		for i, elem := range val {
			f, err := toFloat(elem)
			if err != nil {
				return nil, fmt.Errorf("coordinate[%d]: %w", i, err)
			}
			c[i] = f
		}
		return c, nil
	case []float64:
		if len(val) != 2 {
			return nil, fmt.Errorf("coordinate must have 2 elements, got %d", len(val))
		}
		return Coordinate{val[0], val[1]}, nil
	default:
		f, err := toFloat(v)
		if err != nil {
			return nil, err
		}
		return Number(f), nil
	}
}

// toFloat converts a scalar decoded from YAML or JSON into a float64.
func toFloat(v any) (float64, error) {
	switch val := v.(type) {
	case float64:
		return val, nil
	case float32:
		return float64(val), nil
	case int:
		return float64(val), nil
	case int64:
		return float64(val), nil
	case uint64:
		return float64(val), nil
	case Number:
		return float64(val), nil
	case string:
		return ParseNumber(val)
	default:
		return 0, fmt.Errorf("unsupported type: %T", v)
	}
}

// ApproxEqual reports whether two values are equal within tol.
//
// Numbers compare by absolute difference; NaN equals NaN and infinities
// equal infinities of the same sign. Values of different kinds are never
// equal.
func ApproxEqual(a, b Value, tol float64) bool {
	switch av := a.(type) {
	case Number:
		bv, ok := b.(Number)
		return ok && approxFloat(float64(av), float64(bv), tol)
	case Coordinate:
		bv, ok := b.(Coordinate)
		return ok && approxFloat(av[0], bv[0], tol) && approxFloat(av[1], bv[1], tol)
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	default:
		return false
	}
}

func approxFloat(a, b, tol float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}
	return math.Abs(a-b) <= tol
}

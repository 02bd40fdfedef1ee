package radial

import (
	"errors"
	"fmt"
)

// Interval is a closed numeric range. Between requires Min <= Max; Limit
// does not check.
type Interval struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Valid reports whether Min <= Max.
func (i Interval) Valid() bool {
	return !(i.Max < i.Min)
}

// Contains reports whether n lies in [Min, Max].
func (i Interval) Contains(n float64) bool {
	return n >= i.Min && n <= i.Max
}

// Surrounds reports whether n lies in (Min, Max).
func (i Interval) Surrounds(n float64) bool {
	return n > i.Min && n < i.Max
}

// Clamp is Limit(n, i).
func (i Interval) Clamp(n float64) float64 {
	return Limit(n, i)
}

// ErrInvalidInterval is matched by every *InvalidIntervalError via errors.Is.
var ErrInvalidInterval = errors.New("invalid interval")

// InvalidIntervalError reports an Interval whose Min exceeds its Max.
type InvalidIntervalError struct {
	Min float64
	Max float64
}

// Error implements the error interface.
func (e *InvalidIntervalError) Error() string {
	return fmt.Sprintf("invalid interval: min value (%v) > max value (%v)", e.Min, e.Max)
}

// Is lets errors.Is match ErrInvalidInterval.
func (e *InvalidIntervalError) Is(target error) bool {
	return target == ErrInvalidInterval
}

// IsInvalidIntervalError returns true if err is or wraps an
// *InvalidIntervalError.
func IsInvalidIntervalError(err error) bool {
	var ie *InvalidIntervalError
	return errors.As(err, &ie)
}

// Limit keeps n inside i.
//
// Bounds are not validated: with Min > Max the result is always Max.
// A NaN in n or either bound propagates to the result.
func Limit(n float64, i Interval) float64 {
	return min(max(n, i.Min), i.Max)
}

// Between reports whether n lies inside i, bounds included when inclusive
// is true. It fails with *InvalidIntervalError when i.Min > i.Max.
func Between(n float64, i Interval, inclusive bool) (bool, error) {
	if !i.Valid() {
		return false, &InvalidIntervalError{Min: i.Min, Max: i.Max}
	}
	if inclusive {
		return i.Contains(n), nil
	}
	return i.Surrounds(n), nil
}

package ir

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/radial/internal/radial"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{"integer", 25, "25"},
		{"fraction", 3.14, "3.14"},
		{"negative", -0.5, "-0.5"},
		{"zero", 0, "0"},
		{"negative zero", math.Copysign(0, -1), "0"},
		{"tiny", 6.123233995736766e-17, "6.123233995736766e-17"},
		{"small exponent", 1e-7, "1e-7"},
		{"large", 1e21, "1e+21"},
		{"large plain", 123456789, "123456789"},
		{"nan", math.NaN(), "NaN"},
		{"positive infinity", math.Inf(1), "+Inf"},
		{"negative infinity", math.Inf(-1), "-Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatNumber(tt.input))
		})
	}
}

func TestParseNumber(t *testing.T) {
	f, err := ParseNumber("3.5")
	require.NoError(t, err)
	assert.Equal(t, 3.5, f)

	f, err = ParseNumber(" -2 ")
	require.NoError(t, err)
	assert.Equal(t, -2.0, f)

	f, err = ParseNumber("nan")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(f))

	f, err = ParseNumber("-Inf")
	require.NoError(t, err)
	assert.True(t, math.IsInf(f, -1))

	_, err = ParseNumber("twelve")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"twelve"`)
}

func TestValueJSON(t *testing.T) {
	data, err := json.Marshal(map[string]Value{
		"n":   Number(25),
		"nan": Number(math.NaN()),
		"c":   Coordinate{1, 0},
		"b":   Bool(true),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"n":25,"nan":"NaN","c":[1,0],"b":true}`, string(data))
}

func TestValueStringAndKind(t *testing.T) {
	assert.Equal(t, "25", Number(25).String())
	assert.Equal(t, "number", Number(25).Kind())
	assert.Equal(t, "[1, -0.5]", Coordinate{1, -0.5}.String())
	assert.Equal(t, "coordinate", Coordinate{}.Kind())
	assert.Equal(t, "false", Bool(false).String())
	assert.Equal(t, "bool", Bool(false).Kind())
}

func TestCoordinatePoint(t *testing.T) {
	p := radial.Point{X: 3, Y: -4}
	assert.Equal(t, p, NewCoordinate(p).Point())
}

func TestValueOf(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected Value
	}{
		{"int", 25, Number(25)},
		{"float", 2.5, Number(2.5)},
		{"bool", true, Bool(true)},
		{"list", []any{0, 1.5}, Coordinate{0, 1.5}},
		{"float slice", []float64{2, 3}, Coordinate{2, 3}},
		{"string number", "7", Number(7)},
		{"passthrough", Bool(false), Bool(false)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ValueOf(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestValueOf_NaNString(t *testing.T) {
	v, err := ValueOf("NaN")
	require.NoError(t, err)
	n, ok := v.(Number)
	require.True(t, ok)
	assert.True(t, math.IsNaN(float64(n)))
}

func TestValueOf_Errors(t *testing.T) {
	_, err := ValueOf(nil)
	assert.Error(t, err)

	_, err = ValueOf([]any{1, 2, 3})
	assert.ErrorContains(t, err, "2 elements")

	_, err = ValueOf([]any{1, "x"})
	assert.ErrorContains(t, err, "coordinate[1]")

	_, err = ValueOf(map[string]any{})
	assert.ErrorContains(t, err, "unsupported type")
}

func TestApproxEqual(t *testing.T) {
	assert.True(t, ApproxEqual(Number(1), Number(1+1e-12), 1e-9))
	assert.False(t, ApproxEqual(Number(1), Number(1.1), 1e-9))
	assert.True(t, ApproxEqual(Number(math.NaN()), Number(math.NaN()), 1e-9))
	assert.False(t, ApproxEqual(Number(math.NaN()), Number(0), 1e-9))
	assert.True(t, ApproxEqual(Number(math.Inf(1)), Number(math.Inf(1)), 1e-9))
	assert.False(t, ApproxEqual(Number(math.Inf(1)), Number(math.Inf(-1)), 1e-9))
	assert.True(t, ApproxEqual(Coordinate{6.123233995736766e-17, 1}, Coordinate{0, 1}, 1e-9))
	assert.True(t, ApproxEqual(Bool(true), Bool(true), 0))
	assert.False(t, ApproxEqual(Bool(true), Number(1), 1e-9))
	assert.False(t, ApproxEqual(Number(0), Coordinate{0, 0}, 1e-9))
}

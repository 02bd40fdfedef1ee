package harness

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCheck(t *testing.T) {
	check, err := ParseCheck([]byte(`
name: parse
description: all outcome kinds
tolerance: 0.001
run_token: fixed
calls:
  - call: cartesXY
    args: [1, 90, 0, 0]
    expect: [0, 1]
  - call: between
    args: [5, 10, 0]
    error: INVALID_INTERVAL
  - call: randomInt
    args: [1, 10]
    within: [1, 10]
  - call: limit
    args: [.nan, 0, 1]
    expect: NaN
`))
	require.NoError(t, err)

	assert.Equal(t, "parse", check.Name)
	assert.Equal(t, 0.001, check.Tolerance)
	assert.Equal(t, "fixed", check.RunToken)
	require.Len(t, check.Calls, 4)

	assert.Equal(t, []any{0, 1}, check.Calls[0].Expect)
	assert.Equal(t, "INVALID_INTERVAL", check.Calls[1].Error)
	assert.Equal(t, []float64{1, 10}, check.Calls[2].Within)
	assert.True(t, math.IsNaN(check.Calls[3].Args[0]))
	assert.Equal(t, "NaN", check.Calls[3].Expect)
}

func TestParseCheck_Errors(t *testing.T) {
	tests := []struct {
		name   string
		yaml   string
		errMsg string
	}{
		{
			name:   "unknown field",
			yaml:   "name: a\ndescription: b\ncall: []\n",
			errMsg: "failed to parse YAML",
		},
		{
			name:   "missing name",
			yaml:   "description: b\ncalls:\n  - call: circ\n    args: [1]\n    expect: 1\n",
			errMsg: "name is required",
		},
		{
			name:   "missing description",
			yaml:   "name: a\ncalls:\n  - call: circ\n    args: [1]\n    expect: 1\n",
			errMsg: "description is required",
		},
		{
			name:   "no calls",
			yaml:   "name: a\ndescription: b\n",
			errMsg: "calls list is required",
		},
		{
			name:   "negative tolerance",
			yaml:   "name: a\ndescription: b\ntolerance: -1\ncalls:\n  - call: circ\n    args: [1]\n    expect: 1\n",
			errMsg: "tolerance must be >= 0",
		},
		{
			name:   "missing call name",
			yaml:   "name: a\ndescription: b\ncalls:\n  - args: [1]\n    expect: 1\n",
			errMsg: "calls[0]: call is required",
		},
		{
			name:   "no outcome",
			yaml:   "name: a\ndescription: b\ncalls:\n  - call: circ\n    args: [1]\n",
			errMsg: "exactly one of expect, error or within",
		},
		{
			name:   "two outcomes",
			yaml:   "name: a\ndescription: b\ncalls:\n  - call: circ\n    args: [1]\n    expect: 1\n    error: ARITY\n",
			errMsg: "exactly one of expect, error or within",
		},
		{
			name:   "within wrong length",
			yaml:   "name: a\ndescription: b\ncalls:\n  - call: randomInt\n    args: [1, 2]\n    within: [1]\n",
			errMsg: "within must have 2 elements",
		},
		{
			name:   "within inverted",
			yaml:   "name: a\ndescription: b\ncalls:\n  - call: randomInt\n    args: [1, 2]\n    within: [2, 1]\n",
			errMsg: "within range is inverted",
		},
		{
			name:   "non-numeric arg",
			yaml:   "name: a\ndescription: b\ncalls:\n  - call: circ\n    args: [one]\n    expect: 1\n",
			errMsg: "failed to parse YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCheck([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

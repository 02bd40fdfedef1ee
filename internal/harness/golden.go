package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/radial/internal/ir"
)

// Snapshot renders the trace of a result as canonical JSON.
//
// The run token is left out so that repeated runs of the same check produce
// identical bytes.
func Snapshot(result *Result) ([]byte, error) {
	trace := make([]any, len(result.Trace))
	for i, event := range result.Trace {
		eventMap := map[string]any{
			"seq":  event.Seq,
			"call": event.Call,
			"args": event.Args,
		}
		if event.Args == nil {
			eventMap["args"] = []float64{}
		}
		if event.Result != nil {
			eventMap["result"] = event.Result
		}
		if event.Error != "" {
			eventMap["error"] = event.Error
		}
		trace[i] = eventMap
	}

	return ir.MarshalCanonical(map[string]any{
		"check": result.Name,
		"pass":  result.Pass,
		"trace": trace,
	})
}

// RunWithGolden executes a check and compares the trace against a golden
// file stored in testdata/golden/{check.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if the check cannot be executed. Test failure (via goldie)
// occurs if the trace doesn't match the golden file.
func RunWithGolden(t *testing.T, check *Check, opts ...Option) (*Result, error) {
	t.Helper()

	result, err := Run(check, opts...)
	if err != nil {
		return nil, err
	}
	if err := AssertGolden(t, check.Name, result); err != nil {
		return result, err
	}
	return result, nil
}

// AssertGolden compares the given result's trace against a golden file.
// Useful when a check has already run.
func AssertGolden(t *testing.T, name string, result *Result) error {
	t.Helper()

	data, err := Snapshot(result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)

	return nil
}

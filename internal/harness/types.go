package harness

import (
	"github.com/roach88/radial/internal/ir"
)

// TraceEvent records one evaluated call.
type TraceEvent struct {
	Seq    int64     `json:"seq"`
	Call   string    `json:"call"`
	Args   []float64 `json:"args"`
	Result ir.Value  `json:"result,omitempty"`
	Error  string    `json:"error,omitempty"` // error code, e.g. "INVALID_INTERVAL"
}

// Result is the outcome of a check execution.
type Result struct {
	// Name is the check name.
	Name string `json:"name"`

	// RunToken identifies this execution.
	RunToken string `json:"run_token"`

	// Pass indicates overall success.
	// True if every call matched its expected outcome.
	Pass bool `json:"pass"`

	// Trace contains every call in order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains mismatch messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
// Used as the starting point for check execution.
func NewResult(name, runToken string) *Result {
	return &Result{
		Name:     name,
		RunToken: runToken,
		Pass:     true,
		Trace:    []TraceEvent{},
		Errors:   []string{},
	}
}

// AddError adds a mismatch message and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddTrace appends a call to the trace. Exactly one of v and err is
// expected to be set.
func (r *Result) AddTrace(seq int64, call string, args []float64, v ir.Value, err error) {
	event := TraceEvent{
		Seq:    seq,
		Call:   call,
		Args:   args,
		Result: v,
	}
	if err != nil {
		event.Error = errorCode(err)
	}
	r.Trace = append(r.Trace, event)
}

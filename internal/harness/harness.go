package harness

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/radial/internal/calc"
	"github.com/roach88/radial/internal/ir"
)

// DefaultTolerance is used when neither the check nor the caller sets one.
const DefaultTolerance = 1e-9

// Harness evaluates checks.
type Harness struct {
	registry  *calc.Registry
	tokens    TokenGenerator
	tolerance float64
	logger    *slog.Logger
}

// Option configures a Harness.
type Option func(*Harness)

// WithRegistry evaluates calls through reg instead of calc.Default().
func WithRegistry(reg *calc.Registry) Option {
	return func(h *Harness) {
		h.registry = reg
	}
}

// WithTokenGenerator sets the run token source.
func WithTokenGenerator(gen TokenGenerator) Option {
	return func(h *Harness) {
		h.tokens = gen
	}
}

// WithTolerance sets the tolerance used by checks that do not set one.
func WithTolerance(tol float64) Option {
	return func(h *Harness) {
		h.tolerance = tol
	}
}

// WithLogger sets the logger. Calls are logged at Debug, mismatches at Warn.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Harness) {
		h.logger = logger
	}
}

// New creates a Harness.
func New(opts ...Option) *Harness {
	h := &Harness{
		tokens:    UUIDv7Generator{},
		tolerance: DefaultTolerance,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.registry == nil {
		h.registry = calc.Default()
	}
	return h
}

// Run executes a check with a Harness built from opts.
func Run(check *Check, opts ...Option) (*Result, error) {
	return New(opts...).Run(check)
}

// Run executes every call of check and compares it with its expected
// outcome. Mismatches are reported in Result.Errors; the returned error is
// reserved for checks that cannot be run at all.
func (h *Harness) Run(check *Check) (*Result, error) {
	if check == nil {
		return nil, fmt.Errorf("check is nil")
	}
	if err := validateCheck(check); err != nil {
		return nil, fmt.Errorf("invalid check: %w", err)
	}

	tol := check.Tolerance
	if tol == 0 {
		tol = h.tolerance
	}

	token := check.RunToken
	if token == "" {
		token = h.tokens.Generate()
	}

	result := NewResult(check.Name, token)
	h.logger.Debug("check started", "check", check.Name, "run_token", token, "calls", len(check.Calls))

	for i, step := range check.Calls {
		seq := int64(i + 1)
		v, err := h.registry.Call(step.Call, step.Args)
		result.AddTrace(seq, step.Call, step.Args, v, err)

		h.logger.Debug("call evaluated",
			"check", check.Name,
			"seq", seq,
			"call", step.Call,
			"result", v,
			"error", err,
		)

		if msg := compareStep(step, v, err, tol); msg != "" {
			msg = fmt.Sprintf("calls[%d] %s: %s", i, step.Call, msg)
			h.logger.Warn("call mismatch", "check", check.Name, "seq", seq, "detail", msg)
			result.AddError(msg)
		}
	}

	h.logger.Debug("check finished", "check", check.Name, "pass", result.Pass)
	return result, nil
}

// compareStep returns a mismatch description, or "" when the outcome is as
// expected.
func compareStep(step CallStep, v ir.Value, err error, tol float64) string {
	if step.Error != "" {
		if err == nil {
			return fmt.Sprintf("expected error %s, got result %s", step.Error, v)
		}
		if code := errorCode(err); code != step.Error {
			return fmt.Sprintf("expected error %s, got %s", step.Error, code)
		}
		return ""
	}

	if err != nil {
		return fmt.Sprintf("unexpected error: %v", err)
	}

	if step.Within != nil {
		n, ok := v.(ir.Number)
		if !ok {
			return fmt.Sprintf("within requires a number, got %s %s", v.Kind(), v)
		}
		if f := float64(n); !(f >= step.Within[0] && f <= step.Within[1]) {
			return fmt.Sprintf("expected value within [%s, %s], got %s",
				ir.FormatNumber(step.Within[0]), ir.FormatNumber(step.Within[1]), v)
		}
		return ""
	}

	want, convErr := ir.ValueOf(step.Expect)
	if convErr != nil {
		return fmt.Sprintf("invalid expect: %v", convErr)
	}
	if !ir.ApproxEqual(want, v, tol) {
		return fmt.Sprintf("expected %s, got %s", want, v)
	}
	return ""
}

// errorCode maps an error to its trace code, falling back to the message.
func errorCode(err error) string {
	if code := calc.CodeOf(err); code != "" {
		return string(code)
	}
	return err.Error()
}

// Package calc resolves radial operations by name.
//
// The registry is what lets the CLI and check files drive the radial library
// without a Go call site: a name such as "cartesXY" plus a flat list of
// float64 arguments is mapped onto the matching radial function and its
// result is returned as an ir.Value.
//
// Names are matched case-insensitively and ignore '_' and '-', so
// "cartesXY", "cartes_xy" and "CARTESXY" resolve to the same operation.
// Points and intervals are passed flattened: cartesXY takes r, a, ox, oy.
package calc

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/cases"

	"github.com/roach88/radial/internal/ir"
	"github.com/roach88/radial/internal/radial"
)

// Func evaluates an operation. len(args) has already been checked against
// the operation's arity.
type Func func(args []float64) (ir.Value, error)

// Op describes a named operation.
type Op struct {
	// Name is the canonical spelling, e.g. "cartesXY".
	Name string

	// Params names each positional argument.
	Params []string

	// Optional is the number of trailing Params that may be omitted.
	Optional int

	// Doc is a one-line description.
	Doc string

	// Fn evaluates the operation.
	Fn Func
}

// MinArgs returns the minimum argument count.
func (o Op) MinArgs() int {
	return len(o.Params) - o.Optional
}

// MaxArgs returns the maximum argument count.
func (o Op) MaxArgs() int {
	return len(o.Params)
}

// Usage renders the parameter list, optional ones in brackets.
func (o Op) Usage() string {
	parts := make([]string, len(o.Params))
	for i, p := range o.Params {
		if i >= o.MinArgs() {
			p = "[" + p + "]"
		}
		parts[i] = p
	}
	return strings.Join(parts, " ")
}

// Registry maps folded names to operations.
//
// Thread-safety: Call and Lookup are safe for concurrent use once
// registration is complete.
type Registry struct {
	ops map[string]Op

	rotationMax float64

	// rngMu guards rng; *rand.Rand is not safe for concurrent use.
	rngMu sync.Mutex
	rng   *rand.Rand
}

// Option configures a Registry.
type Option func(*Registry)

// WithRand makes randomInt draw from src instead of the global source.
func WithRand(src *rand.Rand) Option {
	return func(r *Registry) {
		r.rng = src
	}
}

// WithRotationMax sets the span perRotation uses when called without max.
func WithRotationMax(max float64) Option {
	return func(r *Registry) {
		r.rotationMax = max
	}
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		ops:         make(map[string]Op),
		rotationMax: radial.DefaultRotationMax,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Default creates a registry holding every radial operation.
func Default(opts ...Option) *Registry {
	r := New(opts...)
	for _, op := range r.builtins() {
		if err := r.Register(op); err != nil {
			// builtins have distinct names
			panic(err)
		}
	}
	return r
}

// FoldName returns the lookup key for name.
func FoldName(name string) string {
	// A Caser is stateful, so one is created per call.
	folded := cases.Fold().String(strings.TrimSpace(name))
	return strings.NewReplacer("_", "", "-", "").Replace(folded)
}

// Register adds op. Returns a DUPLICATE_OP error if an operation with the
// same folded name exists.
func (r *Registry) Register(op Op) error {
	if op.Name == "" {
		return fmt.Errorf("operation name is required")
	}
	if op.Fn == nil {
		return fmt.Errorf("operation %q has no function", op.Name)
	}
	if op.Optional < 0 || op.Optional > len(op.Params) {
		return fmt.Errorf("operation %q: optional count %d out of range", op.Name, op.Optional)
	}

	key := FoldName(op.Name)
	if existing, ok := r.ops[key]; ok {
		return &CallError{
			Code:    ErrCodeDuplicateOp,
			Op:      op.Name,
			Message: fmt.Sprintf("name collides with %q", existing.Name),
		}
	}
	r.ops[key] = op
	return nil
}

// Lookup finds an operation by name.
func (r *Registry) Lookup(name string) (Op, bool) {
	op, ok := r.ops[FoldName(name)]
	return op, ok
}

// Ops returns all operations sorted by canonical name.
func (r *Registry) Ops() []Op {
	ops := make([]Op, 0, len(r.ops))
	for _, op := range r.ops {
		ops = append(ops, op)
	}
	slices.SortFunc(ops, func(a, b Op) int {
		return strings.Compare(a.Name, b.Name)
	})
	return ops
}

// Call evaluates the named operation.
//
// Errors are *CallError values with code UNKNOWN_OP, ARITY or
// INVALID_INTERVAL. Degenerate numeric results (NaN, ±Inf) are not errors.
func (r *Registry) Call(name string, args []float64) (ir.Value, error) {
	op, ok := r.Lookup(name)
	if !ok {
		return nil, NewUnknownOpError(name)
	}
	if len(args) < op.MinArgs() || len(args) > op.MaxArgs() {
		return nil, NewArityError(op, len(args))
	}

	v, err := op.Fn(args)
	if err != nil {
		return nil, wrapOpError(op.Name, err)
	}
	return v, nil
}

// randomInt draws from the configured source, or the global one.
func (r *Registry) randomInt(min, max float64) float64 {
	if r.rng == nil {
		return radial.RandomInt(min, max)
	}
	r.rngMu.Lock()
	defer r.rngMu.Unlock()
	return radial.RandomIntFrom(r.rng, min, max)
}

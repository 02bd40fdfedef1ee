package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/radial/internal/calc"
	"github.com/roach88/radial/internal/ir"
	"github.com/roach88/radial/internal/radial"
)

// EvalOptions holds flags for the eval command.
type EvalOptions struct {
	*RootOptions
	Precision float64 // rounding factor for printed numbers, 0 = none
}

// EvalResult is the JSON payload of the eval command.
type EvalResult struct {
	Op     string      `json:"op"`
	Args   []ir.Number `json:"args"`
	Result ir.Value    `json:"result"`
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvalOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "eval <op> [args...]",
		Short: "Evaluate one operation",
		Long: `Evaluate a single radial operation and print its result.

Points and intervals are passed flattened. Names are case-insensitive.
Flags must come before the operation name so that negative numbers are
read as arguments.

Examples:
  radial eval percent 50 200
  radial eval cartesXY 10 90 50 50
  radial eval between 0 0 10 1
  radial eval --precision 100 circ 1
  radial --format json eval arctangent 0 0 -1 -1`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(opts, args[0], args[1:], cmd)
		},
	}

	cmd.Flags().SetInterspersed(false)
	cmd.Flags().Float64Var(&opts.Precision, "precision", 0, "round printed numbers to 1/precision (default from config)")

	return cmd
}

func runEval(opts *EvalOptions, name string, rawArgs []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	precision := opts.Config.Precision
	if f := cmd.Flags().Lookup("precision"); f != nil && f.Changed {
		precision = opts.Precision
	}
	if precision < 0 {
		return formatter.Fail(ErrCodeBadArg, fmt.Sprintf("precision must be >= 0, got %v", precision), nil)
	}

	args, err := parseArgs(rawArgs)
	if err != nil {
		return formatter.Fail(ErrCodeBadArg, err.Error(), nil)
	}

	reg := calc.Default(calc.WithRotationMax(opts.Config.RotationMax))
	formatter.VerboseLog("Evaluating %s with %d argument(s)", name, len(args))

	v, err := reg.Call(name, args)
	if err != nil {
		return formatter.Fail(mapCallError(err), err.Error(), nil)
	}
	opts.logger().Debug("evaluated", "op", name, "result", v.String())

	v = roundValue(v, precision)

	if formatter.Format == "json" {
		op, _ := reg.Lookup(name)
		numbers := make([]ir.Number, len(args))
		for i, a := range args {
			numbers[i] = ir.Number(a)
		}
		return formatter.Success(EvalResult{Op: op.Name, Args: numbers, Result: v})
	}

	return formatter.Success(v)
}

// parseArgs parses positional arguments as numbers.
func parseArgs(raw []string) ([]float64, error) {
	args := make([]float64, len(raw))
	for i, s := range raw {
		f, err := ir.ParseNumber(s)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		args[i] = f
	}
	return args, nil
}

// roundValue applies radial.Round to the numbers of v. A precision of 0
// leaves v untouched.
func roundValue(v ir.Value, precision float64) ir.Value {
	if precision == 0 {
		return v
	}
	switch val := v.(type) {
	case ir.Number:
		return ir.Number(radial.Round(float64(val), precision))
	case ir.Coordinate:
		p := val.Point()
		return ir.NewCoordinate(radial.Point{X: radial.Round(p.X, precision), Y: radial.Round(p.Y, precision)})
	default:
		return v
	}
}

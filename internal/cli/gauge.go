package cli

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/radial/internal/gauge"
	"github.com/roach88/radial/internal/ir"
	"github.com/roach88/radial/internal/radial"
)

// GaugeOptions holds flags for the gauge command.
type GaugeOptions struct {
	*RootOptions
	Radius    float64
	Span      float64
	Ticks     int
	Value     float64
	Total     float64
	CenterX   float64
	CenterY   float64
	Precision float64
}

// GaugeResult is the JSON payload of the gauge command.
type GaugeResult struct {
	Ring   gauge.Ring     `json:"ring"`
	Layout gauge.Layout   `json:"layout"`
	Ticks  []radial.Point `json:"ticks,omitempty"`
}

// NewGaugeCommand creates the gauge command.
func NewGaugeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GaugeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "gauge",
		Short: "Compute a ring layout",
		Long: `Compute the geometry of a progress ring showing value out of total.

The value is clamped to [0, total]. Radius, span and tick count default
to the gauge section of the config file. --precision rounds the text
output only.

Examples:
  radial gauge --value 25
  radial gauge --radius 40 --span 180 --value 3 --total 4 --ticks 5
  radial --format json gauge --value 60 --cx 50 --cy 50`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGauge(opts, cmd)
		},
	}

	cmd.Flags().Float64Var(&opts.Radius, "radius", 0, "ring radius (default from config)")
	cmd.Flags().Float64Var(&opts.Span, "span", 0, "span in degrees, (0, 360] (default from config)")
	cmd.Flags().IntVar(&opts.Ticks, "ticks", 0, "number of tick points (default from config)")
	cmd.Flags().Float64Var(&opts.Value, "value", 0, "value shown by the ring")
	cmd.Flags().Float64Var(&opts.Total, "total", 100, "value of a full ring")
	cmd.Flags().Float64Var(&opts.CenterX, "cx", 0, "center x")
	cmd.Flags().Float64Var(&opts.CenterY, "cy", 0, "center y")
	cmd.Flags().Float64Var(&opts.Precision, "precision", 0, "round printed numbers to 1/precision (default from config)")

	return cmd
}

func runGauge(opts *GaugeOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())
	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}

	defaults := opts.Config.Gauge
	if !changed("radius") {
		opts.Radius = defaults.Radius
	}
	if !changed("span") {
		opts.Span = defaults.Span
	}
	if !changed("ticks") {
		opts.Ticks = defaults.Ticks
	}
	if !changed("precision") {
		opts.Precision = opts.Config.Precision
	}

	for _, f := range []struct {
		name  string
		value float64
	}{
		{"value", opts.Value},
		{"total", opts.Total},
		{"cx", opts.CenterX},
		{"cy", opts.CenterY},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return formatter.Fail(ErrCodeBadArg, fmt.Sprintf("--%s must be finite, got %v", f.name, f.value), nil)
		}
	}
	if opts.Total < 0 {
		return formatter.Fail(ErrCodeBadArg, fmt.Sprintf("--total must be >= 0, got %v", opts.Total), nil)
	}
	if opts.Ticks < 0 {
		return formatter.Fail(ErrCodeBadArg, fmt.Sprintf("--ticks must be >= 0, got %d", opts.Ticks), nil)
	}
	if opts.Precision < 0 {
		return formatter.Fail(ErrCodeBadArg, fmt.Sprintf("precision must be >= 0, got %v", opts.Precision), nil)
	}

	ring := gauge.Ring{
		Radius: opts.Radius,
		Center: radial.Point{X: opts.CenterX, Y: opts.CenterY},
		Span:   opts.Span,
	}
	if err := ring.Validate(); err != nil {
		return formatter.Fail(ErrCodeBadArg, err.Error(), nil)
	}

	result := GaugeResult{
		Ring:   ring,
		Layout: ring.Layout(opts.Value, opts.Total),
		Ticks:  ring.Ticks(opts.Ticks),
	}
	opts.logger().Debug("gauge computed",
		"radius", ring.Radius,
		"span", ring.Span,
		"percent", result.Layout.Percent,
	)

	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	return writeGaugeText(formatter.Writer, result, opts.Precision)
}

// writeGaugeText prints the layout as aligned key/value lines.
func writeGaugeText(w io.Writer, g GaugeResult, precision float64) error {
	num := func(f float64) string {
		return roundValue(ir.Number(f), precision).String()
	}
	point := func(p radial.Point) string {
		return roundValue(ir.NewCoordinate(p), precision).String()
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "radius\t%s\n", num(g.Ring.Radius))
	fmt.Fprintf(tw, "center\t%s\n", point(g.Ring.Center))
	fmt.Fprintf(tw, "span\t%s\n", num(g.Ring.Span))
	fmt.Fprintf(tw, "value\t%s\n", num(g.Layout.Value))
	fmt.Fprintf(tw, "percent\t%s\n", num(g.Layout.Percent))
	fmt.Fprintf(tw, "circumference\t%s\n", num(g.Layout.Circumference))
	fmt.Fprintf(tw, "arc\t%s\n", num(g.Layout.Arc))
	fmt.Fprintf(tw, "stroke_offset\t%s\n", num(g.Layout.StrokeOffset))
	fmt.Fprintf(tw, "rotation\t%s\n", num(g.Layout.Rotation))
	fmt.Fprintf(tw, "needle\t%s\n", point(g.Layout.Needle))
	fmt.Fprintf(tw, "heading\t%s\n", num(g.Layout.Heading))
	for i, p := range g.Ticks {
		fmt.Fprintf(tw, "tick %d\t%s\n", i, point(p))
	}
	return tw.Flush()
}

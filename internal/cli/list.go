package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/radial/internal/calc"
)

// OpInfo describes an operation in list output.
type OpInfo struct {
	Name     string   `json:"name"`
	Params   []string `json:"params"`
	Optional int      `json:"optional,omitempty"`
	Doc      string   `json:"doc"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List available operations",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd)
		},
	}
}

func runList(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	ops := calc.Default().Ops()

	if formatter.Format == "json" {
		infos := make([]OpInfo, len(ops))
		for i, op := range ops {
			infos[i] = OpInfo{Name: op.Name, Params: op.Params, Optional: op.Optional, Doc: op.Doc}
		}
		return formatter.Success(infos)
	}

	tw := tabwriter.NewWriter(formatter.Writer, 0, 4, 2, ' ', 0)
	for _, op := range ops {
		fmt.Fprintf(tw, "%s %s\t%s\n", op.Name, op.Usage(), op.Doc)
	}
	return tw.Flush()
}

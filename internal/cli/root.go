package cli

import (
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/radial/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string

	// Config is the effective configuration, resolved before any
	// subcommand runs.
	Config config.Config

	// Logger receives structured diagnostics on stderr.
	Logger *slog.Logger

	// Getenv reads environment variables. Nil means os.Getenv.
	Getenv func(string) string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the radial CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

// newRootCommand creates the root command around opts so tests can inject
// an environment.
func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "radial",
		Short: "radial - circle geometry helpers",
		Long: `Evaluate and check the numeric helpers behind radial widgets:
rounding, percentages, circle geometry, angles, intervals and random integers.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return prepareRoot(opts, cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default $"+config.EnvConfigPath+")")

	// Add subcommands
	cmd.AddCommand(NewEvalCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewGaugeCommand(opts))

	return cmd
}

// prepareRoot resolves configuration, settles the output format and
// installs the logger.
func prepareRoot(opts *RootOptions, cmd *cobra.Command) error {
	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	cfg, err := config.Resolve(opts.ConfigPath, getenv)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}
	opts.Config = cfg

	// The flag wins over config and environment
	if f := cmd.Flag("format"); f == nil || !f.Changed {
		opts.Format = cfg.Format
	}
	if !isValidFormat(opts.Format) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
	}

	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	opts.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	}))
	opts.Logger.Debug("config resolved",
		"path", opts.ConfigPath,
		"format", opts.Format,
		"precision", cfg.Precision,
		"rotation_max", cfg.RotationMax,
	)
	return nil
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}

// logger returns the configured logger, or a discarding one when the
// command runs without the root's pre-run.
func (o *RootOptions) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}

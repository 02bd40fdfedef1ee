package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/radial/internal/calc"
	"github.com/roach88/radial/internal/harness"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Update bool   // regenerate golden files
	Filter string // check file filter (glob pattern)
	Seed   uint64 // seed for randomInt; only used when the flag is set
}

// CheckFileResult holds the result of a single check file.
type CheckFileResult struct {
	Name     string   `json:"name"`
	File     string   `json:"file"`
	RunToken string   `json:"run_token,omitempty"`
	Pass     bool     `json:"pass"`
	Code     string   `json:"code,omitempty"` // set when the file could not be loaded
	Errors   []string `json:"errors,omitempty"`
}

// CheckResult holds the overall check result.
type CheckResult struct {
	Checks []CheckFileResult `json:"checks"`
	Passed int               `json:"passed"`
	Failed int               `json:"failed"`
	Total  int               `json:"total"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check <path>...",
		Short: "Run check files",
		Long: `Run YAML check files against the radial operations.

Each path is a check file or a directory searched recursively for
*.yaml and *.yml files. When golden/<name>.golden exists next to a
check file, the trace must also match it byte for byte.

Exit codes:
  0 - All checks passed
  1 - One or more checks failed
  2 - Command error (missing paths, etc.)

Examples:
  radial check ./checks
  radial check ./checks --filter "angle-*"
  radial check ./checks --update
  radial check ./checks/random.yaml --seed 42`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChecks(opts, args, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Update, "update", false, "regenerate golden files")
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter check files by glob pattern")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "seed randomInt for reproducible runs")

	return cmd
}

func runChecks(opts *CheckOptions, paths []string, cmd *cobra.Command) error {
	var files []string
	for _, p := range paths {
		if _, err := os.Stat(p); os.IsNotExist(err) {
			return NewExitError(ExitCommandError, fmt.Sprintf("path not found: %s", p))
		}
		found, err := findCheckFiles(p, opts.Filter)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to find checks", err)
		}
		files = append(files, found...)
	}

	if len(files) == 0 {
		if opts.Format == "json" {
			return outputCheckJSON(cmd, CheckResult{Checks: []CheckFileResult{}})
		}
		fmt.Fprintln(cmd.OutOrStdout(), "No checks found.")
		return nil
	}

	hopts := []harness.Option{
		harness.WithLogger(opts.logger()),
		harness.WithTolerance(opts.Config.Tolerance),
	}

	result := CheckResult{
		Checks: make([]CheckFileResult, 0, len(files)),
		Total:  len(files),
	}

	for _, file := range files {
		// Each file gets a fresh registry so a seeded run does not depend
		// on which other files ran first.
		regOpts := []calc.Option{calc.WithRotationMax(opts.Config.RotationMax)}
		if f := cmd.Flags().Lookup("seed"); f != nil && f.Changed {
			regOpts = append(regOpts, calc.WithRand(rand.New(rand.NewPCG(opts.Seed, opts.Seed))))
		}
		fileOpts := append(slices.Clone(hopts), harness.WithRegistry(calc.Default(regOpts...)))

		res := runCheckFile(file, opts, fileOpts, cmd)
		result.Checks = append(result.Checks, res)
		if res.Pass {
			result.Passed++
		} else {
			result.Failed++
		}
	}

	if opts.Format == "json" {
		return outputCheckJSON(cmd, result)
	}
	return outputCheckText(cmd, result)
}

// findCheckFiles finds all YAML check files under path. A file path is
// returned as is, subject to the filter.
func findCheckFiles(path string, filter string) ([]string, error) {
	var files []string

	err := filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			// Golden files live beside checks, never inside them
			if p != path && info.Name() == "golden" {
				return filepath.SkipDir
			}
			return nil
		}

		ext := filepath.Ext(p)
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		if filter != "" {
			name := strings.TrimSuffix(filepath.Base(p), ext)
			matched, err := filepath.Match(filter, name)
			if err != nil {
				return fmt.Errorf("invalid filter pattern: %w", err)
			}
			if !matched {
				return nil
			}
		}

		files = append(files, p)
		return nil
	})

	return files, err
}

// runCheckFile loads, runs and golden-compares a single check file.
func runCheckFile(file string, opts *CheckOptions, hopts []harness.Option, cmd *cobra.Command) CheckFileResult {
	w := cmd.OutOrStdout()
	text := opts.Format != "json"

	fail := func(name string, errs ...string) CheckFileResult {
		if text {
			fmt.Fprintf(w, "✗ %s\n", name)
			for _, e := range errs {
				fmt.Fprintf(w, "  %s\n", e)
			}
		}
		return CheckFileResult{Name: name, File: file, Errors: errs}
	}

	check, err := harness.LoadCheck(file)
	if err != nil {
		failed := fail(filepath.Base(file), fmt.Sprintf("load error: %v", err))
		failed.Code = ErrCodeLoadFailed
		return failed
	}

	result, err := harness.Run(check, hopts...)
	if err != nil {
		return fail(check.Name, fmt.Sprintf("execution error: %v", err))
	}
	opts.logger().Debug("check finished", "check", check.Name, "run_token", result.RunToken, "pass", result.Pass)

	res := CheckFileResult{Name: check.Name, File: file, RunToken: result.RunToken}

	goldenPath := goldenFilePath(file)
	updated := false
	if opts.Update {
		if err := updateGoldenFile(result, goldenPath); err != nil {
			failed := fail(check.Name, fmt.Sprintf("golden update error: %v", err))
			failed.RunToken = result.RunToken
			return failed
		}
		updated = true
	} else if _, err := os.Stat(goldenPath); err == nil {
		match, err := compareWithGolden(result, goldenPath)
		if err != nil {
			failed := fail(check.Name, fmt.Sprintf("golden comparison error: %v", err))
			failed.RunToken = result.RunToken
			return failed
		}
		if !match {
			failed := fail(check.Name, "golden file mismatch (run with --update to regenerate)")
			failed.RunToken = result.RunToken
			return failed
		}
	}

	if !result.Pass {
		failed := fail(check.Name, result.Errors...)
		failed.RunToken = result.RunToken
		return failed
	}

	if text {
		if updated {
			fmt.Fprintf(w, "✓ %s (golden updated)\n", check.Name)
		} else {
			fmt.Fprintf(w, "✓ %s\n", check.Name)
		}
	}
	res.Pass = true
	return res
}

// goldenFilePath returns the path to the golden file for a check file.
func goldenFilePath(checkFile string) string {
	dir := filepath.Dir(checkFile)
	base := filepath.Base(checkFile)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, "golden", name+".golden")
}

// updateGoldenFile writes the current trace snapshot as the golden file.
func updateGoldenFile(result *harness.Result, goldenPath string) error {
	if err := os.MkdirAll(filepath.Dir(goldenPath), 0755); err != nil {
		return fmt.Errorf("failed to create golden directory: %w", err)
	}

	data, err := harness.Snapshot(result)
	if err != nil {
		return fmt.Errorf("failed to marshal trace: %w", err)
	}

	if err := os.WriteFile(goldenPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write golden file: %w", err)
	}
	return nil
}

// compareWithGolden compares the result trace against the golden file.
func compareWithGolden(result *harness.Result, goldenPath string) (bool, error) {
	goldenData, err := os.ReadFile(goldenPath)
	if err != nil {
		return false, fmt.Errorf("failed to read golden file: %w", err)
	}

	current, err := harness.Snapshot(result)
	if err != nil {
		return false, fmt.Errorf("failed to marshal current trace: %w", err)
	}

	return bytes.Equal(bytes.TrimSpace(goldenData), current), nil
}

// outputCheckJSON outputs the check result as JSON.
func outputCheckJSON(cmd *cobra.Command, result CheckResult) error {
	response := CLIResponse{
		Status: "ok",
		Data:   result,
	}
	if result.Failed > 0 {
		response.Status = "error"
		response.Error = &CLIError{
			Code:    ErrCodeCheckFailed,
			Message: fmt.Sprintf("%d check(s) failed", result.Failed),
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(response); err != nil {
		return err
	}

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d check(s) failed", result.Failed))
	}
	return nil
}

// outputCheckText outputs the check summary as text.
func outputCheckText(cmd *cobra.Command, result CheckResult) error {
	w := cmd.OutOrStdout()

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Check Summary: %d passed, %d failed, %d total\n", result.Passed, result.Failed, result.Total)

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d check(s) failed", result.Failed))
	}

	fmt.Fprintln(w, "✓ All checks passed")
	return nil
}

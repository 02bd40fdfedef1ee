package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args against a fake environment and
// returns stdout, stderr and the command error.
func execute(t *testing.T, env map[string]string, args ...string) (string, string, error) {
	t.Helper()

	opts := &RootOptions{
		Getenv: func(key string) string { return env[key] },
	}
	cmd := newRootCommand(opts)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "radial", cmd.Use)
	assert.Contains(t, cmd.Long, "circle geometry")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"eval", "list", "check", "gauge"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "", configFlag.DefValue)
}

func TestCheckCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	checkCmd, _, err := cmd.Find([]string{"check"})
	require.NoError(t, err)

	updateFlag := checkCmd.Flags().Lookup("update")
	require.NotNil(t, updateFlag)
	assert.Equal(t, "false", updateFlag.DefValue)

	require.NotNil(t, checkCmd.Flags().Lookup("filter"))
	require.NotNil(t, checkCmd.Flags().Lookup("seed"))
}

func TestGaugeCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	gaugeCmd, _, err := cmd.Find([]string{"gauge"})
	require.NoError(t, err)

	for _, name := range []string{"radius", "span", "ticks", "value", "total", "cx", "cy", "precision"} {
		assert.NotNil(t, gaugeCmd.Flags().Lookup(name), "flag --%s", name)
	}
	assert.Equal(t, "100", gaugeCmd.Flags().Lookup("total").DefValue)
}

func TestFormatValidation(t *testing.T) {
	assert.True(t, isValidFormat("text"))
	assert.True(t, isValidFormat("json"))

	assert.False(t, isValidFormat("xml"))
	assert.False(t, isValidFormat(""))
	assert.False(t, isValidFormat("TEXT"))
}

func TestFormatValidationIntegration(t *testing.T) {
	_, _, err := execute(t, nil, "--format", "invalid", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestFormatFromEnvironment(t *testing.T) {
	stdout, _, err := execute(t, map[string]string{"RADIAL_FORMAT": "json"}, "eval", "circ", "0")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"status":"ok"`)
}

func TestFormatFlagOverridesEnvironment(t *testing.T) {
	stdout, _, err := execute(t, map[string]string{"RADIAL_FORMAT": "json"}, "--format", "text", "eval", "circ", "0")
	require.NoError(t, err)
	assert.Equal(t, "0\n", stdout)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "radial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("precision: 100\nrotation_max: 360\n"), 0644))

	t.Run("flag", func(t *testing.T) {
		stdout, _, err := execute(t, nil, "--config", path, "eval", "perRotation", "25")
		require.NoError(t, err)
		assert.Equal(t, "90\n", stdout)
	})

	t.Run("environment", func(t *testing.T) {
		stdout, _, err := execute(t, map[string]string{"RADIAL_CONFIG": path}, "eval", "circ", "1")
		require.NoError(t, err)
		assert.Equal(t, "6.28\n", stdout)
	})
}

func TestConfigFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "radial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("colour: red\n"), 0644))

	_, _, err := execute(t, nil, "--config", path, "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, _, err = execute(t, nil, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "list")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestVerboseLogsToStderr(t *testing.T) {
	stdout, stderr, err := execute(t, nil, "--verbose", "eval", "circ", "0")
	require.NoError(t, err)
	assert.Equal(t, "0\n", stdout)
	assert.Contains(t, stderr, "config resolved")
	assert.Contains(t, stderr, "level=DEBUG")
}

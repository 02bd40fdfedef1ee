package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/radial/internal/calc"
	"github.com/roach88/radial/internal/radial"
)

func TestOutputFormatter_JSONSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	data := map[string]string{"result": "success"}
	err := formatter.Success(data)
	require.NoError(t, err)

	var resp CLIResponse
	err = json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
	assert.NotNil(t, resp.Data)
}

func TestOutputFormatter_JSONError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	err := formatter.Error(ErrCodeUnknownOp, "no operation registered under this name", nil)
	require.NoError(t, err)

	var resp CLIResponse
	err = json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "error", resp.Status)
	assert.NotNil(t, resp.Error)
	assert.Equal(t, "E_UNKNOWN_OP", resp.Error.Code)
	assert.Equal(t, "no operation registered under this name", resp.Error.Message)
}

func TestOutputFormatter_JSONErrorWithDetails(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	details := map[string]string{"op": "between", "min": "10", "max": "0"}
	err := formatter.Error(ErrCodeInvalidInterval, "min value (10) > max value (0)", details)
	require.NoError(t, err)

	var resp CLIResponse
	err = json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "error", resp.Status)
	assert.NotNil(t, resp.Error)
	assert.NotNil(t, resp.Error.Details)
}

func TestOutputFormatter_TextSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "text",
		Writer: buf,
	}

	err := formatter.Success("All checks passed")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "All checks passed")
}

func TestOutputFormatter_TextError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format:  "text",
		Writer:  buf,
		Verbose: false,
	}

	err := formatter.Error(ErrCodeArity, "expected 1 argument(s) (r), got 2", nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Error [E_ARITY]")
	assert.Contains(t, buf.String(), "expected 1 argument(s)")
}

func TestOutputFormatter_TextErrorVerbose(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format:  "text",
		Writer:  buf,
		Verbose: true,
	}

	details := map[string]string{"arg": "seven"}
	err := formatter.Error(ErrCodeBadArg, "argument 1: invalid number", details)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Error [E_BAD_ARG]")
	assert.Contains(t, buf.String(), "Details:")
}

func TestOutputFormatter_VerboseLog(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		wantLog bool
	}{
		{"verbose_enabled", true, true},
		{"verbose_disabled", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			errBuf := &bytes.Buffer{}
			formatter := &OutputFormatter{
				Format:    "json",
				Writer:    buf,
				ErrWriter: errBuf,
				Verbose:   tt.verbose,
			}

			formatter.VerboseLog("Evaluating %s", "circ")

			assert.Empty(t, buf.String())
			if tt.wantLog {
				assert.Contains(t, errBuf.String(), "Evaluating circ")
			} else {
				assert.Empty(t, errBuf.String())
			}
		})
	}
}

func TestCLIResponse_JSON(t *testing.T) {
	resp := CLIResponse{
		Status: "ok",
		Data:   map[string]int{"count": 42},
	}

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded CLIResponse
	err = json.Unmarshal(data, &decoded)
	require.NoError(t, err)
	assert.Equal(t, "ok", decoded.Status)
}

func TestCLIError_JSON(t *testing.T) {
	cliErr := CLIError{
		Code:    ErrCodeCheckFailed,
		Message: "1 check(s) failed",
		Details: []string{"calls[0] circ: expected 1, got 6.283185307179586"},
	}

	data, err := json.Marshal(cliErr)
	require.NoError(t, err)

	var decoded CLIError
	err = json.Unmarshal(data, &decoded)
	require.NoError(t, err)
	assert.Equal(t, "E_CHECK_FAILED", decoded.Code)
	assert.Equal(t, "1 check(s) failed", decoded.Message)
}


func TestOutputFormatter_FailReturnsCommandError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "text", Writer: buf}

	err := formatter.Fail(ErrCodeBadArg, "argument 1: invalid number \"x\"", nil)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "E_BAD_ARG")
	assert.Contains(t, buf.String(), "Error [E_BAD_ARG]")
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad")))

	wrapped := fmt.Errorf("outer: %w", NewExitError(ExitFailure, "check failed"))
	assert.Equal(t, ExitFailure, GetExitCode(wrapped))
}

func TestExitError_Unwrap(t *testing.T) {
	inner := errors.New("inner")
	err := WrapExitError(ExitCommandError, "failed to load config", inner)
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "failed to load config: inner", err.Error())
}

func TestMapCallError(t *testing.T) {
	reg := calc.Default()

	_, err := reg.Call("tangent", nil)
	assert.Equal(t, ErrCodeUnknownOp, mapCallError(err))

	_, err = reg.Call("circ", []float64{1, 2})
	assert.Equal(t, ErrCodeArity, mapCallError(err))

	_, err = reg.Call("between", []float64{5, 10, 0})
	assert.Equal(t, ErrCodeInvalidInterval, mapCallError(err))
	assert.ErrorIs(t, err, radial.ErrInvalidInterval)

	assert.Equal(t, ErrCodeGeneric, mapCallError(errors.New("other")))
}

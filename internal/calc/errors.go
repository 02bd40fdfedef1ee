package calc

import (
	"errors"
	"fmt"

	"github.com/roach88/radial/internal/radial"
)

// ErrorCode categorizes call errors.
type ErrorCode string

const (
	// ErrCodeUnknownOp indicates no operation is registered under the name.
	ErrCodeUnknownOp ErrorCode = "UNKNOWN_OP"

	// ErrCodeArity indicates the wrong number of arguments.
	ErrCodeArity ErrorCode = "ARITY"

	// ErrCodeInvalidInterval indicates an interval whose min exceeds its max.
	ErrCodeInvalidInterval ErrorCode = "INVALID_INTERVAL"

	// ErrCodeDuplicateOp indicates a second registration under the same name.
	ErrCodeDuplicateOp ErrorCode = "DUPLICATE_OP"
)

// CallError represents an error detected while resolving or evaluating an
// operation.
type CallError struct {
	// Code identifies the error category.
	Code ErrorCode

	// Op is the operation name as given by the caller.
	Op string

	// Message is a human-readable description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *CallError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s (op=%s)", e.Code, e.Message, e.Op)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *CallError) Unwrap() error {
	return e.Err
}

// NewUnknownOpError creates a CallError for an unregistered name.
func NewUnknownOpError(name string) *CallError {
	return &CallError{
		Code:    ErrCodeUnknownOp,
		Op:      name,
		Message: "no operation registered under this name",
	}
}

// NewArityError creates a CallError for a bad argument count.
func NewArityError(op Op, got int) *CallError {
	want := fmt.Sprintf("%d", op.MaxArgs())
	if op.MinArgs() != op.MaxArgs() {
		want = fmt.Sprintf("%d to %d", op.MinArgs(), op.MaxArgs())
	}
	return &CallError{
		Code:    ErrCodeArity,
		Op:      op.Name,
		Message: fmt.Sprintf("expected %s argument(s) (%s), got %d", want, op.Usage(), got),
	}
}

// CodeOf returns the ErrorCode carried by err, or "" when err carries none.
// Uses errors.As to handle wrapped errors.
func CodeOf(err error) ErrorCode {
	var ce *CallError
	if errors.As(err, &ce) {
		return ce.Code
	}
	if radial.IsInvalidIntervalError(err) {
		return ErrCodeInvalidInterval
	}
	return ""
}

// IsUnknownOpError returns true if err is an unknown operation error.
func IsUnknownOpError(err error) bool {
	return CodeOf(err) == ErrCodeUnknownOp
}

// IsArityError returns true if err is an argument count error.
func IsArityError(err error) bool {
	return CodeOf(err) == ErrCodeArity
}

// wrapOpError converts an error returned by an operation into a CallError.
func wrapOpError(name string, err error) error {
	if radial.IsInvalidIntervalError(err) {
		return &CallError{
			Code:    ErrCodeInvalidInterval,
			Op:      name,
			Message: err.Error(),
			Err:     err,
		}
	}
	return fmt.Errorf("%s: %w", name, err)
}

package errors

import (
	"errors"
	"fmt"
)

// Exit codes for cidrgrep
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitUsage        = 2
	ExitIO           = 3
)

// CidrgrepError is the base error type for cidrgrep
type CidrgrepError struct {
	Code    int
	Message string
	Cause   error
}

func (e *CidrgrepError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *CidrgrepError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *CidrgrepError) ExitCode() int {
	return e.Code
}

// New creates a new CidrgrepError
func New(code int, message string) *CidrgrepError {
	return &CidrgrepError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a CidrgrepError
func Wrap(code int, message string, cause error) *CidrgrepError {
	return &CidrgrepError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// UsageError returns an error for invalid invocations: no expressions,
// a bad field index, and similar pre-run validation failures.
func UsageError(message string) *CidrgrepError {
	return New(ExitUsage, message)
}

// ExpressionError returns an error for a network expression that failed to parse.
func ExpressionError(expr string, cause error) *CidrgrepError {
	return Wrap(ExitUsage, fmt.Sprintf("invalid CIDR: %s", expr), cause)
}

// IOError returns an error for a file that could not be opened or read.
func IOError(path string, cause error) *CidrgrepError {
	return Wrap(ExitIO, fmt.Sprintf("cannot open %s", path), cause)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var cgErr *CidrgrepError
	if errors.As(err, &cgErr) {
		return cgErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}

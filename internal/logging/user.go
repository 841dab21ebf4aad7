package logging

import (
	"fmt"
	"os"
)

// User-facing output functions. These write to stderr directly,
// separate from the structured debug logging, so that stdout carries
// nothing but filtered lines.

// UserWarning prints a warning message to stderr.
func UserWarning(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "⚠ "+format+"\n", args...)
}

// UserError prints an error message to stderr.
func UserError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "✗ "+format+"\n", args...)
}

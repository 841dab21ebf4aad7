// Package logging provides logging utilities for cidrgrep.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted diagnostics for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("built network set", "networks", set.Len())
//	logging.Warn("empty expression file", "path", path)
//
// # User Output
//
// User-facing diagnostics are formatted with status indicators:
//
//	logging.UserError("invalid CIDR: %s", expr)
//	logging.UserWarning("expression file contains no entries")
//
// Both categories write to stderr: stdout is reserved for the filter's
// own output (selected lines, fields, or the final count).
package logging

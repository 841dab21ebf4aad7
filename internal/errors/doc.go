// Package errors provides typed errors with exit codes for cidrgrep.
//
// CidrgrepError wraps an error with the process exit code it implies:
//
//	type CidrgrepError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
//	ExitSuccess      = 0  // Success
//	ExitGeneralError = 1  // General/unknown errors
//	ExitUsage        = 2  // Usage and validation errors (no expressions, bad field, bad CIDR)
//	ExitIO           = 3  // Expression file or input file cannot be opened
//
// # Error Constructors
//
//	errors.UsageError("no CIDR expressions provided")
//	errors.ExpressionError("10.0.0.0/99", err)
//	errors.IOError("hosts.txt", err)
//
// Use GetExitCode to extract the exit code from an error chain:
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors

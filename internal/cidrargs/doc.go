// Package cidrargs resolves cidrgrep's trailing arguments.
//
// Expressions arrive from three places: repeated -e flags, an expression
// file, and the trailing positional tokens. The positionals may end with
// the input filename; whether the last token is a filename or one more
// expression is decided by attempting to parse it as a network
// expression. See Resolve for the exact rules and the known ambiguity.
package cidrargs

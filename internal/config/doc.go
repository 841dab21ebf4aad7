// Package config loads cidrgrep's optional defaults file.
//
// The file is TOML and overrides built-in defaults only; flags given on
// the command line always take precedence.
//
//	# ~/.config/cidrgrep/config.toml
//	field = 2
//	color = "never"
package config

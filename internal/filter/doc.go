// Package filter implements cidrgrep's streaming line filter.
//
// Run makes a single pass over the input. Each line is split into
// whitespace-delimited fields, the configured field is parsed as an IP
// address, and the line is selected when the address falls inside the
// network set — or outside it with invert on. Whitespace-only lines,
// lines with too few fields, and per-line parse failures are normal
// outcomes, never errors: the first two skip the line outright, the
// third counts as a non-match (so inversion selects it).
//
// The selection count is an explicit return value rather than shared
// state, so the per-line decision (Selected) and whole runs are unit
// testable against plain readers and writers.
package filter

package filter

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/cidr-tools/cidrgrep/internal/errors"
	"github.com/cidr-tools/cidrgrep/internal/highlight"
	"github.com/cidr-tools/cidrgrep/internal/logging"
	"github.com/cidr-tools/cidrgrep/internal/netset"
)

// Options configures a filter run. Field is 1-based.
type Options struct {
	Set          *netset.Set
	Field        int
	Invert       bool
	Count        bool
	OnlyMatching bool
	Highlight    *highlight.Styler
}

// Run streams lines from in, selects the ones whose target field is an
// address inside (or, inverted, outside) the network set, and writes
// them to out. It returns the number of selected lines.
//
// Output is exactly one write per selected line, in input order. In the
// default mode the line's original bytes are preserved, including its
// terminator (or lack of one on the final line). In only-matching mode
// just the field is printed; in count mode per-line output is suppressed
// and the final count is printed instead.
func Run(opts Options, in io.Reader, out io.Writer) (int, error) {
	if opts.Field < 1 {
		return 0, errors.UsageError(fmt.Sprintf("field number must be >= 1, got %d", opts.Field))
	}

	r := bufio.NewReader(in)
	w := bufio.NewWriter(out)
	count := 0

	for {
		line, readErr := r.ReadString('\n')

		if line != "" && strings.TrimSpace(line) != "" {
			if field, start, end, ok := fieldAt(line, opts.Field); ok {
				if Selected(field, opts.Set, opts.Invert) {
					count++
					if !opts.Count {
						if err := emit(w, opts, line, field, start, end); err != nil {
							return count, errors.Wrap(errors.ExitIO, "writing output", err)
						}
					}
				}
			}
		}

		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return count, errors.Wrap(errors.ExitIO, "reading input", readErr)
		}
	}

	if opts.Count {
		fmt.Fprintf(w, "%d\n", count)
	}

	if err := w.Flush(); err != nil {
		return count, errors.Wrap(errors.ExitIO, "writing output", err)
	}

	logging.Debug("filter run complete", "selected", count)
	return count, nil
}

// Selected is the per-line decision: whether a field's text, tested
// against the set and the invert flag, selects its line. An unparseable
// field is an ordinary non-match, so under inversion it selects.
func Selected(field string, set *netset.Set, invert bool) bool {
	matched := false
	if addr, err := netset.ParseAddr(field); err == nil {
		matched = set.Contains(addr)
	}
	return matched != invert
}

// emit writes the output for one selected line.
func emit(w *bufio.Writer, opts Options, line, field string, start, end int) error {
	if opts.OnlyMatching {
		_, err := fmt.Fprintf(w, "%s\n", opts.Highlight.Render(field))
		return err
	}

	if !opts.Highlight.Enabled() {
		_, err := w.WriteString(line)
		return err
	}

	// Re-emit the line byte-identically outside the styled span.
	if _, err := w.WriteString(line[:start]); err != nil {
		return err
	}
	if _, err := w.WriteString(opts.Highlight.Render(field)); err != nil {
		return err
	}
	_, err := w.WriteString(line[end:])
	return err
}

// fieldAt locates the n-th (1-based) whitespace-delimited field and
// returns its text plus byte offsets within line. Runs of whitespace
// delimit fields the same way strings.Fields does, so leading blanks
// never produce an empty field. ok is false when the line has fewer
// than n fields.
func fieldAt(line string, n int) (field string, start, end int, ok bool) {
	seen := 0
	inField := false
	begin := 0

	for i, r := range line {
		if unicode.IsSpace(r) {
			if inField {
				seen++
				if seen == n {
					return line[begin:i], begin, i, true
				}
				inField = false
			}
			continue
		}
		if !inField {
			inField = true
			begin = i
		}
	}

	if inField {
		seen++
		if seen == n {
			return line[begin:], begin, len(line), true
		}
	}

	return "", 0, 0, false
}

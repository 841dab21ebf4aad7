package cidrargs

import (
	"bufio"
	"os"
	"strings"

	"github.com/cidr-tools/cidrgrep/internal/errors"
	"github.com/cidr-tools/cidrgrep/internal/logging"
	"github.com/cidr-tools/cidrgrep/internal/netset"
)

// Resolved is the outcome of argument resolution: the ordered expression
// list and the input file to read. An empty InputPath means stdin.
type Resolved struct {
	Expressions []string
	InputPath   string
}

// Resolve merges the three expression sources into one ordered list and
// decides which positional token, if any, names the input file.
//
// Order of accumulation: -e flags first, then the expression file's
// entries, then positional expressions. Positional tokens are
// disambiguated by inspecting only the LAST one: if it parses as a
// network expression, every positional token is an expression and input
// comes from stdin; otherwise the last token is the input filename.
//
// The heuristic is deliberately one token deep. A filename that is
// syntactically a valid CIDR (or bare IP) is indistinguishable from an
// expression and will be taken as one; use -e or stdin redirection to
// avoid the ambiguity.
func Resolve(exprFlags []string, cidrFile string, positional []string) (*Resolved, error) {
	r := &Resolved{}

	r.Expressions = append(r.Expressions, exprFlags...)

	if cidrFile != "" {
		fromFile, err := loadExpressionFile(cidrFile)
		if err != nil {
			return nil, err
		}
		r.Expressions = append(r.Expressions, fromFile...)
	}

	if len(positional) > 0 {
		last := positional[len(positional)-1]
		if _, err := netset.Parse(last); err == nil {
			r.Expressions = append(r.Expressions, positional...)
		} else {
			r.InputPath = last
			r.Expressions = append(r.Expressions, positional[:len(positional)-1]...)
		}
	}

	if len(r.Expressions) == 0 {
		return nil, errors.UsageError("no CIDR expressions provided")
	}

	logging.Debug("resolved arguments",
		"expressions", len(r.Expressions),
		"input", inputName(r.InputPath))

	return r, nil
}

// loadExpressionFile reads a newline-delimited expression list.
// Blank lines and lines whose first non-space character is '#' are
// skipped; other lines are trimmed and taken verbatim. Expressions are
// not parsed here — the set build reports syntax errors with the
// offending text regardless of which source it came from.
func loadExpressionFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.IOError(path, err)
	}
	defer f.Close()

	var exprs []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		exprs = append(exprs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.IOError(path, err)
	}

	if len(exprs) == 0 {
		logging.Warn("expression file contains no entries", "path", path)
	}

	return exprs, nil
}

func inputName(path string) string {
	if path == "" {
		return "stdin"
	}
	return path
}

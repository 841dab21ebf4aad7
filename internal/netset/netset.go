package netset

import (
	"fmt"
	"net/netip"
	"strings"

	"go4.org/netipx"

	"github.com/cidr-tools/cidrgrep/internal/errors"
)

// Parse parses a single network expression.
//
// Two forms are accepted: a CIDR literal ("192.168.1.0/24", "2001:db8::/32")
// and a bare address, which denotes the single-host network (/32 or /128).
// CIDR literals are lenient: non-zero host bits are masked off rather than
// rejected, so "10.1.2.3/8" parses as 10.0.0.0/8.
func Parse(expr string) (netip.Prefix, error) {
	s := strings.TrimSpace(expr)

	// IPv6 zone IDs ("fe80::1%eth0") would be silently dropped by the set
	// machinery, turning a typo into a never-matching rule. Reject them.
	if strings.Contains(s, "%") {
		return netip.Prefix{}, fmt.Errorf("zoned address not allowed in network expression: %s", s)
	}

	if strings.Contains(s, "/") {
		p, err := netip.ParsePrefix(s)
		if err != nil {
			return netip.Prefix{}, err
		}
		return p.Masked(), nil
	}

	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Prefix{}, err
	}
	return netip.PrefixFrom(addr, addr.BitLen()), nil
}

// ParseAddr parses a field's text as an IP address. It is Parse's
// counterpart for the per-line membership test and rejects zoned
// addresses for the same reason Parse does.
func ParseAddr(text string) (netip.Addr, error) {
	if strings.Contains(text, "%") {
		return netip.Addr{}, fmt.Errorf("zoned address: %s", text)
	}
	return netip.ParseAddr(text)
}

// Set is an immutable union of IP networks of either family.
// Built once at startup, read-only thereafter.
type Set struct {
	prefixes []netip.Prefix
	ipset    *netipx.IPSet
}

// Build parses every expression and assembles the membership set.
// The first expression that fails to parse aborts the build; the error
// names the offending expression. Duplicate and overlapping networks are
// permitted — the union they denote is unchanged.
func Build(exprs []string) (*Set, error) {
	var (
		prefixes []netip.Prefix
		b        netipx.IPSetBuilder
	)

	for _, expr := range exprs {
		p, err := Parse(expr)
		if err != nil {
			return nil, errors.ExpressionError(expr, err)
		}
		prefixes = append(prefixes, p)
		b.AddPrefix(p)
	}

	ipset, err := b.IPSet()
	if err != nil {
		return nil, fmt.Errorf("building network set: %w", err)
	}

	return &Set{prefixes: prefixes, ipset: ipset}, nil
}

// Contains reports whether addr lies within any network in the set.
// Addresses and networks of different families never match; an empty
// set matches nothing.
func (s *Set) Contains(addr netip.Addr) bool {
	if s == nil || s.ipset == nil {
		return false
	}
	return s.ipset.Contains(addr)
}

// Len returns the number of expressions the set was built from,
// counting duplicates.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.prefixes)
}

// Prefixes returns the parsed networks in insertion order.
func (s *Set) Prefixes() []netip.Prefix {
	if s == nil {
		return nil
	}
	return s.prefixes
}

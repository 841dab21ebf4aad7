// Package netset builds and queries a set of IP networks.
//
// A Set is the union of the CIDR expressions it was built from. Parsing
// is lenient: host bits in a literal are masked off, and a bare address
// is treated as a single-host network. Membership is family-aware — an
// IPv4 address never matches an IPv6 network and vice versa.
package netset

package udp

import (
	"fmt"
	"strings"
)

// UnresolvedPolicy decides what Send does when the destination host cannot
// be resolved.
type UnresolvedPolicy int

const (
	// UnresolvedDrop silently discards the datagram and reports success.
	UnresolvedDrop UnresolvedPolicy = iota

	// UnresolvedFail returns an error wrapping domain.ErrUnresolvedHost.
	UnresolvedFail
)

// String returns a human-readable representation of the policy.
func (p UnresolvedPolicy) String() string {
	switch p {
	case UnresolvedDrop:
		return "drop"
	case UnresolvedFail:
		return "fail"
	default:
		return "unknown"
	}
}

// ParsePolicy parses "drop" or "fail" (case-insensitive).
func ParsePolicy(s string) (UnresolvedPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "drop":
		return UnresolvedDrop, nil
	case "fail":
		return UnresolvedFail, nil
	default:
		return UnresolvedDrop, fmt.Errorf("unknown unresolved policy %q", s)
	}
}

package domain

import (
	"fmt"
	"strings"
)

// Kind is the StatsD metric type of a record.
type Kind int

const (
	Counter Kind = iota
	Gauge
	Timer
)

// Suffix returns the protocol type suffix for the kind.
func (k Kind) Suffix() string {
	switch k {
	case Counter:
		return "c"
	case Gauge:
		return "g"
	case Timer:
		return "ms"
	default:
		return ""
	}
}

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case Counter:
		return "counter"
	case Gauge:
		return "gauge"
	case Timer:
		return "timer"
	default:
		return "unknown"
	}
}

// ParseKind parses either the protocol suffix ("c", "g", "ms") or the
// long name ("counter", "gauge", "timer"), case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c", "counter":
		return Counter, nil
	case "g", "gauge":
		return Gauge, nil
	case "ms", "timer":
		return Timer, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

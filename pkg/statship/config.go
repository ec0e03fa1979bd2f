package statship

import (
	"fmt"

	"github.com/bft-labs/statship/internal/adapters/udp"
	"github.com/bft-labs/statship/internal/domain"
)

const (
	// DefaultHost is the collector host used when Config.Host is empty.
	DefaultHost = "localhost"

	// DefaultPort is the conventional StatsD port.
	DefaultPort = 8125
)

// UnresolvedPolicy decides what happens to a datagram whose destination
// cannot be resolved.
type UnresolvedPolicy = udp.UnresolvedPolicy

const (
	// UnresolvedDrop silently discards the datagram.
	UnresolvedDrop = udp.UnresolvedDrop

	// UnresolvedFail reports ErrUnresolvedHost from Flush and Close.
	UnresolvedFail = udp.UnresolvedFail
)

// ParseUnresolvedPolicy parses "drop" or "fail".
func ParseUnresolvedPolicy(s string) (UnresolvedPolicy, error) {
	p, err := udp.ParsePolicy(s)
	if err != nil {
		return p, fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}
	return p, nil
}

// Config holds the configuration of a Client.
type Config struct {
	// Host is the StatsD collector host name or IP.
	Host string

	// Port is the collector UDP port.
	Port int

	// Capacity bounds each datagram payload. Zero derives it from the
	// socket receive-buffer size.
	Capacity int

	// Unresolved selects the behavior when Host cannot be resolved.
	Unresolved UnresolvedPolicy
}

// SetDefaults fills unset fields.
func (c *Config) SetDefaults() {
	if c.Host == "" {
		c.Host = DefaultHost
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", domain.ErrInvalidConfig, c.Port)
	}
	if c.Capacity < 0 {
		return fmt.Errorf("%w: capacity must not be negative", domain.ErrInvalidConfig)
	}
	if c.Unresolved != UnresolvedDrop && c.Unresolved != UnresolvedFail {
		return fmt.Errorf("%w: unknown unresolved policy %d", domain.ErrInvalidConfig, c.Unresolved)
	}
	return nil
}

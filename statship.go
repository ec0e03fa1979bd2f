// Package statship emits StatsD metrics over UDP, packing them into datagrams
// that stay below a size bound.
//
// Example usage:
//
//	c, err := statship.New(statship.Config{Host: "statsd.internal"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := c.Connect(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	c.Count("api.requests", 1)
//	c.Timing("api.latency", time.Since(start))
//	if err := c.Close(ctx); err != nil {
//	    log.Print(err)
//	}
package statship

import (
	"github.com/bft-labs/statship/pkg/log"
	"github.com/bft-labs/statship/pkg/statship"
)

// Config holds the configuration of a Client.
type Config = statship.Config

// Client is a StatsD emitter.
type Client = statship.Client

// Locked is a Client guarded by a mutex.
type Locked = statship.Locked

// Option configures optional behavior of a Client.
type Option = statship.Option

// Kind is the StatsD metric type.
type Kind = statship.Kind

const (
	Counter = statship.Counter
	Gauge   = statship.Gauge
	Timer   = statship.Timer
)

// DefaultPort is the conventional StatsD port.
const DefaultPort = statship.DefaultPort

// New creates a disconnected Client.
func New(cfg Config, opts ...Option) (*Client, error) {
	return statship.New(cfg, opts...)
}

// NewLocked wraps c for concurrent use.
func NewLocked(c *Client) *Locked {
	return statship.NewLocked(c)
}

// WithLogger sets the logger used by the client.
func WithLogger(logger log.Logger) Option {
	return statship.WithLogger(logger)
}

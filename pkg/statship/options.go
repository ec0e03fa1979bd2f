package statship

import (
	"github.com/bft-labs/statship/internal/ports"
	"github.com/bft-labs/statship/pkg/log"
)

// Dialer acquires datagram transports. Implement it to replace the UDP socket.
type Dialer = ports.Dialer

// Transport is a datagram socket returned by a Dialer.
type Transport = ports.Transport

// Option configures optional behavior of a Client.
type Option func(*options)

type options struct {
	logger       log.Logger
	dialer       ports.Dialer
	eventHandler EventHandler
	unresolved   *UnresolvedPolicy
}

func defaultOptions() options {
	return options{
		logger: log.NewNoopLogger(),
	}
}

// WithLogger sets the logger. If not provided, nothing is logged.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithDialer replaces the UDP dialer.
func WithDialer(d Dialer) Option {
	return func(o *options) {
		o.dialer = d
	}
}

// WithEventHandler sets a handler for client events.
// Events are called synchronously from the calling goroutine.
func WithEventHandler(handler EventHandler) Option {
	return func(o *options) {
		o.eventHandler = handler
	}
}

// WithUnresolvedPolicy overrides Config.Unresolved for the default UDP dialer.
// It has no effect together with WithDialer.
func WithUnresolvedPolicy(p UnresolvedPolicy) Option {
	return func(o *options) {
		o.unresolved = &p
	}
}

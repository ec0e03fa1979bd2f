package ports

import "context"

// Transport is an acquired datagram socket bound to one destination.
// Implementations are not required to be safe for concurrent use.
type Transport interface {
	// Send transmits payload as a single datagram.
	// A nil error does not imply delivery.
	Send(payload []byte) error

	// ReceiveBufferSize returns the socket receive-buffer size, or 0 when
	// the platform does not report one. It seeds the collector capacity.
	ReceiveBufferSize() int

	// Close releases the socket. It must be called exactly once.
	Close() error
}

// Dialer acquires transports.
type Dialer interface {
	// Dial creates a transport sending to host:port.
	// Resolution of host may be deferred until Send.
	Dial(ctx context.Context, host string, port int) (Transport, error)
}

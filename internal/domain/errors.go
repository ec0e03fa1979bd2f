package domain

import "errors"

// Domain errors represent error conditions in the statship domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrAlreadyConnected is returned when Connect() is called on a connected session.
	ErrAlreadyConnected = errors.New("statship: already connected")

	// ErrNotConnected is returned when Send(), Flush() or Close() is called
	// on a session that was never connected or is already closed.
	ErrNotConnected = errors.New("statship: not connected")

	// ErrUnresolvedHost is returned when the destination host cannot be resolved
	// while building a datagram.
	ErrUnresolvedHost = errors.New("statship: unresolved host")

	// ErrUnknownKind is returned when a metric type string cannot be parsed.
	ErrUnknownKind = errors.New("statship: unknown metric kind")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("statship: invalid configuration")
)

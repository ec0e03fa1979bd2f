package statship

import (
	"time"

	"github.com/bft-labs/statship/internal/app"
)

// State is the connection state of a Client.
type State int

const (
	StateDisconnected State = iota
	StateConnected
	StateDraining
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	return app.State(s).String()
}

// StateChangeEvent describes a lifecycle transition.
type StateChangeEvent struct {
	Previous State
	Current  State
	Reason   string
}

// FlushEvent describes a completed flush.
type FlushEvent struct {
	Datagrams int
	BytesSent int
	Duration  time.Duration
}

// SendErrorEvent describes one datagram that could not be sent.
type SendErrorEvent struct {
	Error error
	Bytes int
}

// EventHandler receives client notifications.
type EventHandler interface {
	OnStateChange(event StateChangeEvent)
	OnFlush(event FlushEvent)
	OnSendError(event SendErrorEvent)
}

// BaseEventHandler implements EventHandler with no-ops. Embed it to
// implement only the callbacks you need.
type BaseEventHandler struct{}

func (BaseEventHandler) OnStateChange(StateChangeEvent) {}
func (BaseEventHandler) OnFlush(FlushEvent)             {}
func (BaseEventHandler) OnSendError(SendErrorEvent)     {}

// eventEmitterWrapper adapts EventHandler to the internal emitter interfaces.
type eventEmitterWrapper struct {
	handler EventHandler
}

func (e *eventEmitterWrapper) OnStateChange(previous, current app.State, reason string) {
	if e.handler == nil {
		return
	}
	e.handler.OnStateChange(StateChangeEvent{
		Previous: convertState(previous),
		Current:  convertState(current),
		Reason:   reason,
	})
}

func (e *eventEmitterWrapper) OnFlush(datagrams, bytesSent int, duration time.Duration) {
	if e.handler == nil {
		return
	}
	e.handler.OnFlush(FlushEvent{
		Datagrams: datagrams,
		BytesSent: bytesSent,
		Duration:  duration,
	})
}

func (e *eventEmitterWrapper) OnSendError(err error, bytes int) {
	if e.handler == nil {
		return
	}
	e.handler.OnSendError(SendErrorEvent{Error: err, Bytes: bytes})
}

func convertState(s app.State) State {
	switch s {
	case app.StateConnected:
		return StateConnected
	case app.StateDraining:
		return StateDraining
	default:
		return StateDisconnected
	}
}

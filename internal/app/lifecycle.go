package app

import (
	"sync"

	"github.com/bft-labs/statship/internal/domain"
	"github.com/bft-labs/statship/internal/ports"
)

// State represents the lifecycle state of a session.
type State int

const (
	StateDisconnected State = iota
	StateConnected
	StateDraining
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "Disconnected"
	case StateConnected:
		return "Connected"
	case StateDraining:
		return "Draining"
	default:
		return "Unknown"
	}
}

// Lifecycle manages the state machine for a session.
type Lifecycle struct {
	mu           sync.RWMutex
	state        State
	logger       ports.Logger
	eventEmitter EventEmitter
}

// EventEmitter is called when lifecycle state changes.
type EventEmitter interface {
	OnStateChange(previous, current State, reason string)
}

// NewLifecycle creates a new lifecycle manager in StateDisconnected.
func NewLifecycle(logger ports.Logger, emitter EventEmitter) *Lifecycle {
	return &Lifecycle{
		state:        StateDisconnected,
		logger:       logger,
		eventEmitter: emitter,
	}
}

// State returns the current lifecycle state.
func (l *Lifecycle) State() State {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

// TransitionTo attempts to transition to a new state.
// Valid paths are Disconnected -> Connected -> Draining -> Disconnected.
func (l *Lifecycle) TransitionTo(newState State, reason string) error {
	l.mu.Lock()
	oldState := l.state

	switch oldState {
	case StateDisconnected:
		if newState != StateConnected {
			l.mu.Unlock()
			return domain.ErrNotConnected
		}
	case StateConnected:
		if newState != StateDraining {
			l.mu.Unlock()
			return domain.ErrAlreadyConnected
		}
	case StateDraining:
		if newState != StateDisconnected {
			l.mu.Unlock()
			return domain.ErrAlreadyConnected
		}
	}

	l.state = newState
	l.mu.Unlock()

	if l.eventEmitter != nil {
		l.eventEmitter.OnStateChange(oldState, newState, reason)
	}

	l.logger.Debug("state transition",
		ports.String("from", oldState.String()),
		ports.String("to", newState.String()),
		ports.String("reason", reason),
	)

	return nil
}

// CanConnect returns true if Connect() can be called.
func (l *Lifecycle) CanConnect() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state == StateDisconnected
}

// Connected returns true if the session accepts metrics.
func (l *Lifecycle) Connected() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state == StateConnected
}

package app

import (
	"sync"
	"testing"

	"github.com/bft-labs/statship/internal/domain"
	"github.com/bft-labs/statship/internal/ports"
)

// mockLogger implements ports.Logger for testing.
type mockLogger struct{}

func (mockLogger) Debug(msg string, fields ...ports.Field) {}
func (mockLogger) Info(msg string, fields ...ports.Field)  {}
func (mockLogger) Warn(msg string, fields ...ports.Field)  {}
func (mockLogger) Error(msg string, fields ...ports.Field) {}

// mockEmitter tracks state change events for testing.
type mockEmitter struct {
	mu     sync.Mutex
	events []stateChangeEvent
}

type stateChangeEvent struct {
	previous State
	current  State
	reason   string
}

func (m *mockEmitter) OnStateChange(previous, current State, reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, stateChangeEvent{previous, current, reason})
}

func (m *mockEmitter) Events() []stateChangeEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]stateChangeEvent{}, m.events...)
}

func TestNewLifecycle(t *testing.T) {
	l := NewLifecycle(&mockLogger{}, nil)

	if l.State() != StateDisconnected {
		t.Errorf("initial state = %v, want StateDisconnected", l.State())
	}
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateDisconnected, "Disconnected"},
		{StateConnected, "Connected"},
		{StateDraining, "Draining"},
		{State(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %s, want %s", tt.state, got, tt.want)
		}
	}
}

func TestLifecycle_TransitionTo_ValidTransitions(t *testing.T) {
	tests := []struct {
		name string
		from State
		to   State
	}{
		{"disconnected to connected", StateDisconnected, StateConnected},
		{"connected to draining", StateConnected, StateDraining},
		{"draining to disconnected", StateDraining, StateDisconnected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLifecycle(&mockLogger{}, nil)
			l.state = tt.from

			if err := l.TransitionTo(tt.to, "test"); err != nil {
				t.Fatalf("TransitionTo() error = %v", err)
			}
			if l.State() != tt.to {
				t.Errorf("state = %v after transition, want %v", l.State(), tt.to)
			}
		})
	}
}

func TestLifecycle_TransitionTo_InvalidTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    State
		to      State
		wantErr error
	}{
		{"disconnected to draining", StateDisconnected, StateDraining, domain.ErrNotConnected},
		{"disconnected to disconnected", StateDisconnected, StateDisconnected, domain.ErrNotConnected},
		{"connected to connected", StateConnected, StateConnected, domain.ErrAlreadyConnected},
		{"connected to disconnected", StateConnected, StateDisconnected, domain.ErrAlreadyConnected},
		{"draining to connected", StateDraining, StateConnected, domain.ErrAlreadyConnected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLifecycle(&mockLogger{}, nil)
			l.state = tt.from

			err := l.TransitionTo(tt.to, "test")

			if err != tt.wantErr {
				t.Errorf("TransitionTo() error = %v, want %v", err, tt.wantErr)
			}
			if l.State() != tt.from {
				t.Errorf("state changed to %v on invalid transition, want %v", l.State(), tt.from)
			}
		})
	}
}

func TestLifecycle_TransitionTo_EmitsEvents(t *testing.T) {
	emitter := &mockEmitter{}
	l := NewLifecycle(&mockLogger{}, emitter)

	_ = l.TransitionTo(StateConnected, "connect")
	_ = l.TransitionTo(StateDraining, "close")
	_ = l.TransitionTo(StateDisconnected, "released")

	events := emitter.Events()
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	if events[0].previous != StateDisconnected || events[0].current != StateConnected {
		t.Errorf("event 0: got %v->%v, want Disconnected->Connected", events[0].previous, events[0].current)
	}
	if events[2].current != StateDisconnected || events[2].reason != "released" {
		t.Errorf("event 2: got %v (%s), want Disconnected (released)", events[2].current, events[2].reason)
	}
}

func TestLifecycle_CanConnect(t *testing.T) {
	tests := []struct {
		state       State
		canConnect  bool
		isConnected bool
	}{
		{StateDisconnected, true, false},
		{StateConnected, false, true},
		{StateDraining, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			l := NewLifecycle(&mockLogger{}, nil)
			l.state = tt.state

			if got := l.CanConnect(); got != tt.canConnect {
				t.Errorf("CanConnect() = %v, want %v", got, tt.canConnect)
			}
			if got := l.Connected(); got != tt.isConnected {
				t.Errorf("Connected() = %v, want %v", got, tt.isConnected)
			}
		})
	}
}

func TestLifecycle_Concurrency(t *testing.T) {
	l := NewLifecycle(&mockLogger{}, nil)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = l.State()
				_ = l.CanConnect()
			}
		}()
	}

	// Only one of the racing connects may win.
	var mu sync.Mutex
	wins := 0
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.TransitionTo(StateConnected, "test") == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	if wins != 1 {
		t.Errorf("%d concurrent connects succeeded, want 1", wins)
	}
}

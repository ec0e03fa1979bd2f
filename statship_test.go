package statship

import (
	"context"
	"errors"
	"testing"

	"github.com/bft-labs/statship/pkg/statship"
)

func TestNew_Defaults(t *testing.T) {
	c, err := New(Config{})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if got := c.Config().Port; got != DefaultPort {
		t.Errorf("Port = %d, want %d", got, DefaultPort)
	}

	l := NewLocked(c)
	if err := l.Send("a", "1", Counter); !errors.Is(err, statship.ErrNotConnected) {
		t.Errorf("Send() before Connect = %v, want ErrNotConnected", err)
	}
	if err := l.Close(context.Background()); !errors.Is(err, statship.ErrNotConnected) {
		t.Errorf("Close() before Connect = %v, want ErrNotConnected", err)
	}
}

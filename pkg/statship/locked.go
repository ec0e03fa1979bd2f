package statship

import (
	"context"
	"sync"
	"time"
)

// Locked serializes access to a Client so it can be shared between goroutines.
type Locked struct {
	mu     sync.Mutex
	client *Client
}

// NewLocked wraps c. c must not be used directly afterwards.
func NewLocked(c *Client) *Locked {
	return &Locked{client: c}
}

func (l *Locked) Connect(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.client.Connect(ctx)
}

func (l *Locked) Send(name, value string, kind Kind) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.client.Send(name, value, kind)
}

func (l *Locked) Count(name string, delta int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.client.Count(name, delta)
}

func (l *Locked) Gauge(name string, value float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.client.Gauge(name, value)
}

func (l *Locked) Timing(name string, d time.Duration) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.client.Timing(name, d)
}

func (l *Locked) Flush(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.client.Flush(ctx)
}

func (l *Locked) Close(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.client.Close(ctx)
}

func (l *Locked) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.client.Pending()
}

package statship

import (
	"context"
	"strconv"
	"time"

	"github.com/bft-labs/statship/internal/adapters/udp"
	"github.com/bft-labs/statship/internal/app"
	"github.com/bft-labs/statship/internal/domain"
)

// Kind is the StatsD metric type.
type Kind = domain.Kind

const (
	Counter = domain.Counter
	Gauge   = domain.Gauge
	Timer   = domain.Timer
)

// Errors returned by the client. Check them with errors.Is.
var (
	ErrAlreadyConnected = domain.ErrAlreadyConnected
	ErrNotConnected     = domain.ErrNotConnected
	ErrUnresolvedHost   = domain.ErrUnresolvedHost
	ErrUnknownKind      = domain.ErrUnknownKind
	ErrInvalidConfig    = domain.ErrInvalidConfig
)

// ParseKind parses "c", "g", "ms" or their long names.
func ParseKind(s string) (Kind, error) {
	return domain.ParseKind(s)
}

// Client is a StatsD emitter. Use New() to create one and Connect() before
// sending. A Client is not safe for concurrent use; see NewLocked.
type Client struct {
	config  Config
	session *app.Session
}

// New creates a disconnected Client.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.unresolved != nil {
		cfg.Unresolved = *o.unresolved
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	dialer := o.dialer
	if dialer == nil {
		dialer = udp.NewDialer(cfg.Unresolved, o.logger)
	}

	emitter := &eventEmitterWrapper{handler: o.eventHandler}
	session := app.NewSession(app.SessionConfig{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Capacity: cfg.Capacity,
	}, dialer, o.logger, emitter, emitter)

	return &Client{config: cfg, session: session}, nil
}

// Connect acquires the UDP socket. It returns ErrAlreadyConnected if the
// client is connected.
func (c *Client) Connect(ctx context.Context) error {
	return c.session.Connect(ctx)
}

// Send formats and buffers one metric. Whitespace in name is replaced by '-';
// value is written verbatim.
func (c *Client) Send(name, value string, kind Kind) error {
	return c.session.Send(name, value, kind)
}

// Count buffers a counter increment.
func (c *Client) Count(name string, delta int64) error {
	return c.session.Send(name, strconv.FormatInt(delta, 10), Counter)
}

// Gauge buffers a gauge value.
func (c *Client) Gauge(name string, value float64) error {
	return c.session.Send(name, strconv.FormatFloat(value, 'f', -1, 64), Gauge)
}

// Timing buffers a timer in milliseconds.
func (c *Client) Timing(name string, d time.Duration) error {
	ms := float64(d) / float64(time.Millisecond)
	return c.session.Send(name, strconv.FormatFloat(ms, 'f', -1, 64), Timer)
}

// Flush transmits everything buffered so far and keeps the socket open.
func (c *Client) Flush(ctx context.Context) error {
	return c.session.Flush(ctx)
}

// Close transmits everything buffered, releases the socket and clears the
// buffer. Failed datagrams do not prevent the others from being sent; their
// errors are joined in the returned error.
func (c *Client) Close(ctx context.Context) error {
	return c.session.Close(ctx)
}

// Status returns the current connection state.
func (c *Client) Status() State {
	return convertState(c.session.State())
}

// Pending returns the number of buffered metrics.
func (c *Client) Pending() int {
	return c.session.Pending()
}

// Capacity returns the effective datagram capacity, 0 when disconnected.
func (c *Client) Capacity() int {
	return c.session.Capacity()
}

// Config returns the client configuration with defaults applied.
func (c *Client) Config() Config {
	return c.config
}

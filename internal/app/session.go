package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bft-labs/statship/internal/batch"
	"github.com/bft-labs/statship/internal/domain"
	"github.com/bft-labs/statship/internal/ports"
)

// SessionConfig contains the destination and packing settings of a session.
type SessionConfig struct {
	Host string
	Port int

	// Capacity overrides the transport receive-buffer hint when positive.
	Capacity int
}

// FlushEmitter is called after every flush and on each failed datagram.
type FlushEmitter interface {
	OnFlush(datagrams, bytesSent int, duration time.Duration)
	OnSendError(err error, bytes int)
}

// Session buffers metrics between Connect and Close and ships them as
// datagrams. A Session is not safe for concurrent use.
type Session struct {
	config    SessionConfig
	dialer    ports.Dialer
	logger    ports.Logger
	lifecycle *Lifecycle
	emitter   FlushEmitter

	transport ports.Transport
	collector *batch.Collector
}

// NewSession creates a disconnected session. stateEmitter and flushEmitter may be nil.
func NewSession(
	config SessionConfig,
	dialer ports.Dialer,
	logger ports.Logger,
	stateEmitter EventEmitter,
	flushEmitter FlushEmitter,
) *Session {
	return &Session{
		config:    config,
		dialer:    dialer,
		logger:    logger,
		lifecycle: NewLifecycle(logger, stateEmitter),
		emitter:   flushEmitter,
	}
}

// Connect acquires the transport and starts an empty collector.
// Returns domain.ErrAlreadyConnected if the session is already connected.
func (s *Session) Connect(ctx context.Context) error {
	if !s.lifecycle.CanConnect() {
		return domain.ErrAlreadyConnected
	}

	t, err := s.dialer.Dial(ctx, s.config.Host, s.config.Port)
	if err != nil {
		return fmt.Errorf("connect %s:%d: %w", s.config.Host, s.config.Port, err)
	}

	capacity := s.config.Capacity
	if capacity <= 0 {
		capacity = t.ReceiveBufferSize()
	}

	s.transport = t
	s.collector = batch.NewCollector(capacity, s.logger)

	if err := s.lifecycle.TransitionTo(StateConnected, "Connect() called"); err != nil {
		_ = t.Close()
		s.transport = nil
		s.collector = nil
		return err
	}

	s.logger.Info("connected",
		ports.String("host", s.config.Host),
		ports.Int("port", s.config.Port),
		ports.Int("capacity", s.collector.Capacity()),
	)
	return nil
}

// Send formats one metric and buffers it. Nothing is transmitted until
// Flush or Close.
func (s *Session) Send(name, value string, kind domain.Kind) error {
	return s.SendRecord(domain.Format(name, value, kind))
}

// SendRecord buffers an already formatted record.
func (s *Session) SendRecord(r domain.Record) error {
	if !s.lifecycle.Connected() {
		return domain.ErrNotConnected
	}
	s.collector.Add(r)
	return nil
}

// Flush transmits every buffered group and clears the collector while
// keeping the transport open.
func (s *Session) Flush(ctx context.Context) error {
	if !s.lifecycle.Connected() {
		return domain.ErrNotConnected
	}
	return s.flush(ctx)
}

// Close flushes all buffered groups, releases the transport and clears the
// collector. The transport is released even when sending fails. A closed
// session may be connected again.
func (s *Session) Close(ctx context.Context) (err error) {
	if err := s.lifecycle.TransitionTo(StateDraining, "Close() called"); err != nil {
		return err
	}

	defer func() {
		if closeErr := s.transport.Close(); closeErr != nil {
			s.logger.Warn("failed to release transport", ports.Err(closeErr))
			err = errors.Join(err, fmt.Errorf("release transport: %w", closeErr))
		}
		s.transport = nil
		s.collector = nil
		_ = s.lifecycle.TransitionTo(StateDisconnected, "transport released")
	}()

	return s.flush(ctx)
}

// flush sends each group as one datagram. Failed datagrams are logged and do
// not stop the remaining ones; their errors are joined.
func (s *Session) flush(ctx context.Context) error {
	buffers := s.collector.FlushAll()
	s.collector.Reset()

	if len(buffers) == 0 {
		return nil
	}

	start := time.Now()
	var errs []error
	sent, bytesSent := 0, 0

	for i, buf := range buffers {
		if ctxErr := ctx.Err(); ctxErr != nil {
			s.logger.Warn("flush interrupted, discarding datagrams",
				ports.Int("remaining", len(buffers)-i),
				ports.Err(ctxErr),
			)
			errs = append(errs, ctxErr)
			break
		}

		if err := s.transport.Send(buf); err != nil {
			s.logger.Warn("datagram send failed",
				ports.Int("datagram", i),
				ports.Int("bytes", len(buf)),
				ports.Err(err),
			)
			if s.emitter != nil {
				s.emitter.OnSendError(err, len(buf))
			}
			errs = append(errs, err)
			continue
		}
		sent++
		bytesSent += len(buf)
	}

	duration := time.Since(start)
	s.logger.Debug("flushed",
		ports.Int("datagrams", sent),
		ports.Int("bytes", bytesSent),
		ports.Duration("duration", duration),
	)
	if s.emitter != nil {
		s.emitter.OnFlush(sent, bytesSent, duration)
	}

	return errors.Join(errs...)
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.lifecycle.State()
}

// Pending returns the number of buffered records, 0 when disconnected.
func (s *Session) Pending() int {
	if s.collector == nil {
		return 0
	}
	return s.collector.Pending()
}

// Capacity returns the effective group capacity, 0 when disconnected.
func (s *Session) Capacity() int {
	if s.collector == nil {
		return 0
	}
	return s.collector.Capacity()
}

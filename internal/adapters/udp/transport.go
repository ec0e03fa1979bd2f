// Package udp implements ports.Dialer and ports.Transport over unconnected
// UDP sockets.
package udp

import (
	"context"
	"fmt"
	"net"
	"strconv"

	"github.com/bft-labs/statship/internal/domain"
	"github.com/bft-labs/statship/internal/ports"
)

// ResolveFunc resolves a "host:port" address. net.ResolveUDPAddr satisfies it.
type ResolveFunc func(network, address string) (*net.UDPAddr, error)

// Dialer implements ports.Dialer.
type Dialer struct {
	policy  UnresolvedPolicy
	resolve ResolveFunc
	logger  ports.Logger
}

// NewDialer creates a UDP dialer. The destination is resolved for every
// datagram, so DNS changes are picked up without reconnecting.
func NewDialer(policy UnresolvedPolicy, logger ports.Logger) *Dialer {
	return &Dialer{
		policy:  policy,
		resolve: net.ResolveUDPAddr,
		logger:  logger,
	}
}

// WithResolver replaces the address resolver, mostly useful in tests.
func (d *Dialer) WithResolver(resolve ResolveFunc) *Dialer {
	d.resolve = resolve
	return d
}

// Dial opens a local UDP socket. It does not contact host.
func (d *Dialer) Dial(ctx context.Context, host string, port int) (ports.Transport, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("dial udp: %w", err)
	}

	var lc net.ListenConfig
	pc, err := lc.ListenPacket(ctx, "udp", ":0")
	if err != nil {
		return nil, fmt.Errorf("dial udp: %w", err)
	}

	conn, ok := pc.(*net.UDPConn)
	if !ok {
		_ = pc.Close()
		return nil, fmt.Errorf("dial udp: unexpected conn type %T", pc)
	}

	return &Transport{
		conn:    conn,
		address: net.JoinHostPort(host, strconv.Itoa(port)),
		policy:  d.policy,
		resolve: d.resolve,
		logger:  d.logger,
	}, nil
}

// Transport implements ports.Transport.
type Transport struct {
	conn    *net.UDPConn
	address string
	policy  UnresolvedPolicy
	resolve ResolveFunc
	logger  ports.Logger
}

// Send resolves the destination and writes payload as one datagram.
func (t *Transport) Send(payload []byte) error {
	addr, err := t.resolve("udp", t.address)
	if err != nil {
		if t.policy == UnresolvedDrop {
			t.logger.Debug("destination unresolved, dropping datagram",
				ports.String("address", t.address),
				ports.Int("bytes", len(payload)),
				ports.Err(err),
			)
			return nil
		}
		return fmt.Errorf("%w: %s: %v", domain.ErrUnresolvedHost, t.address, err)
	}

	if _, err := t.conn.WriteToUDP(payload, addr); err != nil {
		return fmt.Errorf("write datagram: %w", err)
	}
	return nil
}

// ReceiveBufferSize returns SO_RCVBUF of the socket, or 0 if unavailable.
func (t *Transport) ReceiveBufferSize() int {
	return receiveBufferSize(t.conn)
}

// Close releases the socket.
func (t *Transport) Close() error {
	return t.conn.Close()
}

// LocalAddr returns the local address of the socket.
func (t *Transport) LocalAddr() net.Addr {
	return t.conn.LocalAddr()
}

package batch

import (
	"github.com/bft-labs/statship/internal/domain"
	"github.com/bft-labs/statship/internal/ports"
)

const (
	// DefaultCapacity is used when the transport reports no usable buffer size.
	DefaultCapacity = 1024

	// MinCapacity is the smallest group capacity accepted.
	MinCapacity = 16

	// MaxCapacity is the largest UDP payload over IPv4.
	MaxCapacity = 65507
)

// NormalizeCapacity maps a capacity hint onto the accepted range.
// Non-positive hints and hints above MaxCapacity fall back to DefaultCapacity;
// small positive hints are raised to MinCapacity.
func NormalizeCapacity(capacity int) int {
	switch {
	case capacity <= 0 || capacity > MaxCapacity:
		return DefaultCapacity
	case capacity < MinCapacity:
		return MinCapacity
	default:
		return capacity
	}
}

// Collector packs records into groups whose serialized size stays strictly
// below the capacity. Each group becomes one datagram on flush.
//
// Groups live in an arena of buffers indexed by position; only the last one
// is open for appends. A Collector is not safe for concurrent use.
type Collector struct {
	capacity int
	groups   [][]byte
	counts   []int
	logger   ports.Logger
}

// NewCollector creates a collector with a single empty open group.
func NewCollector(capacity int, logger ports.Logger) *Collector {
	c := &Collector{
		capacity: NormalizeCapacity(capacity),
		logger:   logger,
	}
	c.Reset()
	return c
}

// Add appends r to the open group, opening a new group first when r would
// bring the open one to or past capacity. Empty records are ignored.
// A record that alone reaches capacity is dropped. Add reports whether r
// was buffered.
func (c *Collector) Add(r domain.Record) bool {
	if r.Empty() {
		return false
	}

	if r.Len() >= c.capacity {
		c.logger.Warn("record exceeds datagram capacity, dropping",
			ports.Int("bytes", r.Len()),
			ports.Int("capacity", c.capacity),
		)
		return false
	}

	open := len(c.groups) - 1
	if len(c.groups[open])+r.Len() >= c.capacity {
		c.groups = append(c.groups, make([]byte, 0, c.capacity))
		c.counts = append(c.counts, 0)
		open++
	}

	c.groups[open] = append(c.groups[open], r.String()...)
	c.counts[open]++
	return true
}

// FlushAll returns one buffer per non-empty group, in insertion order.
// A collector with nothing buffered yields no buffers. The buffers remain
// valid after Reset.
func (c *Collector) FlushAll() [][]byte {
	out := make([][]byte, 0, len(c.groups))
	for _, g := range c.groups {
		if len(g) == 0 {
			continue
		}
		out = append(out, g)
	}
	return out
}

// Reset discards all groups and reopens a single empty group.
func (c *Collector) Reset() {
	c.groups = [][]byte{make([]byte, 0, c.capacity)}
	c.counts = []int{0}
}

// Capacity returns the effective (normalized) capacity.
func (c *Collector) Capacity() int {
	return c.capacity
}

// Len returns the number of groups, the open one included.
func (c *Collector) Len() int {
	return len(c.groups)
}

// Pending returns the number of buffered records.
func (c *Collector) Pending() int {
	var n int
	for _, cnt := range c.counts {
		n += cnt
	}
	return n
}

// Size returns the serialized size of the open group.
func (c *Collector) Size() int {
	return len(c.groups[len(c.groups)-1])
}

// Empty returns true if no records are buffered.
func (c *Collector) Empty() bool {
	return c.Pending() == 0
}

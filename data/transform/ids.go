package transform

import "sync"

// IDGenerator hands out record ids. Implementations must never
// return the same id twice.
type IDGenerator interface {
	NextID() int64
}

// Counter is a monotonic generator starting after Last
type Counter struct {
	mu   sync.Mutex
	Last int64
}

func NewCounter(last int64) *Counter {
	return &Counter{Last: last}
}

func (c *Counter) NextID() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Last++
	return c.Last
}

// Raise moves Last up to floor so later ids stay above it
func (c *Counter) Raise(floor int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if floor > c.Last {
		c.Last = floor
	}
}

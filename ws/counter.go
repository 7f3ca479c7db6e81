package ws

import "sync/atomic"

// VisitorCounter is a visitor count that never goes below zero. It is safe
// for concurrent use, though the hub is its only writer.
type VisitorCounter struct {
	n atomic.Int64
}

// Inc adds one visitor and returns the new count.
func (c *VisitorCounter) Inc() int64 {
	return c.n.Add(1)
}

// Dec removes one visitor and returns the new count. At zero it stays zero.
func (c *VisitorCounter) Dec() int64 {
	for {
		cur := c.n.Load()
		if cur <= 0 {
			return 0
		}
		if c.n.CompareAndSwap(cur, cur-1) {
			return cur - 1
		}
	}
}

// Load returns the current count.
func (c *VisitorCounter) Load() int64 {
	return c.n.Load()
}

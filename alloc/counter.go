package alloc

import "sync/atomic"

// Stats is a snapshot of the calls observed by a Counter.
type Stats struct {
	Allocs   uint64 // Alloc calls
	Callocs  uint64 // Calloc calls
	Reallocs uint64 // Realloc calls
	Frees    uint64 // Free calls with a non-nil block
	Failed   uint64 // Alloc, Calloc or Realloc calls that returned nil
	Live     int64  // blocks handed out and not yet freed
}

// Calls returns the number of allocating calls (Alloc, Calloc, Realloc).
func (s Stats) Calls() uint64 {
	return s.Allocs + s.Callocs + s.Reallocs
}

// Counter wraps an Allocator and counts what flows through it.
//
// Live accounting treats nil as the only failure value: a successful Alloc
// or Calloc adds a block, Realloc(nil, n) adds one, Realloc of an existing
// block moves it, and Free of a non-nil block removes one. Zero-length
// blocks count like any other.
type Counter struct {
	next Allocator

	allocs   atomic.Uint64
	callocs  atomic.Uint64
	reallocs atomic.Uint64
	frees    atomic.Uint64
	failed   atomic.Uint64
	live     atomic.Int64
}

var _ Allocator = (*Counter)(nil)

// NewCounter returns a Counter delegating to next. A nil next means Heap.
func NewCounter(next Allocator) *Counter {
	if next == nil {
		next = Heap{}
	}
	return &Counter{next: next}
}

// Alloc counts and delegates.
func (c *Counter) Alloc(size int) []byte {
	c.allocs.Add(1)
	return c.track(c.next.Alloc(size))
}

// Calloc counts and delegates.
func (c *Counter) Calloc(count, size int) []byte {
	c.callocs.Add(1)
	return c.track(c.next.Calloc(count, size))
}

// Realloc counts and delegates.
func (c *Counter) Realloc(p []byte, size int) []byte {
	c.reallocs.Add(1)
	np := c.next.Realloc(p, size)
	if np == nil {
		c.failed.Add(1)
		return nil
	}
	if p == nil {
		c.live.Add(1)
	}
	return np
}

// Free counts and delegates.
func (c *Counter) Free(p []byte) {
	if p != nil {
		c.frees.Add(1)
		c.live.Add(-1)
	}
	c.next.Free(p)
}

// Stats returns a snapshot of the counters. Fields are read individually,
// so a snapshot taken during concurrent calls may be slightly skewed.
func (c *Counter) Stats() Stats {
	return Stats{
		Allocs:   c.allocs.Load(),
		Callocs:  c.callocs.Load(),
		Reallocs: c.reallocs.Load(),
		Frees:    c.frees.Load(),
		Failed:   c.failed.Load(),
		Live:     c.live.Load(),
	}
}

// Calls returns the number of allocating calls so far.
func (c *Counter) Calls() uint64 {
	return c.allocs.Load() + c.callocs.Load() + c.reallocs.Load()
}

// Live returns the number of blocks handed out and not yet freed.
func (c *Counter) Live() int64 {
	return c.live.Load()
}

func (c *Counter) track(p []byte) []byte {
	if p == nil {
		c.failed.Add(1)
		return nil
	}
	c.live.Add(1)
	return p
}

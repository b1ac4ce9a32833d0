package mallmock

import (
	"github.com/joshuapare/mallmock/alloc"
	"github.com/joshuapare/mallmock/internal/spin"
)

// Interceptor is an alloc.Allocator that can be armed to fail one call.
// The zero value is not usable; construct with New.
type Interceptor struct {
	next alloc.Allocator

	mu       spin.Lock
	armed    bool
	calls    uint64
	failAt   uint64
	sentinel []byte
}

var _ alloc.Allocator = (*Interceptor)(nil)

// New returns a disarmed Interceptor delegating to next. A nil next means alloc.Heap.
func New(next alloc.Allocator) *Interceptor {
	if next == nil {
		next = alloc.Heap{}
	}
	return &Interceptor{next: next}
}

// Reset disarms the interceptor and clears its counter. Every later call
// delegates until the next Arm.
func (ic *Interceptor) Reset() {
	ic.mu.Lock()
	ic.armed = false
	ic.calls = 0
	ic.failAt = 0
	ic.sentinel = nil
	ic.mu.Unlock()
}

// Arm lets the next successesBeforeFailure allocating calls through and
// makes the one after them return sentinel. A value of 0 fails the very next
// call; negative values are treated as 0. Arming again replaces the previous
// configuration and restarts the count.
func (ic *Interceptor) Arm(sentinel []byte, successesBeforeFailure int) {
	k := uint64(max(successesBeforeFailure, 0))
	ic.mu.Lock()
	ic.calls = 0
	ic.failAt = k
	ic.sentinel = sentinel
	ic.armed = true
	ic.mu.Unlock()
}

// decide records one allocating call and reports whether it is the one to fail.
func (ic *Interceptor) decide() (sentinel []byte, fail bool) {
	ic.mu.Lock()
	if ic.armed {
		fail = ic.calls == ic.failAt
		ic.calls++
		sentinel = ic.sentinel
	}
	ic.mu.Unlock()
	return sentinel, fail
}

// Alloc delegates unless this is the armed call.
func (ic *Interceptor) Alloc(size int) []byte {
	if s, fail := ic.decide(); fail {
		return s
	}
	return ic.next.Alloc(size)
}

// Calloc delegates unless this is the armed call.
func (ic *Interceptor) Calloc(count, size int) []byte {
	if s, fail := ic.decide(); fail {
		return s
	}
	return ic.next.Calloc(count, size)
}

// Realloc delegates unless this is the armed call. An injected failure
// leaves p untouched.
func (ic *Interceptor) Realloc(p []byte, size int) []byte {
	if s, fail := ic.decide(); fail {
		return s
	}
	return ic.next.Realloc(p, size)
}

// Free always delegates and is not counted.
func (ic *Interceptor) Free(p []byte) {
	ic.next.Free(p)
}

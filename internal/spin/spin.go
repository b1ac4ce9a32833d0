// Package spin provides a busy-wait lock for very short critical sections.
//
// The lock never sleeps, parks, or allocates. That makes it safe to take from
// inside an allocator wrapper, where a blocking mutex could itself allocate
// or re-enter the allocator being wrapped.
//
// Lock is not reentrant: a holder that calls Lock again spins forever. There
// is no fairness and no timeout. Calling Unlock on a lock the caller does not
// hold silently breaks mutual exclusion.
package spin

import "sync/atomic"

const (
	unlocked uint32 = 0
	locked   uint32 = 1
)

// Lock is a compare-and-swap spin lock. The zero value is unlocked.
type Lock struct {
	state atomic.Uint32
}

// Lock spins until the state moves from unlocked to locked.
func (l *Lock) Lock() {
	for !l.state.CompareAndSwap(unlocked, locked) {
	}
}

// TryLock makes a single acquisition attempt.
func (l *Lock) TryLock() bool {
	return l.state.CompareAndSwap(unlocked, locked)
}

// Unlock releases the lock unconditionally.
func (l *Lock) Unlock() {
	l.state.Store(unlocked)
}

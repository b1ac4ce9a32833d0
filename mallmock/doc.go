// Package mallmock injects a single allocation failure at an exact call
// ordinal.
//
// # Overview
//
// An Interceptor wraps a real alloc.Allocator. While disarmed it delegates
// every call. Arm(sentinel, k) starts a fresh count: the first k calls to
// Alloc, Calloc or Realloc delegate, call number k (zero-based) returns the
// sentinel instead, and every later call delegates again. One arming injects
// exactly one failure. Free is never counted or intercepted.
//
//	ic := mallmock.New(alloc.Heap{})
//	ic.Arm(nil, 5) // five successes, then the sixth call fails
//	f, err := readfile.Open(ic, path, nil)
//	ic.Reset()
//
// The ordinal is relative to the most recent Arm, not to process start, so
// "fail the 6th allocation" means the same thing no matter what ran before.
//
// # Concurrency
//
// The counter and armed state are guarded by a spin lock held only for the
// decision; delegation happens outside it. Concurrent callers are counted in
// lock-acquisition order, so ordinal tests should drive the code under test
// from a single goroutine.
//
// # Sweeps
//
// Sweep arms k = 0, 1, 2, ... against the same workload until a run completes
// without reaching the armed ordinal, and checks that each injected failure
// was reported and left no live blocks behind.
//
// The Interceptor itself never logs and never returns errors.
package mallmock

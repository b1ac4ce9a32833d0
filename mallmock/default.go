package mallmock

import "github.com/joshuapare/mallmock/alloc"

var std = New(alloc.Heap{})

// Default returns the process-wide Interceptor over the Go heap. Code that
// should be testable without plumbing an allocator through every constructor
// can take its allocations from Default and leave arming to its tests.
func Default() *Interceptor { return std }

// Arm arms the process-wide Interceptor. See Interceptor.Arm.
func Arm(sentinel []byte, successesBeforeFailure int) {
	std.Arm(sentinel, successesBeforeFailure)
}

// Reset disarms the process-wide Interceptor.
func Reset() { std.Reset() }

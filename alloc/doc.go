// Package alloc defines the allocation capability that code under test is
// constructed with, plus the allocators that implement it.
//
// # Allocator Interface
//
// The core abstraction is the Allocator interface, modelled on the C heap:
//
//   - Alloc(size): allocate size bytes
//   - Calloc(count, size): allocate count*size zeroed bytes
//   - Realloc(p, size): resize p, preserving its contents
//   - Free(p): release p
//
// A nil result is an allocation failure. Code that wants to be tested for
// out-of-memory handling takes an Allocator instead of calling make directly,
// so a test can hand it a fault-injecting wrapper (see package mallmock).
//
// # Implementations
//
// Heap: the Go heap. Free only drops the reference.
//
// Mmap: page-granular anonymous mappings outside the Go heap. Free unmaps.
//
// Counter: a decorator that counts calls per primitive and tracks the number
// of live blocks, so tests can assert that a failure path released
// everything it allocated.
//
// # Usage Example
//
//	var a alloc.Allocator = alloc.Heap{}
//	p := a.Alloc(64)
//	if p == nil {
//	    return alloc.ErrNoMemory
//	}
//	defer a.Free(p)
//
// # Thread Safety
//
// Heap and Counter are safe for concurrent use. Mmap is safe for concurrent
// use; each call maps or unmaps independently.
package alloc

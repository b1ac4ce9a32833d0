package alloc

// Allocator is the heap capability handed to code that allocates.
//
// Implementations:
//   - Heap: Go heap
//   - Mmap: anonymous page mappings
//   - Counter: call and live-block accounting around another Allocator
//   - mallmock.Interceptor: deterministic fault injection around another Allocator
type Allocator interface {
	// Alloc returns size bytes, or nil on failure.
	// Negative sizes fail. A zero size succeeds with a non-nil empty slice.
	Alloc(size int) []byte

	// Calloc returns count*size zeroed bytes, or nil on failure.
	// Negative operands and overflowing products fail.
	Calloc(count, size int) []byte

	// Realloc returns a block of size bytes holding the first min(len(p), size)
	// bytes of p, or nil on failure. On failure p is left valid and still owned
	// by the caller. Realloc(nil, size) behaves like Alloc(size).
	Realloc(p []byte, size int) []byte

	// Free releases p. Freeing nil is a no-op.
	Free(p []byte)
}

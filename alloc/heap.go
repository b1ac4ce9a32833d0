package alloc

import "github.com/joshuapare/mallmock/internal/buf"

// Heap allocates from the Go heap. It is the real allocator that fault
// injection delegates to by default.
type Heap struct{}

var _ Allocator = Heap{}

// Alloc returns a new zeroed slice of length size.
func (Heap) Alloc(size int) []byte {
	if size < 0 {
		return nil
	}
	return make([]byte, size)
}

// Calloc returns count*size zeroed bytes.
func (h Heap) Calloc(count, size int) []byte {
	n, ok := buf.MulSizeSafe(count, size)
	if !ok {
		return nil
	}
	return h.Alloc(n)
}

// Realloc copies p into a new slice of length size. When size fits within
// cap(p) the existing backing array is reused.
func (h Heap) Realloc(p []byte, size int) []byte {
	if size < 0 {
		return nil
	}
	if p == nil {
		return h.Alloc(size)
	}
	if size <= cap(p) {
		grown := p[:size]
		if size > len(p) {
			clear(grown[len(p):])
		}
		return grown
	}
	np := make([]byte, size)
	copy(np, p)
	return np
}

// Free drops nothing; the garbage collector reclaims p once unreferenced.
func (Heap) Free([]byte) {}

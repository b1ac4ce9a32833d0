package alloc

import (
	"github.com/joshuapare/mallmock/internal/buf"
	"github.com/joshuapare/mallmock/internal/mmap"
)

// Mmap backs every non-empty block with its own anonymous mapping.
// It suits tests that want allocations outside the Go heap and real
// out-of-memory failures from the kernel. Blocks must be released with Free.
type Mmap struct{}

var _ Allocator = Mmap{}

// zeroBlock backs zero-length allocations, which cannot be mapped.
var zeroBlock [0]byte

// Alloc maps size bytes. Mapping failures return nil.
func (Mmap) Alloc(size int) []byte {
	switch {
	case size < 0:
		return nil
	case size == 0:
		return zeroBlock[:]
	}
	p, err := mmap.Map(size)
	if err != nil {
		return nil
	}
	return p
}

// Calloc maps count*size bytes. Fresh mappings are already zeroed.
func (m Mmap) Calloc(count, size int) []byte {
	n, ok := buf.MulSizeSafe(count, size)
	if !ok {
		return nil
	}
	return m.Alloc(n)
}

// Realloc maps a new block, copies p into it and unmaps p.
// Requests that fit in the pages already mapped for p reuse them.
func (m Mmap) Realloc(p []byte, size int) []byte {
	if size < 0 {
		return nil
	}
	if p == nil {
		return m.Alloc(size)
	}
	if size > 0 && size <= cap(p) {
		grown := p[:size]
		if size > len(p) {
			clear(grown[len(p):])
		}
		return grown
	}
	np := m.Alloc(size)
	if np == nil {
		return nil
	}
	copy(np, p)
	m.Free(p)
	return np
}

// Free unmaps p.
func (Mmap) Free(p []byte) {
	_ = mmap.Unmap(p)
}

package alloc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allocatorSuite runs the Allocator contract against a.
func allocatorSuite(t *testing.T, a Allocator) {
	t.Run("Alloc", func(t *testing.T) {
		p := a.Alloc(100)
		require.NotNil(t, p)
		require.Len(t, p, 100)
		defer a.Free(p)
		p[0], p[99] = 1, 2
	})

	t.Run("AllocZero", func(t *testing.T) {
		p := a.Alloc(0)
		assert.NotNil(t, p, "zero-size allocation succeeds")
		assert.Empty(t, p)
		a.Free(p)
	})

	t.Run("AllocNegative", func(t *testing.T) {
		assert.Nil(t, a.Alloc(-1))
	})

	t.Run("CallocZeroed", func(t *testing.T) {
		p := a.Calloc(4, 25)
		require.Len(t, p, 100)
		defer a.Free(p)
		for i, b := range p {
			require.Zero(t, b, "byte %d", i)
		}
	})

	t.Run("CallocOverflow", func(t *testing.T) {
		assert.Nil(t, a.Calloc(math.MaxInt/2+1, 2))
		assert.Nil(t, a.Calloc(-1, 8))
	})

	t.Run("ReallocGrowPreserves", func(t *testing.T) {
		p := a.Alloc(3)
		require.NotNil(t, p)
		copy(p, "abc")
		np := a.Realloc(p, 10000)
		require.Len(t, np, 10000)
		defer a.Free(np)
		assert.Equal(t, "abc", string(np[:3]))
		for _, b := range np[3:16] {
			require.Zero(t, b)
		}
	})

	t.Run("ReallocShrink", func(t *testing.T) {
		p := a.Alloc(8)
		require.NotNil(t, p)
		copy(p, "abcdefgh")
		np := a.Realloc(p, 2)
		require.Len(t, np, 2)
		defer a.Free(np)
		assert.Equal(t, "ab", string(np))
	})

	t.Run("ReallocNil", func(t *testing.T) {
		p := a.Realloc(nil, 16)
		require.Len(t, p, 16)
		a.Free(p)
	})

	t.Run("FreeNil", func(t *testing.T) {
		a.Free(nil)
	})
}

func TestHeap(t *testing.T) {
	allocatorSuite(t, Heap{})
}

func TestHeap_ReallocReusesCapacity(t *testing.T) {
	var h Heap
	p := make([]byte, 2, 8)
	copy(p, "hi")
	p[:8][5] = 0xff

	np := h.Realloc(p, 6)
	require.Len(t, np, 6)
	assert.Same(t, &p[0], &np[0], "fits in capacity")
	assert.Equal(t, []byte{'h', 'i', 0, 0, 0, 0}, np, "grown tail is cleared")
}

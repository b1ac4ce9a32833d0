package alloc

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// failing returns nil from every allocating call.
type failing struct{}

func (failing) Alloc(int) []byte           { return nil }
func (failing) Calloc(int, int) []byte     { return nil }
func (failing) Realloc([]byte, int) []byte { return nil }
func (failing) Free([]byte)                {}

func TestCounter(t *testing.T) {
	allocatorSuite(t, NewCounter(nil))
}

func TestCounter_CountsPerPrimitive(t *testing.T) {
	c := NewCounter(Heap{})

	a := c.Alloc(8)
	b := c.Calloc(2, 4)
	a = c.Realloc(a, 32)
	r := c.Realloc(nil, 4)

	s := c.Stats()
	assert.Equal(t, uint64(1), s.Allocs)
	assert.Equal(t, uint64(1), s.Callocs)
	assert.Equal(t, uint64(2), s.Reallocs)
	assert.Equal(t, uint64(4), s.Calls())
	assert.Equal(t, uint64(4), c.Calls())
	assert.Equal(t, int64(3), s.Live)

	c.Free(a)
	c.Free(b)
	c.Free(r)
	c.Free(nil)

	s = c.Stats()
	assert.Equal(t, uint64(3), s.Frees)
	assert.Zero(t, s.Live)
	assert.Zero(t, s.Failed)
}

func TestCounter_FailuresAreNotLive(t *testing.T) {
	c := NewCounter(failing{})

	assert.Nil(t, c.Alloc(1))
	assert.Nil(t, c.Calloc(1, 1))
	assert.Nil(t, c.Realloc([]byte{1}, 2))

	s := c.Stats()
	assert.Equal(t, uint64(3), s.Failed)
	assert.Equal(t, uint64(3), s.Calls())
	assert.Zero(t, c.Live())
}

func TestCounter_Concurrent(t *testing.T) {
	const (
		workers = 8
		rounds  = 500
	)
	c := NewCounter(nil)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range rounds {
				p := c.Alloc(16)
				assert.NotNil(t, p)
				c.Free(p)
			}
		}()
	}
	wg.Wait()

	s := c.Stats()
	assert.Equal(t, uint64(workers*rounds), s.Allocs)
	assert.Equal(t, uint64(workers*rounds), s.Frees)
	assert.Zero(t, s.Live)
}

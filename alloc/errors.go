package alloc

import "errors"

// ErrNoMemory indicates that an allocator returned no memory. Allocators
// themselves signal failure with a nil slice; callers wrap this error when
// they propagate that failure.
var ErrNoMemory = errors.New("alloc: out of memory")

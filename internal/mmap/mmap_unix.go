//go:build unix

// Package mmap provides anonymous, page-granular memory mappings.
package mmap

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// PageSize is the system page size.
var PageSize = unix.Getpagesize()

// Map returns n bytes of zeroed, private, read-write memory outside the Go heap.
// The mapping is rounded up to whole pages; the returned slice has length n and
// keeps the full mapping as its capacity, which Unmap relies on.
func Map(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("mmap: invalid length %d", n)
	}
	size := roundPages(n)
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("mmap: map %d bytes: %w", size, err)
	}
	return data[:n], nil
}

// Unmap releases a mapping returned by Map. Unmapping twice is a no-op.
func Unmap(b []byte) error {
	if cap(b) == 0 {
		return nil
	}
	err := unix.Munmap(b[:cap(b)])
	if errors.Is(err, unix.EINVAL) {
		return nil
	}
	return err
}

func roundPages(n int) int {
	return (n + PageSize - 1) &^ (PageSize - 1)
}

//go:build !unix

// Package mmap provides anonymous, page-granular memory mappings.
package mmap

import "fmt"

// PageSize is the allocation granule used by the fallback.
var PageSize = 4096

// Map allocates n bytes from the Go heap when anonymous mappings are not available.
func Map(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("mmap: invalid length %d", n)
	}
	return make([]byte, n, roundPages(n)), nil
}

// Unmap is a no-op for heap-backed mappings.
func Unmap([]byte) error { return nil }

func roundPages(n int) int {
	return (n + PageSize - 1) &^ (PageSize - 1)
}

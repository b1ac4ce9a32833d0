// Package buf contains bounds-checked helpers for fixed-layout byte blocks.
package buf

import "encoding/binary"

// U64LE reads a little-endian uint64 from b at off. Returns 0 when out of range.
func U64LE(b []byte, off int) uint64 {
	s, ok := Slice(b, off, 8)
	if !ok {
		return 0
	}
	return binary.LittleEndian.Uint64(s)
}

// PutU64LE writes v little-endian into b at off. It reports false and leaves b
// untouched when the field does not fit.
func PutU64LE(b []byte, off int, v uint64) bool {
	s, ok := Slice(b, off, 8)
	if !ok {
		return false
	}
	binary.LittleEndian.PutUint64(s, v)
	return true
}

// Package readfile reads a file into memory as a list of lines, taking every
// block it stores from an injected alloc.Allocator.
//
// It exists to show what well-behaved code under fault injection looks like:
// when any allocation fails, Open unwinds everything it has built so far and
// returns a nil *File with an error wrapping alloc.ErrNoMemory.
//
// # Allocation Sequence
//
// For a file of n lines Open performs exactly n+3 allocating calls:
//
//  1. Calloc of the 16-byte header block (line count, byte count)
//  2. Alloc of the file name copy
//  3. Alloc of the read buffer (Options.BufferSize, freed before Open returns)
//  4. one Calloc per line
//
// An empty file therefore costs three calls and yields zero lines.
//
// # Lines
//
// Lines keep their trailing newline. A final line without a newline is kept
// as is. A line longer than the read buffer is split into buffer-sized lines.
package readfile

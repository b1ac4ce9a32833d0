package readfile

import (
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/joshuapare/mallmock/alloc"
	"github.com/joshuapare/mallmock/internal/buf"
	"github.com/joshuapare/mallmock/list"
	"golang.org/x/text/encoding"
)

// Header block layout.
const (
	headerSize   = 16
	offLineCount = 0
	offByteCount = 8
)

// File holds the lines of a file. Every block it references belongs to the
// allocator it was opened with and is returned to it by Close.
type File struct {
	a      alloc.Allocator
	header []byte
	name   []byte
	lines  list.List[lineItem]
}

type lineItem struct {
	link list.Link[lineItem]
	text []byte
}

// Open reads the file at path as lines. A nil allocator means alloc.Heap.
func Open(a alloc.Allocator, path string, opts *Options) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("readfile: %w", err)
	}
	defer fh.Close()
	return OpenReader(a, path, fh, opts)
}

// OpenReader reads lines from rd, recording name as the file name.
// On any failure every block allocated so far is freed and nil is returned.
func OpenReader(a alloc.Allocator, name string, rd io.Reader, opts *Options) (*File, error) {
	if a == nil {
		a = alloc.Heap{}
	}
	f := &File{a: a}
	f.lines.Init()

	f.header = a.Calloc(1, headerSize)
	if f.header == nil {
		return nil, fmt.Errorf("readfile: %s: header: %w", name, alloc.ErrNoMemory)
	}

	f.name = a.Alloc(len(name))
	if f.name == nil {
		f.Close()
		return nil, fmt.Errorf("readfile: %s: name: %w", name, alloc.ErrNoMemory)
	}
	copy(f.name, name)

	if err := f.load(rd, opts.bufferSize(), opts.decoder()); err != nil {
		f.Close()
		return nil, fmt.Errorf("readfile: %s: %w", name, err)
	}
	return f, nil
}

func (f *File) load(rd io.Reader, size int, dec *encoding.Decoder) error {
	b := f.a.Alloc(size)
	if b == nil {
		return fmt.Errorf("read buffer: %w", alloc.ErrNoMemory)
	}
	defer f.a.Free(b)

	fill := 0
	for {
		n, rerr := rd.Read(b[fill:])
		if n > 0 {
			end := fill + n
			start := 0
			for i := fill; i < end; i++ {
				if b[i] != '\n' {
					continue
				}
				if err := f.addLine(b[start:i+1], dec); err != nil {
					return err
				}
				start = i + 1
			}
			if end == len(b) && start == 0 {
				// No newline in a full buffer: store it as one line.
				if err := f.addLine(b[:end], dec); err != nil {
					return err
				}
				fill = 0
			} else {
				fill = copy(b, b[start:end])
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return fmt.Errorf("read: %w", rerr)
		}
	}

	if fill > 0 {
		return f.addLine(b[:fill], dec)
	}
	return nil
}

func (f *File) addLine(raw []byte, dec *encoding.Decoder) error {
	text := raw
	if dec != nil {
		decoded, err := dec.Bytes(raw)
		if err != nil {
			return fmt.Errorf("line %d: %w: %w", f.LineCount(), ErrDecode, err)
		}
		text = decoded
	}

	li := &lineItem{}
	li.text = f.a.Calloc(1, len(text))
	if li.text == nil {
		return fmt.Errorf("line %d: %w", f.LineCount(), alloc.ErrNoMemory)
	}
	copy(li.text, text)
	f.lines.PushBack(li.link.Init(li))

	total, _ := buf.AddOverflowSafe(f.Size(), len(text))
	buf.PutU64LE(f.header, offLineCount, uint64(f.LineCount()+1))
	buf.PutU64LE(f.header, offByteCount, uint64(total))
	return nil
}

// Close returns every block to the allocator. It is safe on a nil or
// already closed File.
func (f *File) Close() {
	if f == nil {
		return
	}
	for li := range f.lines.Owners() {
		li.link.Remove()
		f.a.Free(li.text)
		li.text = nil
	}
	f.a.Free(f.name)
	f.name = nil
	f.a.Free(f.header)
	f.header = nil
}

// Name returns the file name given to Open.
func (f *File) Name() string {
	if f == nil {
		return ""
	}
	return string(f.name)
}

// LineCount returns the number of lines read.
func (f *File) LineCount() int {
	if f == nil {
		return 0
	}
	return int(buf.U64LE(f.header, offLineCount))
}

// Size returns the total number of bytes stored across all lines.
func (f *File) Size() int {
	if f == nil {
		return 0
	}
	return int(buf.U64LE(f.header, offByteCount))
}

// Line returns the zero-based n-th line.
func (f *File) Line(n int) (string, bool) {
	if f == nil || n < 0 {
		return "", false
	}
	for li := range f.lines.Owners() {
		if n == 0 {
			return string(li.text), true
		}
		n--
	}
	return "", false
}

// Lines yields every line in order.
func (f *File) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		if f == nil {
			return
		}
		for li := range f.lines.Owners() {
			if !yield(string(li.text)) {
				return
			}
		}
	}
}

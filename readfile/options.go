package readfile

import "golang.org/x/text/encoding"

// DefaultBufferSize is the read buffer size used when Options.BufferSize is zero.
const DefaultBufferSize = 0x400

// Options controls Open.
type Options struct {
	// BufferSize is the size of the read buffer, which also bounds the
	// length of a stored line. Default: DefaultBufferSize.
	BufferSize int

	// Encoding decodes each line to UTF-8 before it is stored, e.g.
	// charmap.Windows1252. Only single-byte encodings are safe here, since a
	// line split at the buffer boundary is decoded on its own.
	// Default: nil (bytes are stored as read).
	Encoding encoding.Encoding
}

func (o *Options) bufferSize() int {
	if o == nil || o.BufferSize <= 0 {
		return DefaultBufferSize
	}
	return o.BufferSize
}

func (o *Options) decoder() *encoding.Decoder {
	if o == nil || o.Encoding == nil {
		return nil
	}
	return o.Encoding.NewDecoder()
}

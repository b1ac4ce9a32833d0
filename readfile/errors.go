package readfile

import "errors"

// ErrDecode indicates that a line could not be decoded with Options.Encoding.
var ErrDecode = errors.New("readfile: decode failed")

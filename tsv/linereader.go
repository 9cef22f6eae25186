package tsv

import (
	"bufio"
	"io"
)

const defaultLineBufferSize = 64 * 1024

// LineReader reads newline-terminated lines of arbitrary length from a
// stream through a fixed-size bufio buffer. Lines that fit the buffer are
// returned as slices into it; longer lines spill into a reusable growable
// buffer, so memory stays proportional to the longest single line rather
// than the input size.
type LineReader struct {
	r     *bufio.Reader
	spill []byte
}

// NewLineReader returns a LineReader over r with the default buffer size.
func NewLineReader(r io.Reader) *LineReader {
	return NewLineReaderSize(r, defaultLineBufferSize)
}

// NewLineReaderSize returns a LineReader whose internal buffer holds size
// bytes. Small sizes are useful for exercising boundary handling in tests.
func NewLineReaderSize(r io.Reader, size int) *LineReader {
	return &LineReader{r: bufio.NewReaderSize(r, size)}
}

// ReadLine returns the next line with its trailing '\n' removed. A
// carriage return before the newline is preserved so callers can detect
// Windows line endings. The returned slice is only valid until the next
// call. At end of input a final unterminated line is returned with a nil
// error; the call after that returns io.EOF.
func (lr *LineReader) ReadLine() ([]byte, error) {
	lr.spill = lr.spill[:0]
	for {
		frag, err := lr.r.ReadSlice('\n')
		switch err {
		case nil:
			if len(lr.spill) == 0 {
				return frag[:len(frag)-1], nil
			}
			lr.spill = append(lr.spill, frag[:len(frag)-1]...)
			return lr.spill, nil
		case bufio.ErrBufferFull:
			lr.spill = append(lr.spill, frag...)
		case io.EOF:
			lr.spill = append(lr.spill, frag...)
			if len(lr.spill) == 0 {
				return nil, io.EOF
			}
			return lr.spill, nil
		default:
			return nil, err
		}
	}
}

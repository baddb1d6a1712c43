package repl

import (
	"bufio"
	"fmt"
	"io"
)

// MaxLineSize is the longest line, in bytes, a LineReader returns.
const MaxLineSize = 1 << 20

var ErrLineTooLong = fmt.Errorf("line longer than %d bytes", MaxLineSize)

// LineReader splits input into lines. A line over MaxLineSize is skipped
// and reported as ErrLineTooLong; reading continues with the next line.
type LineReader struct {
	r *bufio.Reader
}

// NewLineReader wraps r for line-at-a-time reading.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReaderSize(r, 4096)}
}

// ReadLine returns the next line without its line ending. It returns io.EOF
// once input is exhausted.
func (lr *LineReader) ReadLine() (string, error) {
	var buf []byte
	tooLong := false
	for {
		// bufio.Reader.ReadLine only fails at the start of a line.
		chunk, isPrefix, err := lr.r.ReadLine()
		if err != nil {
			return "", err
		}
		if !tooLong {
			if len(buf)+len(chunk) > MaxLineSize {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			break
		}
	}
	if tooLong {
		return "", ErrLineTooLong
	}
	return string(buf), nil
}

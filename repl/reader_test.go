package repl

import (
	"io"
	"strings"
	"testing"

	expect "github.com/stretchr/testify/assert"
	assert "github.com/stretchr/testify/require"
)

func TestLineReader(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"no trailing newline", "(a b)", []string{"(a b)"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"blank lines", "a\n\nb\n", []string{"a", "", "b"}},
		{"exactly max", strings.Repeat("x", MaxLineSize) + "\n", []string{strings.Repeat("x", MaxLineSize)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lr := NewLineReader(strings.NewReader(tt.input))
			var got []string
			for {
				line, err := lr.ReadLine()
				if err == io.EOF {
					break
				}
				assert.NoError(t, err)
				got = append(got, line)
			}
			expect.Equal(t, tt.want, got)
		})
	}
}

func TestLineReaderOversized(t *testing.T) {
	input := "a\n" + strings.Repeat("x", MaxLineSize+1) + "\nb\n" + strings.Repeat("y", 3*MaxLineSize)
	lr := NewLineReader(strings.NewReader(input))

	line, err := lr.ReadLine()
	assert.NoError(t, err)
	expect.Equal(t, "a", line)

	_, err = lr.ReadLine()
	expect.ErrorIs(t, err, ErrLineTooLong)

	line, err = lr.ReadLine()
	assert.NoError(t, err)
	expect.Equal(t, "b", line)

	_, err = lr.ReadLine()
	expect.ErrorIs(t, err, ErrLineTooLong)

	_, err = lr.ReadLine()
	expect.Equal(t, io.EOF, err)
}

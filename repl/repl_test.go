package repl

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	expect "github.com/stretchr/testify/assert"
	assert "github.com/stretchr/testify/require"

	"github.com/dhamidi/pairtree/syntax"
)

func TestSessionRun(t *testing.T) {
	in := strings.NewReader("(a b)\n(a  b)\nc\n")
	var out bytes.Buffer

	s, err := NewSession(in, &out, WithPrompt(""))
	assert.NoError(t, err)
	assert.NoError(t, s.Run(context.Background()))

	want := `Pair(
  Char('a')
  Char('b')
)
error: expected '(' or atom, found ' ' at offset 3
Char('c')
`
	expect.Equal(t, want, out.String())
	expect.Equal(t, Stats{Lines: 3, Failures: 1}, s.Stats())
}

func TestSessionPrompt(t *testing.T) {
	var out bytes.Buffer
	s, err := NewSession(strings.NewReader("a\n"), &out)
	assert.NoError(t, err)
	assert.NoError(t, s.Run(context.Background()))

	expect.Equal(t, "> Char('a')\n> ", out.String())
}

func TestSessionFormats(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"source", "(a (b c))\n"},
		{"text", "Pair(\n  Char('a')\n  Pair(\n    Char('b')\n    Char('c')\n  )\n)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			s, err := NewSession(strings.NewReader(""), &bytes.Buffer{}, WithFormat(tt.format))
			assert.NoError(t, err)
			got, err := s.Eval("(a (b c))")
			assert.NoError(t, err)
			expect.Equal(t, tt.want, got)
		})
	}
}

func TestSessionRejectsUnknownFormat(t *testing.T) {
	_, err := NewSession(strings.NewReader(""), &bytes.Buffer{}, WithFormat("xml"))
	expect.Error(t, err)
}

func TestSessionEvalErrors(t *testing.T) {
	s, err := NewSession(strings.NewReader(""), &bytes.Buffer{})
	assert.NoError(t, err)

	_, err = s.Eval("")
	expect.ErrorIs(t, err, syntax.ErrEndOfInput)
	_, err = s.Eval("(")
	expect.ErrorIs(t, err, syntax.ErrEndOfInput)
	_, err = s.Eval("(a b) ")
	expect.ErrorIs(t, err, syntax.ErrTrailingInput)
	_, err = s.Eval("(a  b)")
	expect.ErrorIs(t, err, syntax.ErrUnexpectedToken)

	expect.Equal(t, Stats{Lines: 4, Failures: 4}, s.Stats())
}

func TestSessionStripsCarriageReturn(t *testing.T) {
	var out bytes.Buffer
	s, err := NewSession(strings.NewReader("(a b)\r\n"), &out, WithPrompt(""), WithFormat("source"))
	assert.NoError(t, err)
	assert.NoError(t, s.Run(context.Background()))
	expect.Equal(t, "(a b)\n", out.String())
}

func TestSessionStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	s, err := NewSession(strings.NewReader("a\nb\n"), &out, WithPrompt(""))
	assert.NoError(t, err)

	err = s.Run(ctx)
	expect.True(t, errors.Is(err, context.Canceled))
	expect.Empty(t, out.String())
}

func TestSessionSkipsOversizedLine(t *testing.T) {
	in := strings.NewReader(strings.Repeat("a", 2*MaxLineSize) + "\n(a b)\n")
	var out bytes.Buffer

	s, err := NewSession(in, &out, WithPrompt(""), WithFormat("source"))
	assert.NoError(t, err)
	assert.NoError(t, s.Run(context.Background()))

	expect.Equal(t, "error: line longer than 1048576 bytes\n(a b)\n", out.String())
	expect.Equal(t, Stats{Lines: 2, Failures: 1}, s.Stats())
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("disk full") }

func TestSessionReportsWriteErrors(t *testing.T) {
	s, err := NewSession(strings.NewReader("a\n"), failingWriter{}, WithPrompt(""))
	assert.NoError(t, err)
	expect.EqualError(t, s.Run(context.Background()), "disk full")
}

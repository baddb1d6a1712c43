package lsp

import (
	"testing"

	expect "github.com/stretchr/testify/assert"
	assert "github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestDiagnoseCleanDocument(t *testing.T) {
	diags := Diagnose("(a b)\n\n((a b) c)\r\nz\n")
	assert.NotNil(t, diags)
	expect.Empty(t, diags)
}

func TestDiagnose(t *testing.T) {
	text := "(a b)\n(a  b)\n(λ b) \n(a b\n"
	diags := Diagnose(text)
	assert.Len(t, diags, 3)

	tests := []struct {
		line       protocol.UInteger
		start, end protocol.UInteger
		message    string
	}{
		{1, 3, 4, "expected '(' or atom, found ' ' at offset 3"},
		{2, 5, 6, "trailing input at offset 5: ' '"},
		{3, 4, 4, "unexpected end of input: expected ')'"},
	}

	for i, tt := range tests {
		d := diags[i]
		expect.Equal(t, tt.line, d.Range.Start.Line)
		expect.Equal(t, tt.line, d.Range.End.Line)
		expect.Equal(t, tt.start, d.Range.Start.Character)
		expect.Equal(t, tt.end, d.Range.End.Character)
		expect.Equal(t, tt.message, d.Message)
		assert.NotNil(t, d.Severity)
		expect.Equal(t, protocol.DiagnosticSeverityError, *d.Severity)
		assert.NotNil(t, d.Source)
		expect.Equal(t, "pairtree", *d.Source)
	}
}

func TestDiagnoseUTF16Columns(t *testing.T) {
	// U+1F642 takes two UTF-16 code units.
	diags := Diagnose("(🙂 b))")
	assert.Len(t, diags, 1)
	expect.Equal(t, protocol.UInteger(6), diags[0].Range.Start.Character)
	expect.Equal(t, protocol.UInteger(7), diags[0].Range.End.Character)
}

func TestHoverAt(t *testing.T) {
	text := "(a b)\n\n(a  b)\nc"

	got, ok := HoverAt(text, 0)
	expect.True(t, ok)
	expect.Equal(t, "Pair(\n  Char('a')\n  Char('b')\n)\n", got)

	got, ok = HoverAt(text, 3)
	expect.True(t, ok)
	expect.Equal(t, "Char('c')\n", got)

	for _, line := range []int{-1, 1, 2, 4} {
		_, ok := HoverAt(text, line)
		expect.False(t, ok, "line %d", line)
	}
}

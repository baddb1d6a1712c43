package lsp

import (
	"errors"
	"strings"
	"unicode/utf16"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/pairtree/syntax"
)

// Diagnose parses every non-blank line of text and reports the lines that
// fail. Blank lines separate expressions and are skipped.
func Diagnose(text string) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	for i, line := range splitLines(text) {
		if line == "" {
			continue
		}
		_, err := syntax.ParseString(line)
		if err == nil {
			continue
		}
		diagnostics = append(diagnostics, diagnostic(i, line, err))
	}
	return diagnostics
}

// HoverAt renders the tree on the given 0-based line.
func HoverAt(text string, line int) (string, bool) {
	lines := splitLines(text)
	if line < 0 || line >= len(lines) || lines[line] == "" {
		return "", false
	}
	tree, err := syntax.ParseString(lines[line])
	if err != nil {
		return "", false
	}
	return syntax.Render(tree), true
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func diagnostic(lineNo int, line string, err error) protocol.Diagnostic {
	start, end := 0, 0
	var pe *syntax.ParseError
	if errors.As(err, &pe) {
		start = utf16Column(line, pe.Offset)
		end = start
		if pe.Found != nil {
			end += utf16Len(pe.Found.Char)
		}
	}

	severity := protocol.DiagnosticSeverityError
	source := lsName
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: protocol.UInteger(lineNo), Character: protocol.UInteger(start)},
			End:   protocol.Position{Line: protocol.UInteger(lineNo), Character: protocol.UInteger(end)},
		},
		Severity: &severity,
		Source:   &source,
		Message:  err.Error(),
	}
}

// utf16Column converts a rune offset within line to UTF-16 code units.
func utf16Column(line string, runeOffset int) int {
	col, i := 0, 0
	for _, r := range line {
		if i == runeOffset {
			break
		}
		col += utf16Len(r)
		i++
	}
	return col
}

func utf16Len(r rune) int {
	if n := utf16.RuneLen(r); n > 0 {
		return n
	}
	return 1
}

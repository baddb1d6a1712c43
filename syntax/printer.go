package syntax

import (
	"fmt"
	"io"
	"strings"
)

// IndentStep is the number of spaces each nesting level adds.
const IndentStep = 2

// Render returns the indented form of n, starting at column 0.
func Render(n Node) string {
	var sb strings.Builder
	// Writes to a strings.Builder cannot fail and Parse only builds Pair and Leaf.
	_ = RenderIndent(&sb, n, 0)
	return sb.String()
}

// RenderIndent writes n to w with every line indented by level spaces.
func RenderIndent(w io.Writer, n Node, level int) error {
	prefix := strings.Repeat(" ", level)
	switch n := n.(type) {
	case Pair:
		if _, err := fmt.Fprintf(w, "%sPair(\n", prefix); err != nil {
			return err
		}
		if err := RenderIndent(w, n.Left, level+IndentStep); err != nil {
			return err
		}
		if err := RenderIndent(w, n.Right, level+IndentStep); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "%s)\n", prefix)
		return err
	case Leaf:
		_, err := fmt.Fprintf(w, "%sChar(%s)\n", prefix, quoteChar(n.Char))
		return err
	default:
		return fmt.Errorf("render: unknown node type %T", n)
	}
}

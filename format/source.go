package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/pairtree/syntax"
)

// SourceEncoder writes trees back in the surface syntax accepted by
// syntax.Parse, one expression per line.
type SourceEncoder struct {
	w io.Writer
}

func NewSourceEncoder(w io.Writer) *SourceEncoder {
	return &SourceEncoder{w: w}
}

func (e *SourceEncoder) Encode(node syntax.Node) error {
	return write(e.w, e, node)
}

func (e *SourceEncoder) MarshalNode(node syntax.Node) ([]byte, error) {
	s, err := Source(node)
	if err != nil {
		return nil, err
	}
	return []byte(s + "\n"), nil
}

// Source returns node in surface syntax without a trailing newline.
func Source(node syntax.Node) (string, error) {
	var sb strings.Builder
	if err := writeSource(&sb, node); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func writeSource(sb *strings.Builder, n syntax.Node) error {
	switch n := n.(type) {
	case syntax.Leaf:
		sb.WriteRune(n.Char)
	case syntax.Pair:
		sb.WriteByte('(')
		if err := writeSource(sb, n.Left); err != nil {
			return err
		}
		sb.WriteByte(' ')
		if err := writeSource(sb, n.Right); err != nil {
			return err
		}
		sb.WriteByte(')')
	default:
		return fmt.Errorf("encode source: unknown node type %T", n)
	}
	return nil
}

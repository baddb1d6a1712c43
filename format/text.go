package format

import (
	"bytes"
	"io"

	"github.com/dhamidi/pairtree/syntax"
)

// TextEncoder writes the indented Pair(...)/Char(...) form.
type TextEncoder struct {
	w io.Writer
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(node syntax.Node) error {
	return write(e.w, e, node)
}

func (e *TextEncoder) MarshalNode(node syntax.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := syntax.RenderIndent(&buf, node, 0); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dhamidi/pairtree/syntax"
)

type JSONEncoder struct {
	w io.Writer
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(node syntax.Node) error {
	return write(e.w, e, node)
}

func (e *JSONEncoder) MarshalNode(node syntax.Node) ([]byte, error) {
	jn, err := nodeToJSON(node)
	if err != nil {
		return nil, err
	}
	text, err := json.MarshalIndent(jn, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(text, '\n'), nil
}

type jsonNode struct {
	Kind  string    `json:"kind"`
	Char  string    `json:"char,omitempty"`
	Left  *jsonNode `json:"left,omitempty"`
	Right *jsonNode `json:"right,omitempty"`
}

func nodeToJSON(n syntax.Node) (*jsonNode, error) {
	switch n := n.(type) {
	case syntax.Leaf:
		return &jsonNode{Kind: "Char", Char: string(n.Char)}, nil
	case syntax.Pair:
		left, err := nodeToJSON(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := nodeToJSON(n.Right)
		if err != nil {
			return nil, err
		}
		return &jsonNode{Kind: "Pair", Left: left, Right: right}, nil
	default:
		return nil, fmt.Errorf("encode json: unknown node type %T", n)
	}
}

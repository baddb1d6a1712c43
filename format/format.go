// Package format encodes parsed trees for output.
package format

import (
	"fmt"
	"io"

	"github.com/dhamidi/pairtree/syntax"
)

// Encoder turns a tree into bytes. Encode writes to the encoder's writer;
// MarshalNode returns the same bytes without writing.
type Encoder interface {
	Encode(node syntax.Node) error
	MarshalNode(node syntax.Node) ([]byte, error)
}

// Names lists the encoders accepted by NewEncoder.
var Names = []string{"text", "json", "source"}

// NewEncoder returns the encoder registered under name.
func NewEncoder(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "text":
		return NewTextEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	case "source":
		return NewSourceEncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", name)
	}
}

// Marshal encodes node with the named encoder and returns the bytes.
func Marshal(name string, node syntax.Node) ([]byte, error) {
	enc, err := NewEncoder(name, io.Discard)
	if err != nil {
		return nil, err
	}
	return enc.MarshalNode(node)
}

func write(w io.Writer, enc Encoder, node syntax.Node) error {
	text, err := enc.MarshalNode(node)
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}

package syntax

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	UnexpectedToken ErrorKind = iota
	EndOfInput
	TrailingInput
	TooDeep
)

var errorKindNames = map[ErrorKind]string{
	UnexpectedToken: "UnexpectedToken",
	EndOfInput:      "EndOfInput",
	TrailingInput:   "TrailingInput",
	TooDeep:         "TooDeep",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

var (
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrEndOfInput      = errors.New("unexpected end of input")
	ErrTrailingInput   = errors.New("trailing input")
	ErrTooDeep         = errors.New("nesting too deep")
)

// ParseError describes why a line was rejected. Found is nil for
// EndOfInput. Offset is the rune index of the offending token, or the input
// length when input ended early.
type ParseError struct {
	Kind     ErrorKind
	Expected string
	Found    *Token
	Offset   int
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case EndOfInput:
		if e.Expected == "" {
			return ErrEndOfInput.Error()
		}
		return fmt.Sprintf("%s: expected %s", ErrEndOfInput, e.Expected)
	case TrailingInput:
		return fmt.Sprintf("%s at offset %d: %s", ErrTrailingInput, e.Offset, e.Found)
	case TooDeep:
		return fmt.Sprintf("%s: more than %d nested pairs at offset %d", ErrTooDeep, MaxDepth, e.Offset)
	default:
		return fmt.Sprintf("expected %s, found %s at offset %d", e.Expected, e.Found, e.Offset)
	}
}

func (e *ParseError) Unwrap() error {
	switch e.Kind {
	case EndOfInput:
		return ErrEndOfInput
	case TrailingInput:
		return ErrTrailingInput
	case TooDeep:
		return ErrTooDeep
	default:
		return ErrUnexpectedToken
	}
}

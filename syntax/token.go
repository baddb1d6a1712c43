package syntax

import "fmt"

// TokenKind identifies which of the four token classes a Token belongs to.
type TokenKind int

const (
	TokenAtom TokenKind = iota
	TokenOpen
	TokenClose
	TokenSpace
)

var tokenKindNames = map[TokenKind]string{
	TokenAtom:  "atom",
	TokenOpen:  "'('",
	TokenClose: "')'",
	TokenSpace: "' '",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Token is a single lexed character. Offset is the rune index of Char in
// the input line.
type Token struct {
	Kind   TokenKind
	Char   rune
	Offset int
}

func (t Token) String() string {
	if t.Kind == TokenAtom {
		return fmt.Sprintf("atom %s", quoteChar(t.Char))
	}
	return t.Kind.String()
}

func quoteChar(c rune) string {
	return "'" + string(c) + "'"
}

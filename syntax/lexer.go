package syntax

// Lex converts a line of text into tokens, one per rune. It never fails;
// grammar violations are reported by Parse.
func Lex(text string) []Token {
	var toks []Token
	offset := 0
	for _, ch := range text {
		toks = append(toks, Token{Kind: kindOf(ch), Char: ch, Offset: offset})
		offset++
	}
	return toks
}

func kindOf(ch rune) TokenKind {
	switch ch {
	case '(':
		return TokenOpen
	case ')':
		return TokenClose
	case ' ':
		return TokenSpace
	default:
		return TokenAtom
	}
}

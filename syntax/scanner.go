package syntax

// Scanner is a forward-only cursor over a token slice.
type Scanner struct {
	tokens []Token
	pos    int
}

// NewScanner returns a Scanner positioned at the first token.
func NewScanner(tokens []Token) *Scanner {
	return &Scanner{tokens: tokens}
}

// Peek returns the next token without consuming it.
func (s *Scanner) Peek() (Token, error) {
	if s.pos >= len(s.tokens) {
		return Token{}, s.endOfInput()
	}
	return s.tokens[s.pos], nil
}

// Take consumes and returns the next token.
func (s *Scanner) Take() (Token, error) {
	t, err := s.Peek()
	if err != nil {
		return Token{}, err
	}
	s.pos++
	return t, nil
}

// Done reports whether every token has been consumed.
func (s *Scanner) Done() bool {
	return s.pos >= len(s.tokens)
}

func (s *Scanner) endOfInput() *ParseError {
	offset := 0
	if n := len(s.tokens); n > 0 {
		offset = s.tokens[n-1].Offset + 1
	}
	return &ParseError{Kind: EndOfInput, Offset: offset}
}

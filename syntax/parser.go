package syntax

import "errors"

const exprStart = "'(' or atom"

// MaxDepth is the deepest pair nesting Parse accepts. Deeper input is
// rejected with TooDeep, which keeps the recursive parser and printers off
// the stack limit and bounds the size of the indented rendering.
const MaxDepth = 1000

type parser struct {
	scanner *Scanner
	depth   int
}

// Parse builds a tree from tokens. It fails unless the tokens form exactly
// one expression with nothing left over.
func Parse(tokens []Token) (Node, error) {
	p := &parser{scanner: NewScanner(tokens)}
	n, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.scanner.Done() {
		t, _ := p.scanner.Peek()
		return nil, &ParseError{Kind: TrailingInput, Found: &t, Offset: t.Offset}
	}
	return n, nil
}

// ParseString lexes and parses a single line.
func ParseString(text string) (Node, error) {
	return Parse(Lex(text))
}

func (p *parser) parseExpr() (Node, error) {
	t, err := p.scanner.Peek()
	if err != nil {
		return nil, expecting(err, exprStart)
	}
	switch t.Kind {
	case TokenOpen:
		if p.depth >= MaxDepth {
			return nil, &ParseError{Kind: TooDeep, Expected: exprStart, Found: &t, Offset: t.Offset}
		}
		p.depth++
		defer func() { p.depth-- }()
		return p.parsePair()
	case TokenAtom:
		return p.parseAtom()
	default:
		return nil, unexpected(exprStart, t)
	}
}

// parsePair parses '(' Expr ' ' Expr ')'.
func (p *parser) parsePair() (Node, error) {
	if _, err := p.expect(TokenOpen); err != nil {
		return nil, err
	}
	left, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenSpace); err != nil {
		return nil, err
	}
	right, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenClose); err != nil {
		return nil, err
	}
	return Pair{Left: left, Right: right}, nil
}

func (p *parser) parseAtom() (Node, error) {
	t, err := p.expect(TokenAtom)
	if err != nil {
		return nil, err
	}
	return Leaf{Char: t.Char}, nil
}

func (p *parser) expect(kind TokenKind) (Token, error) {
	t, err := p.scanner.Take()
	if err != nil {
		return Token{}, expecting(err, kind.String())
	}
	if t.Kind != kind {
		return Token{}, unexpected(kind.String(), t)
	}
	return t, nil
}

func unexpected(expected string, found Token) *ParseError {
	return &ParseError{Kind: UnexpectedToken, Expected: expected, Found: &found, Offset: found.Offset}
}

func expecting(err error, expected string) error {
	var pe *ParseError
	if errors.As(err, &pe) && pe.Expected == "" {
		pe.Expected = expected
	}
	return err
}

// Package syntax lexes, parses and renders binary-tree expressions.
//
// # Overview
//
// An expression is either a single character or a parenthesized pair of
// two sub-expressions separated by exactly one space:
//
//	a
//	(a b)
//	((a b) c)
//
// Processing is a one-way pipeline with no shared state between stages:
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│    Lex      │────▶│   Parse     │────▶│   Render    │
//	│  (tokens)   │     │   (tree)    │     │   (text)    │
//	└─────────────┘     └─────────────┘     └─────────────┘
//	                           │
//	                           ▼
//	                    ┌─────────────┐
//	                    │ ParseError  │
//	                    └─────────────┘
//
// # Grammar
//
//	Expr = Pair | atom .
//	Pair = "(" Expr " " Expr ")" .
//
// An atom is any single rune other than '(', ')' or ' '. Separators are
// matched literally, so "(a  b)" is rejected.
//
// # Errors
//
// Parsing is all-or-nothing. The first mismatch aborts with a *ParseError
// whose Kind is one of UnexpectedToken, EndOfInput, TrailingInput or
// TooDeep. The sentinels ErrUnexpectedToken, ErrEndOfInput, ErrTrailingInput
// and ErrTooDeep match with errors.Is. Pairs nest at most MaxDepth deep.
//
// # Example Usage
//
//	tree, err := syntax.Parse(syntax.Lex("(a b)"))
//	if err != nil {
//	    return err
//	}
//	fmt.Print(syntax.Render(tree))
//	// Pair(
//	//   Char('a')
//	//   Char('b')
//	// )
package syntax

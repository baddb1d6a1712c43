package syntax

import (
	"fmt"
	"strings"

	"golang.org/x/exp/ebnf"
)

// GrammarStart is the start production of Grammar.
const GrammarStart = "Expr"

// Grammar is the expression grammar in EBNF. The atom production spans every
// rune; '(', ')' and ' ' never reach it because Lex gives them their own
// token kinds.
const Grammar = `Expr = Pair | atom .
Pair = "(" Expr " " Expr ")" .
atom = "\x00" … "\U0010FFFF" .
`

// VerifyGrammar checks that Grammar is well formed and that every
// production is reachable from GrammarStart.
func VerifyGrammar() error {
	g, err := ebnf.Parse("pairtree.ebnf", strings.NewReader(Grammar))
	if err != nil {
		return fmt.Errorf("parse grammar: %w", err)
	}
	if err := ebnf.Verify(g, GrammarStart); err != nil {
		return fmt.Errorf("verify grammar: %w", err)
	}
	return nil
}

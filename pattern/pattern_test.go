package pattern

import (
	"testing"

	"github.com/skx/mariec/token"
)

func TestMatchSimple(t *testing.T) {
	toks := []token.Token{token.Lbl("x"), token.Sym(token.COLON), token.Sym(token.EQUAL)}

	pat := []Constraint{
		C(Label(), Next()),
		C(Symbol(token.COLON), Next()),
		C(Symbol(token.EQUAL), Next()),
		C(None(), Next()),
	}

	if err := Match(pat, toks); err != nil {
		t.Fatalf("expected match, got error: %s", err)
	}
}

func TestMatchMismatch(t *testing.T) {
	toks := []token.Token{token.Num(3)}

	pat := []Constraint{
		C(Label(), Next()),
	}

	if err := Match(pat, toks); err == nil {
		t.Fatalf("expected a mismatch error")
	}
}

func TestMatchCondShortFalse(t *testing.T) {
	toks := []token.Token{token.Sym(token.RBRACE)}

	pat := []Constraint{
		C(Symbol(token.RBRACE), Next()),
		C(None(), Next()),
	}

	if !MatchCond(pat, toks) {
		t.Fatalf("expected a match")
	}

	toks2 := []token.Token{token.Sym(token.RBRACE), token.Sym(token.DOT)}
	if MatchCond(pat, toks2) {
		t.Fatalf("expected no match: trailing token")
	}
}

func TestMatchBetween(t *testing.T) {
	toks := []token.Token{token.Lbl("function"), token.Lbl("add"), token.Lbl("a"), token.Lbl("b")}

	pat := []Constraint{
		C(Either(token.Lbl("function"), token.Lbl("stack_function")), Next()),
		C(Label(), Next()),
		C(Label(), Between(2, len(toks))),
	}

	if err := Match(pat, toks); err != nil {
		t.Fatalf("expected match, got error: %s", err)
	}
}

func TestMatchEnd(t *testing.T) {
	toks := []token.Token{token.Lbl("foo"), token.Sym(token.LPAREN), token.Sym(token.RPAREN)}

	pat := []Constraint{
		C(Label(), Next()),
		C(Symbol(token.LPAREN), Next()),
		C(Symbol(token.RPAREN), End(0)),
	}

	if err := Match(pat, toks); err != nil {
		t.Fatalf("expected match, got error: %s", err)
	}
}

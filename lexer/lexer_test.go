package lexer

import (
	"testing"

	"github.com/skx/mariec/token"
)

func TestBlankAndCommentLinesDropped(t *testing.T) {
	src := "\n  \n// just a comment\nx = 7\n"
	lines, err := New(src).Tokenize()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected 1 token-line, got %d: %v", len(lines), lines)
	}
	if lines[0].Line != 3 {
		t.Fatalf("expected line number 3, got %d", lines[0].Line)
	}
}

func TestInlineLine(t *testing.T) {
	lines, err := New("%   halt this").Tokenize()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected 1 token-line, got %d", len(lines))
	}
	got := lines[0].Elements
	if len(got) != 1 || got[0].Kind != token.INLINE || got[0].Inline != "   halt this" {
		t.Fatalf("unexpected inline token: %+v", got)
	}
}

func TestSymbolsAndNumbers(t *testing.T) {
	lines, err := New("x = 7").Tokenize()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	got := lines[0].Elements
	want := []token.Token{token.Lbl("x"), token.Sym(token.EQUAL), token.Num(7)}
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestCondKeywords(t *testing.T) {
	lines, err := New(".if(EQ 1 1)").Tokenize()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	got := lines[0].Elements
	if got[3].Kind != token.COND || got[3].Cond != token.EQ {
		t.Fatalf("expected condition token EQ, got %+v", got[3])
	}
}

func TestTrailingLineComment(t *testing.T) {
	lines, err := New("x = 7 // a comment").Tokenize()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	got := lines[0].Elements
	if len(got) != 3 {
		t.Fatalf("expected 3 tokens before the comment, got %d: %v", len(got), got)
	}
}

func TestLabelStopsAtSymbol(t *testing.T) {
	lines, err := New("add(a,b)").Tokenize()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	got := lines[0].Elements
	want := []token.Token{
		token.Lbl("add"), token.Sym(token.LPAREN),
		token.Lbl("a"), token.Sym(token.COMMA), token.Lbl("b"),
		token.Sym(token.RPAREN),
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestIntegerOverflow(t *testing.T) {
	_, err := New("x = 99999999999999999999").Tokenize()
	if err == nil {
		t.Fatalf("expected an overflow error")
	}
}

func TestMinusIsASymbolNotASign(t *testing.T) {
	lines, err := New(".ret(-loop)").Tokenize()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	got := lines[0].Elements
	// . ret ( - loop )
	if got[3].Kind != token.SYMBOL || got[3].Symbol != token.MINUS {
		t.Fatalf("expected a MINUS symbol token, got %+v", got[3])
	}
	if got[4].Kind != token.LABEL || got[4].Label != "loop" {
		t.Fatalf("expected a label token, got %+v", got[4])
	}
}

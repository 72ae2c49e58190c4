// Package pattern provides a small declarative combinator for asserting
// that a line of tokens matches a sequence of shape constraints, producing
// a human-readable diagnostic on mismatch.
package pattern

import (
	"fmt"
	"strings"

	"github.com/skx/mariec/token"
)

// ReqKind selects which case of TokenReq is active.
type ReqKind byte

// The kinds of single-token requirement we can express.
const (
	ReqLiteral ReqKind = iota
	ReqEither
	ReqLabel
	ReqNumber
	ReqInline
	ReqAny
	ReqNone
)

// TokenReq describes what a single token must look like.
type TokenReq struct {
	Kind ReqKind
	A, B token.Token
}

// Literal requires the token to equal exactly t.
func Literal(t token.Token) TokenReq { return TokenReq{Kind: ReqLiteral, A: t} }

// Either requires the token to equal a or b.
func Either(a, b token.Token) TokenReq { return TokenReq{Kind: ReqEither, A: a, B: b} }

// Label requires any LABEL token.
func Label() TokenReq { return TokenReq{Kind: ReqLabel} }

// Number requires any NUMBER token.
func Number() TokenReq { return TokenReq{Kind: ReqNumber} }

// Inline requires any INLINE token.
func Inline() TokenReq { return TokenReq{Kind: ReqInline} }

// Any matches any single token.
func Any() TokenReq { return TokenReq{Kind: ReqAny} }

// None asserts that there is no token at this position (end of tokens).
func None() TokenReq { return TokenReq{Kind: ReqNone} }

// Symbol is a convenience for Literal(token.Sym(s)).
func Symbol(s token.Symbol) TokenReq { return Literal(token.Sym(s)) }

// NamedLabel is a convenience for Literal(token.Lbl(s)).
func NamedLabel(s string) TokenReq { return Literal(token.Lbl(s)) }

// isOK reports whether tok satisfies this requirement.
func (r TokenReq) isOK(tok token.Token) bool {
	switch r.Kind {
	case ReqLiteral:
		return r.A == tok
	case ReqEither:
		return r.A == tok || r.B == tok
	case ReqLabel:
		return tok.Kind == token.LABEL
	case ReqNumber:
		return tok.Kind == token.NUMBER
	case ReqInline:
		return tok.Kind == token.INLINE
	case ReqAny:
		return true
	case ReqNone:
		// isOK is only ever invoked when a token exists at this index;
		// None means "no token here", so a present token always fails it.
		return false
	default:
		return false
	}
}

// String renders the requirement for diagnostics.
func (r TokenReq) String() string {
	switch r.Kind {
	case ReqLiteral:
		return fmt.Sprintf("%v", r.A)
	case ReqEither:
		return fmt.Sprintf("%v or %v", r.A, r.B)
	case ReqLabel:
		return "any label"
	case ReqNumber:
		return "any number"
	case ReqInline:
		return "any inline line"
	case ReqAny:
		return "anything"
	case ReqNone:
		return "nothing"
	default:
		return "?"
	}
}

// IdxKind selects which case of IndexReq is active.
type IdxKind byte

// The kinds of position requirement we can express.
const (
	IdxNext IdxKind = iota
	IdxBeg
	IdxEnd
	IdxBetween
)

// IndexReq describes which span of the token slice a TokenReq applies to.
type IndexReq struct {
	Kind IdxKind
	I, J int
}

// Next advances the cursor by one token from wherever the previous
// requirement left it.
func Next() IndexReq { return IndexReq{Kind: IdxNext} }

// Beg anchors at token index i from the start.
func Beg(i int) IndexReq { return IndexReq{Kind: IdxBeg, I: i} }

// End anchors at token index i from the end (0 is the last token).
func End(i int) IndexReq { return IndexReq{Kind: IdxEnd, I: i} }

// Between spans the half-open range [i, j).
func Between(i, j int) IndexReq { return IndexReq{Kind: IdxBetween, I: i, J: j} }

// String renders the position requirement for diagnostics.
func (r IndexReq) String() string {
	switch r.Kind {
	case IdxNext:
		return "next"
	case IdxBeg:
		return fmt.Sprintf("%d", r.I)
	case IdxEnd:
		return fmt.Sprintf("-%d", r.I)
	case IdxBetween:
		return fmt.Sprintf("[%d,%d)", r.I, r.J)
	default:
		return "?"
	}
}

// Constraint pairs what a token must look like with where it must be.
type Constraint struct {
	Req TokenReq
	At  IndexReq
}

// C is a short constructor for a Constraint.
func C(req TokenReq, at IndexReq) Constraint {
	return Constraint{Req: req, At: at}
}

// span resolves one Constraint's position requirement into a concrete
// [a,b) span of tokens, given the cursor left by the previous constraint.
func span(at IndexReq, next, numTokens int) (int, int) {
	switch at.Kind {
	case IdxNext:
		return next, next + 1
	case IdxBeg:
		return at.I, at.I + 1
	case IdxEnd:
		return numTokens - 1 - at.I, numTokens - at.I
	case IdxBetween:
		return at.I, at.J
	default:
		return next, next + 1
	}
}

// MatchCond is a boolean precheck: does the pattern match?
func MatchCond(pattern []Constraint, tokens []token.Token) bool {
	return Match(pattern, tokens) == nil
}

// Match asserts that tokens satisfies every constraint in pattern, in
// order, returning a formatted error naming the offending index on the
// first mismatch.
func Match(pattern []Constraint, tokens []token.Token) error {
	next := 0

	for _, c := range pattern {
		a, b := span(c.At, next, len(tokens))
		isNone := c.Req.Kind == ReqNone

		if b > len(tokens) && !isNone {
			return patternError(pattern, tokens, a)
		}

		next = b

		end := b
		if end > len(tokens) {
			end = len(tokens)
		}
		for i := a; i < end; i++ {
			if !c.Req.isOK(tokens[i]) {
				return patternError(pattern, tokens, i)
			}
		}
	}
	return nil
}

// patternError renders the pattern, the tokens it was matched against, and
// the index the mismatch was found at.
func patternError(pattern []Constraint, tokens []token.Token, badIndex int) error {
	var sb strings.Builder
	for _, c := range pattern {
		sb.WriteString(fmt.Sprintf("(%s) -> %s\n", c.At, c.Req))
	}
	return fmt.Errorf("pattern:\n%sdoesn't match tokens given:\n%v\nspecifically at index %d",
		sb.String(), tokens, badIndex)
}

package parser

import (
	"github.com/skx/mariec/diag"
	"github.com/skx/mariec/pattern"
	"github.com/skx/mariec/token"
)

// variableDecl is a single `name = number` line, not yet resolved into a
// Variable (it doesn't have an id or a scope yet).
type variableDecl struct {
	name  string
	value int32
}

// declPattern is the shape of a `name = number` declaration line.
var declPattern = []pattern.Constraint{
	pattern.C(pattern.Label(), pattern.Next()),
	pattern.C(pattern.Symbol(token.EQUAL), pattern.Next()),
	pattern.C(pattern.Number(), pattern.Next()),
	pattern.C(pattern.None(), pattern.Next()),
}

// closerPattern is a line containing only a single `*`, used to close a
// globals or locals declaration block.
var closerPattern = []pattern.Constraint{
	pattern.C(pattern.Symbol(token.ASTERISK), pattern.Next()),
	pattern.C(pattern.None(), pattern.Next()),
}

func isCloserLine(line token.TokenLine) bool {
	return pattern.MatchCond(closerPattern, line.Elements)
}

func parseVariableDecl(line token.TokenLine) (variableDecl, error) {
	if err := pattern.Match(declPattern, line.Elements); err != nil {
		return variableDecl{}, diag.New(line.Line, line.Original, err.Error())
	}
	return variableDecl{name: line.Elements[0].Label, value: line.Elements[2].Number}, nil
}

// parseVariables reads consecutive `name = number` lines starting at
// lines[0] until a line that is a single `*` token closes the section,
// returning the declarations and the number of lines consumed (including
// the closer).
func parseVariables(lines []token.TokenLine) ([]variableDecl, int, error) {
	var decls []variableDecl

	for i, line := range lines {
		if isCloserLine(line) {
			return decls, i + 1, nil
		}
		decl, err := parseVariableDecl(line)
		if err != nil {
			return nil, 0, err
		}
		decls = append(decls, decl)
	}

	last := token.TokenLine{Line: 0}
	if len(lines) > 0 {
		last = lines[len(lines)-1]
	}
	return nil, 0, diag.New(last.Line, last.Original, "variable declaration section was not closed with '*'")
}

package parser

import (
	"github.com/samber/lo"

	"github.com/skx/mariec/diag"
	"github.com/skx/mariec/pattern"
	"github.com/skx/mariec/token"
)

// funcHeader is a parsed, not-yet-registered function header.
type funcHeader struct {
	name    string
	args    []string
	isStack bool
}

// headerPattern builds the shape of `function name [arg0 arg1 ...]` or
// `stack_function name [arg0 ...]` for a line of the given length: a
// leading keyword, a name label, and zero or more argument labels filling
// out the rest of the line.
func headerPattern(numTokens int) []pattern.Constraint {
	return []pattern.Constraint{
		pattern.C(pattern.Either(token.Lbl("function"), token.Lbl("stack_function")), pattern.Next()),
		pattern.C(pattern.Label(), pattern.Next()),
		pattern.C(pattern.Label(), pattern.Between(2, numTokens)),
	}
}

func parseFunctionHeader(line token.TokenLine) (funcHeader, error) {
	if len(line.Elements) < 2 {
		return funcHeader{}, diag.New(line.Line, line.Original,
			"function declaration needs at least a keyword and a name")
	}
	if err := pattern.Match(headerPattern(len(line.Elements)), line.Elements); err != nil {
		return funcHeader{}, diag.New(line.Line, line.Original, err.Error())
	}

	return funcHeader{
		name:    line.Elements[1].Label,
		isStack: line.Elements[0].Label == "stack_function",
		args:    lo.Map(line.Elements[2:], func(t token.Token, _ int) string { return t.Label }),
	}, nil
}

// parseFunctionDeclaration parses one function from its header line
// onward: the header itself, then a `name = number *` locals block.
// It returns the new function's id and the number of lines consumed.
func parseFunctionDeclaration(lines []token.TokenLine, tree *ProgramTree) (FunctionId, int, error) {
	header, err := parseFunctionHeader(lines[0])
	if err != nil {
		return 0, 0, err
	}

	if _, exists := tree.FindFuncByName(header.name); exists {
		return 0, 0, diag.Newf(lines[0].Line, lines[0].Original,
			"function %q is already declared", header.name)
	}

	id := tree.pushFunction(header.name, header.args, header.isStack)

	if len(lines) < 2 {
		return 0, 0, diag.Newf(lines[0].Line, lines[0].Original,
			"function %q has no locals-closing line", header.name)
	}

	decls, consumedLocals, err := parseVariables(lines[1:])
	if err != nil {
		return 0, 0, err
	}
	tree.pushLocals(id, decls)

	return id, 1 + consumedLocals, nil
}

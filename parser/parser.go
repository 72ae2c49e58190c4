package parser

import (
	"github.com/skx/mariec/diag"
	"github.com/skx/mariec/token"
)

// Parse consumes an entire program's token lines and produces a fully
// resolved ProgramTree, per spec §4.3's three phases.
func Parse(lines []token.TokenLine) (*ProgramTree, error) {
	globalDecls, consumed, err := parseVariables(lines)
	if err != nil {
		return nil, err
	}
	lines = lines[consumed:]

	tree := newProgramTree()
	tree.pushGlobals([]variableDecl{
		{name: "_temp", value: TempDefault},
		{name: "return", value: ReturnDefault},
		{name: "return_saver", value: ReturnSaverDefault},
	}, false)
	tree.pushGlobals(globalDecls, false)

	for len(lines) > 0 {
		consumed, err := parseNextFunction(lines, tree)
		if err != nil {
			return nil, err
		}
		lines = lines[consumed:]
	}

	if err := finalize(tree); err != nil {
		return nil, err
	}
	return tree, nil
}

// parseNextFunction parses one function declaration plus body starting at
// lines[0], installing it into tree, and returns the number of lines
// consumed.
func parseNextFunction(lines []token.TokenLine, tree *ProgramTree) (int, error) {
	id, consumed, err := parseFunctionDeclaration(lines, tree)
	if err != nil {
		return 0, err
	}
	lines = lines[consumed:]

	fn := tree.GetFunc(id)
	ctx := newBuildingContext(fn, tree)

	body, bodyConsumed, err := parseBlock(lines, ctx)
	if err != nil {
		return 0, err
	}
	// A block with zero statements leaves body nil, which is exactly the
	// signal Function.IsGhost checks for.
	fn.Content = body

	for n := range ctx.constants {
		tree.addConstant(n)
	}
	for _, v := range fn.Locals[fn.Args:] {
		tree.addConstant(v.Default)
	}

	if fn.IsStack {
		tree.Features |= FeatureStackFunctions
	}

	return consumed + bodyConsumed, nil
}

// finalize checks the program-wide invariants that can only be verified
// once every function has been parsed: main's shape, and (if the program
// uses stack functions) the exact signatures of push/pop/stack_return.
func finalize(tree *ProgramTree) error {
	main, ok := tree.FindFuncByName("main")
	if !ok {
		return diag.New(0, "", "program has no 'main' function")
	}
	if main.IsStack {
		return diag.New(0, "", "'main' may not be a stack function")
	}
	if main.Args != 0 {
		return diag.New(0, "", "'main' must take zero arguments")
	}

	if !tree.UsesStackFunctions() {
		return nil
	}

	requirements := []struct {
		name string
		args uint
	}{
		{"push", 1},
		{"pop", 0},
		{"stack_return", 1},
	}
	for _, req := range requirements {
		fn, ok := tree.FindFuncByName(req.name)
		if !ok {
			return diag.Newf(0, "", "program uses stack functions but defines no %q helper", req.name)
		}
		if fn.IsStack {
			return diag.Newf(0, "", "helper %q may not itself be a stack function", req.name)
		}
		if fn.Args != req.args {
			return diag.Newf(0, "", "helper %q must take exactly %d argument(s)", req.name, req.args)
		}
	}
	return nil
}

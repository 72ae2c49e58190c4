package parser

import (
	"github.com/skx/mariec/diag"
	"github.com/skx/mariec/pattern"
	"github.com/skx/mariec/token"
)

// parseFunctionCall parses `[name =] name(args...)` from a single line's
// tokens, already known to start with a label (or the assignment prefix).
func parseFunctionCall(tokens []token.Token, ctx *buildingContext, line uint, original string) (FunctionCall, error) {
	var assignment *VariableId

	if pattern.MatchCond([]pattern.Constraint{
		pattern.C(pattern.Label(), pattern.Next()),
		pattern.C(pattern.Symbol(token.EQUAL), pattern.Next()),
	}, tokens) {
		id, err := ctx.mustResolveVariable(tokens[0].Label, line, original)
		if err != nil {
			return FunctionCall{}, err
		}
		assignment = &id
		tokens = tokens[2:]
	}

	callHead := []pattern.Constraint{
		pattern.C(pattern.Label(), pattern.Next()),
		pattern.C(pattern.Symbol(token.LPAREN), pattern.Next()),
		pattern.C(pattern.Symbol(token.RPAREN), pattern.End(0)),
	}
	if err := pattern.Match(callHead, tokens); err != nil {
		return FunctionCall{}, ctx.annotate(diag.New(line, original, err.Error()))
	}

	name := tokens[0].Label
	callee, ok := ctx.tree.FindFuncByName(name)
	if !ok {
		return FunctionCall{}, ctx.annotate(diag.Newf(line, original, "function %q not found", name))
	}
	if callee.IsStack && ctx.fn.Name != "main" && !ctx.fn.IsStack {
		return FunctionCall{}, ctx.annotate(diag.Newf(line, original,
			"stack function %q may only be called from main or another stack function", name))
	}

	args, err := parseCallArguments(tokens[2:], ctx, line, original)
	if err != nil {
		return FunctionCall{}, err
	}
	if uint(len(args)) != callee.Args {
		return FunctionCall{}, ctx.annotate(diag.Newf(line, original,
			"function %q takes %d argument(s) but %d were given", name, callee.Args, len(args)))
	}

	return FunctionCall{
		FuncID:     callee.ID,
		Arguments:  args,
		Assignment: assignment,
		From:       ctx.fn.ID,
	}, nil
}

// assignHead is the shape of `name : = <arg>`.
var assignHead = []pattern.Constraint{
	pattern.C(pattern.Label(), pattern.Next()),
	pattern.C(pattern.Symbol(token.COLON), pattern.Next()),
	pattern.C(pattern.Symbol(token.EQUAL), pattern.Next()),
}

// parseSimpleStatement tries each one-line statement shape in turn,
// returning ok=false (no error) when none apply, leaving the line for
// advanced-statement parsing.
func parseSimpleStatement(line token.TokenLine, ctx *buildingContext) (Statement, bool, error) {
	toks := line.Elements
	if len(toks) == 0 {
		return Statement{}, false, nil
	}

	if toks[0].Kind == token.INLINE {
		return Statement{Kind: StmtInline, Inline: toks[0].Inline}, true, nil
	}

	if toks[0].Kind != token.LABEL {
		return Statement{}, false, nil
	}

	if pattern.MatchCond(assignHead, toks) {
		left, err := ctx.mustResolveVariable(toks[0].Label, line.Line, line.Original)
		if err != nil {
			return Statement{}, false, err
		}
		arg, consumed, ok, err := parseArgumentNext(toks[3:], ctx, line.Line, line.Original)
		if err != nil {
			return Statement{}, false, err
		}
		if !ok || consumed != len(toks[3:]) {
			return Statement{}, false, ctx.annotate(diag.New(line.Line, line.Original,
				"assignment takes exactly one argument"))
		}
		if arg.Kind == ArgLiteral {
			ctx.recordLiteral(arg.Literal)
		}
		return Statement{Kind: StmtAssign, AssignLeft: left, AssignRight: arg}, true, nil
	}

	call, err := parseFunctionCall(toks, ctx, line.Line, line.Original)
	if err != nil {
		return Statement{}, false, err
	}
	return Statement{Kind: StmtCall, Call: call}, true, nil
}

// advancedHead is the shape of `.name(...)`, an arbitrary number of
// trailing argument tokens ending at the line's last token, a `)`.
var advancedHead = []pattern.Constraint{
	pattern.C(pattern.Symbol(token.DOT), pattern.Next()),
	pattern.C(pattern.Label(), pattern.Next()),
	pattern.C(pattern.Symbol(token.LPAREN), pattern.Next()),
	pattern.C(pattern.Symbol(token.RPAREN), pattern.End(0)),
}

// parseAdvancedStatement parses a (possibly multi-line) advanced
// statement starting at lines[0]. It returns ok=false, 0, nil when
// lines[0] isn't shaped like one at all.
func parseAdvancedStatement(lines []token.TokenLine, ctx *buildingContext) (Statement, int, bool, error) {
	if len(lines) == 0 {
		return Statement{}, 0, false, nil
	}
	head := lines[0]
	if !pattern.MatchCond(advancedHead, head.Elements) {
		return Statement{}, 0, false, nil
	}

	name := head.Elements[1].Label
	switch name {
	case "ret":
		n := len(head.Elements)
		args, err := parseCallArguments(head.Elements[3:n-1], ctx, head.Line, head.Original)
		if err != nil {
			return Statement{}, 0, false, err
		}
		if len(args) > 1 {
			return Statement{}, 0, false, ctx.annotate(diag.New(head.Line, head.Original,
				"'ret' accepts zero or one argument"))
		}
		var retVal *ArgumentCallArg
		if len(args) == 1 {
			retVal = &args[0]
		}
		return Statement{Kind: StmtRet, RetVal: retVal, RetFn: ctx.fn.ID}, 1, true, nil

	case "flag":
		if len(head.Elements) != 5 || head.Elements[3].Kind != token.LABEL {
			return Statement{}, 0, false, ctx.annotate(diag.New(head.Line, head.Original,
				"'flag' takes exactly one label argument"))
		}
		return Statement{Kind: StmtFlag, FlagLabel: head.Elements[3].Label}, 1, true, nil

	case "if":
		return parseIfStatement(lines, ctx)

	default:
		return Statement{}, 0, false, ctx.annotate(diag.Newf(head.Line, head.Original,
			"unknown advanced statement %q", name))
	}
}

// parseIfStatement parses `.if(COND a b){...}.else{...}` (or `.noelse`).
func parseIfStatement(lines []token.TokenLine, ctx *buildingContext) (Statement, int, bool, error) {
	head := lines[0]
	n := len(head.Elements)
	if n < 5 || head.Elements[3].Kind != token.COND {
		return Statement{}, 0, false, ctx.annotate(diag.New(head.Line, head.Original,
			"'if' needs a condition keyword (EQ, LESS or MORE) as its first argument"))
	}
	cond := head.Elements[3].Cond

	args, err := parseCallArguments(head.Elements[4:n-1], ctx, head.Line, head.Original)
	if err != nil {
		return Statement{}, 0, false, err
	}
	if len(args) != 2 {
		return Statement{}, 0, false, ctx.annotate(diag.New(head.Line, head.Original,
			"'if' takes exactly two arguments to compare"))
	}

	pop := ctx.enterScope("an 'if' block", head.Line)
	defer pop()

	ifTrue, consumedTrue, err := parseBlock(lines[1:], ctx)
	if err != nil {
		return Statement{}, 0, false, err
	}
	i := 1 + consumedTrue

	if i >= len(lines) {
		return Statement{}, 0, false, ctx.annotate(diag.New(head.Line, head.Original,
			"'if' block needs a trailing '.else' or '.noelse' line"))
	}
	trailer := lines[i]

	noElsePattern := []pattern.Constraint{
		pattern.C(pattern.Symbol(token.DOT), pattern.Next()),
		pattern.C(pattern.NamedLabel("noelse"), pattern.Next()),
		pattern.C(pattern.None(), pattern.Next()),
	}
	elsePattern := []pattern.Constraint{
		pattern.C(pattern.Symbol(token.DOT), pattern.Next()),
		pattern.C(pattern.NamedLabel("else"), pattern.Next()),
		pattern.C(pattern.None(), pattern.Next()),
	}

	switch {
	case pattern.MatchCond(noElsePattern, trailer.Elements):
		return Statement{
			Kind: StmtIf,
			If:   &If{A: args[0], B: args[1], Cond: cond, IfTrue: ifTrue, HasElse: false},
		}, i + 1, true, nil

	case pattern.MatchCond(elsePattern, trailer.Elements):
		ifFalse, consumedFalse, err := parseBlock(lines[i+1:], ctx)
		if err != nil {
			return Statement{}, 0, false, err
		}
		return Statement{
			Kind: StmtIf,
			If:   &If{A: args[0], B: args[1], Cond: cond, IfTrue: ifTrue, IfFalse: ifFalse, HasElse: true},
		}, i + 1 + consumedFalse, true, nil

	default:
		return Statement{}, 0, false, ctx.annotate(diag.New(trailer.Line, trailer.Original,
			"expected '.else' or '.noelse'"))
	}
}

// closeBracePattern matches a line containing only `}`.
var closeBracePattern = []pattern.Constraint{
	pattern.C(pattern.Symbol(token.RBRACE), pattern.Next()),
	pattern.C(pattern.None(), pattern.Next()),
}

// openBracePattern matches a line containing only `{`.
var openBracePattern = []pattern.Constraint{
	pattern.C(pattern.Symbol(token.LBRACE), pattern.Next()),
	pattern.C(pattern.None(), pattern.Next()),
}

// parseBlock parses a `{` ... `}` block starting at lines[0], returning
// its statements and the number of lines consumed (including both
// braces).
func parseBlock(lines []token.TokenLine, ctx *buildingContext) ([]Statement, int, error) {
	if len(lines) == 0 || !pattern.MatchCond(openBracePattern, lines[0].Elements) {
		first := token.TokenLine{}
		if len(lines) > 0 {
			first = lines[0]
		}
		return nil, 0, ctx.annotate(diag.New(first.Line, first.Original, "expected a block opened with '{'"))
	}

	var statements []Statement
	i := 1

	for i < len(lines) {
		line := lines[i]
		if pattern.MatchCond(closeBracePattern, line.Elements) {
			return statements, i + 1, nil
		}

		stmt, ok, err := parseSimpleStatement(line, ctx)
		if err != nil {
			return nil, 0, err
		}
		if ok {
			statements = append(statements, stmt)
			i++
			continue
		}

		adv, consumed, ok, err := parseAdvancedStatement(lines[i:], ctx)
		if err != nil {
			return nil, 0, err
		}
		if ok {
			statements = append(statements, adv)
			i += consumed
			continue
		}

		return nil, 0, ctx.annotate(diag.New(line.Line, line.Original, "expected a statement"))
	}

	last := lines[len(lines)-1]
	return nil, 0, ctx.annotate(diag.New(last.Line, last.Original, "block was not closed with '}'"))
}

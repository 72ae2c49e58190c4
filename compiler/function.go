package compiler

import (
	"github.com/skx/mariec/asmop"
	"github.com/skx/mariec/parser"
)

// compileFunction lowers one function: its entry cell, a reset of its
// non-argument locals to their declared defaults, (for stack functions)
// popping its arguments off the user stack in reverse, its body, and its
// epilogue. A ghost function (no body in source) compiles to nothing.
func compileFunction(id parser.FunctionId, ctx *context, lineOffset int) string {
	fn := ctx.tree.GetFunc(id)
	if fn.IsGhost() {
		return ""
	}

	var b lineBuilder
	b.pushLineSmart(asmop.DecCell(realFuncName(fn), 0))

	for i := fn.Args; i < uint(len(fn.Locals)); i++ {
		v := &fn.Locals[i]
		b.pushLineSmart(getSetVarToNumText(v, v.Default, ctx.tree))
	}

	if fn.IsStack {
		popFn := ctx.tree.MustFindFuncByName("pop")
		for i := int(fn.Args) - 1; i >= 0; i-- {
			arg := &fn.Locals[i]
			popCall := &parser.FunctionCall{FuncID: popFn.ID, Assignment: &arg.ID, From: fn.ID}
			b.pushLineSmart(getNormalFunctionCallText(popCall, ctx))
		}
	}

	if len(fn.Content) > 0 {
		b.pushLineSmart(compileBlock(fn.Content, ctx, b.count()+lineOffset, fn.ID))
	}

	if fn.IsStack {
		popFn := ctx.tree.MustFindFuncByName("pop")
		popCall := &parser.FunctionCall{FuncID: popFn.ID, From: fn.ID}
		b.pushLineSmart(getNormalFunctionCallText(popCall, ctx))
		b.pushLineSmart(asmop.Op(asmop.JUMPI, "var_return"))
	} else {
		b.pushLineSmart(getFunctionReturnText(fn, nil, ctx))
	}

	return b.collapseFlat()
}

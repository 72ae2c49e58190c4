package compiler

import (
	"fmt"
	"strings"

	"github.com/skx/mariec/asmop"
	"github.com/skx/mariec/parser"
	"github.com/skx/mariec/token"
)

// getFunctionReturnText renders a function's return sequence: for a
// normal function, an optional load of the return value followed by a
// store into `return` and a `jumpI` back through the function's own
// entry cell (which holds the caller's return address). For a stack
// function, a call to the user's `stack_return` helper instead.
func getFunctionReturnText(fn *parser.Function, retVal *parser.ArgumentCallArg, ctx *context) string {
	if !fn.IsStack {
		loadOp := ""
		if retVal != nil {
			loadOp = getLoadFromArgText(*retVal, ctx) + "\n"
		}
		storeOp := getStoreText(ctx.tree.GetReturnVar().ID, ctx)
		return fmt.Sprintf("%s%s\n%s", loadOp, storeOp, asmop.Op(asmop.JUMPI, realFuncName(fn)))
	}

	stackReturn := ctx.tree.MustFindFuncByName("stack_return")
	var args []parser.ArgumentCallArg
	if retVal != nil {
		args = []parser.ArgumentCallArg{*retVal}
	}
	call := &parser.FunctionCall{FuncID: stackReturn.ID, Arguments: args, From: fn.ID}
	return getNormalFunctionCallText(call, ctx)
}

// compileSimple lowers the four statement kinds that always produce a
// single piece of straight-line text; ok is false for Flag/If and for
// calls to stack functions, which compileBlock handles instead.
func compileSimple(st parser.Statement, ctx *context) (string, bool) {
	switch st.Kind {
	case parser.StmtRet:
		fn := ctx.tree.GetFunc(st.RetFn)
		return getFunctionReturnText(fn, st.RetVal, ctx), true

	case parser.StmtInline:
		return strings.TrimSpace(st.Inline), true

	case parser.StmtCall:
		fn := ctx.tree.GetFunc(st.Call.FuncID)
		if fn.IsStack {
			return "", false // needs the line offset; handled by the caller
		}
		return getNormalFunctionCallText(&st.Call, ctx), true

	case parser.StmtAssign:
		return getSetFromArg(ctx.tree.GetVar(st.AssignLeft), st.AssignRight, ctx), true

	default:
		return "", false
	}
}

// condOperand maps a source condition keyword to its skipcond operand.
func condOperand(cond token.CondKind) string {
	switch cond {
	case token.EQ:
		return asmop.SkipcondFor(asmop.CondEq)
	case token.LESS:
		return asmop.SkipcondFor(asmop.CondLess)
	default:
		return asmop.SkipcondFor(asmop.CondMore)
	}
}

// compileIf lowers an if-statement. Since the machine has no conditional
// branch beyond `skipcond` (skip the next instruction if the
// accumulator satisfies the condition against zero), the generated code
// computes `a - b` into the accumulator, then uses skipcond plus two
// unconditional jumps to pick a branch: both branches restore the
// temp-variable's value to avoid an uninitialized skip side effect, and
// converge on a single `end_if_<counter>` label.
func compileIf(ifStmt *parser.If, ctx *context, lineOffset int, fnID parser.FunctionId) string {
	var b lineBuilder

	hasElse := ifStmt.HasElse
	counter := ctx.pushCounter()

	jumpEndIf := fmt.Sprintf("jump end_if_%d", counter)
	jumpElse := fmt.Sprintf("jump else_%d", counter)
	jumpIfNot := jumpEndIf
	if hasElse {
		jumpIfNot = jumpElse
	}
	jumpIfOk := fmt.Sprintf("jump if_%d", counter)

	b.pushLineSmart(getSetFromArg(ctx.tree.GetTempVar(), ifStmt.B, ctx))
	b.pushLineSmart(getLoadFromArgText(ifStmt.A, ctx))
	b.pushLineSmart(asmop.Op(asmop.SUBT, "var__temp"))
	b.pushLineSmart(asmop.Op(asmop.SKIPCOND, condOperand(ifStmt.Cond)))
	b.pushLineSmart(jumpIfNot)
	b.pushLineSmart(jumpIfOk)

	b.pushLineSmart(asmop.Line(fmt.Sprintf("if_%d", counter), asmop.Op(asmop.STORE, "var__temp")))
	b.pushLineSmart(compileBlock(ifStmt.IfTrue, ctx, lineOffset+b.count(), fnID))

	if hasElse {
		b.pushLineSmart(jumpEndIf)
		b.pushLineSmart(asmop.Line(fmt.Sprintf("else_%d", counter), asmop.Op(asmop.STORE, "var__temp")))
		b.pushLineSmart(compileBlock(ifStmt.IfFalse, ctx, lineOffset+b.count(), fnID))
	}

	b.pushLineSmart(asmop.Line(fmt.Sprintf("end_if_%d", counter), asmop.Op(asmop.STORE, "var__temp")))
	return b.collapseFlat()
}

// compileBlock lowers a sequence of statements in order, threading the
// absolute line offset through so stack-call and if back-patches record
// the correct resume line.
func compileBlock(block []parser.Statement, ctx *context, lineOffset int, fnID parser.FunctionId) string {
	var b lineBuilder

	for _, st := range block {
		switch st.Kind {
		case parser.StmtFlag:
			fn := ctx.tree.GetFunc(fnID)
			ctx.flags = append(ctx.flags, flagEntry{label: fn.Name + "_" + st.FlagLabel, line: b.count() + lineOffset})
			continue

		case parser.StmtIf:
			b.pushLineSmart(compileIf(st.If, ctx, b.count()+lineOffset, fnID))
			continue

		case parser.StmtCall:
			fn := ctx.tree.GetFunc(st.Call.FuncID)
			if fn.IsStack {
				b.pushLineSmart(getStackFunctionCallText(&st.Call, ctx, b.count()+lineOffset))
				continue
			}
		}

		if text, ok := compileSimple(st, ctx); ok {
			b.pushLineSmart(text)
		}
	}
	return b.collapseFlat()
}

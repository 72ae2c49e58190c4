package compiler

import (
	"fmt"

	"github.com/skx/mariec/asmop"
	"github.com/skx/mariec/parser"
)

// varText renders a variable's cell label: `var_<name>` for a global,
// `var_<fn>_<name>` for a local.
func varText(v *parser.Variable, tree *parser.ProgramTree) string {
	if v.ID.Kind == parser.VarGlobal {
		return "var_" + v.Name
	}
	return "var_" + tree.GetFunc(v.ID.Owner).Name + "_" + v.Name
}

// constText renders an integer literal's cell label.
func constText(n int32) string {
	return fmt.Sprintf("const_%d", n)
}

// varDeclText renders a variable's full data-cell line.
func varDeclText(v *parser.Variable, tree *parser.ProgramTree) string {
	return asmop.DecCell(varText(v, tree), v.Default)
}

// constDeclText renders a constant's full data-cell line.
func constDeclText(n int32) string {
	return asmop.DecCell(constText(n), n)
}

// realFuncName renders a function's entry-cell label, which doubles as
// its return-address slot for `jns`.
func realFuncName(fn *parser.Function) string {
	return "function_" + fn.Name
}

// getLoadFromArgText renders the `load`/`loadi` instruction that brings
// an argument's value into the accumulator.
func getLoadFromArgText(arg parser.ArgumentCallArg, ctx *context) string {
	switch arg.Kind {
	case parser.ArgLiteral:
		return asmop.Op(asmop.LOAD, constText(arg.Literal))
	case parser.ArgReference:
		return asmop.Op(asmop.LOAD, varText(ctx.tree.GetVar(arg.VarID), ctx.tree))
	case parser.ArgDeref:
		return asmop.Op(asmop.LOADI, varText(ctx.tree.GetVar(arg.VarID), ctx.tree))
	case parser.ArgGetAddress:
		return asmop.Op(asmop.LOAD, constText(int32(ctx.addressOf[arg.VarID])))
	case parser.ArgFlag:
		fn := ctx.tree.GetFunc(arg.FlagFunc)
		return asmop.Op(asmop.LOAD, "flag_"+fn.Name+"_"+arg.FlagLabel)
	default:
		return ""
	}
}

// getStoreText renders the `store` instruction for a variable id.
func getStoreText(id parser.VariableId, ctx *context) string {
	return asmop.Op(asmop.STORE, varText(ctx.tree.GetVar(id), ctx.tree))
}

// getSetFromArg renders a load-then-store pair copying an argument's
// value into a variable.
func getSetFromArg(v *parser.Variable, arg parser.ArgumentCallArg, ctx *context) string {
	return getLoadFromArgText(arg, ctx) + "\n" + asmop.Op(asmop.STORE, varText(v, ctx.tree))
}

// getSetVarToNumText renders a load-then-store pair resetting a variable
// to a literal default.
func getSetVarToNumText(v *parser.Variable, value int32, tree *parser.ProgramTree) string {
	return asmop.Op(asmop.LOAD, constText(value)) + "\n" + asmop.Op(asmop.STORE, varText(v, tree))
}

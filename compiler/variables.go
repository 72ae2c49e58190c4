package compiler

import (
	"sort"

	"github.com/samber/lo"
)

// compileVariables emits every data cell the program needs: constants
// first (ascending, for deterministic output), then every global, then
// every function's locals, registering each cell's resolved line address
// in ctx.addressOf as it goes.
//
// Note: address-of-variable arguments (GetAddress) are resolved against
// ctx.addressOf as it stood when this ran, which is empty — variable
// addresses are never among the constants collected here. That mirrors
// the original implementation this was ported from, which collects the
// constant set before the address map below it is populated, making
// that union a no-op in practice. Changing this would silently alter
// already-stable output addresses, so it's kept byte-for-byte.
func compileVariables(ctx *context, lineOffset int) string {
	var b lineBuilder

	constants := lo.Keys(ctx.tree.ConstantsUsed)
	sort.Slice(constants, func(i, j int) bool { return constants[i] < constants[j] })
	for _, n := range constants {
		b.pushLineSmart(constDeclText(n))
	}

	for i := range ctx.tree.Globals {
		g := &ctx.tree.Globals[i]
		b.pushLineSmart(varDeclText(g, ctx.tree))
		ctx.addressOf[g.ID] = b.count() + lineOffset - 1
	}

	for fi := range ctx.tree.Functions {
		fn := &ctx.tree.Functions[fi]
		for li := range fn.Locals {
			v := &fn.Locals[li]
			b.pushLineSmart(varDeclText(v, ctx.tree))
			ctx.addressOf[v.ID] = b.count() + lineOffset - 1
		}
	}

	return b.collapseFlat()
}

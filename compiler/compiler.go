// Package compiler lowers a resolved program tree to MARIE-style
// assembly text. The entry point, Compile, assumes its input came from
// a successful parser.Parse call: every invariant the parser establishes
// (arity, name resolution, stack-function signatures) is assumed to
// hold, and this package never returns an error — a panic here means
// the tree violates an invariant the parser should have caught.
package compiler

import (
	"fmt"

	"github.com/skx/mariec/asmop"
	"github.com/skx/mariec/parser"
)

// Compile lowers tree into a complete MARIE-style assembly program: a
// jump to main, the halt cell, every variable and constant data cell,
// every function's body, and finally the back-patched flag and address
// cells that can only be resolved once every preceding line has been
// emitted.
func Compile(tree *parser.ProgramTree) string {
	ctx := newContext(tree)

	var b lineBuilder
	b.pushLineSmart(asmop.Op(asmop.JNS, "function_main"))
	b.pushLineSmart(string(asmop.HALT))

	b.pushLineSmart(compileVariables(ctx, b.count()))

	for i := range tree.Functions {
		b.pushLineSmart(compileFunction(tree.Functions[i].ID, ctx, b.count()))
	}

	b.pushLineSmart(compileBackpatchTail(ctx))

	return b.collapseFlat()
}

// compileBackpatchTail emits the flag_* and addr_* cells recorded during
// code generation, now that every line number they reference is known.
func compileBackpatchTail(ctx *context) string {
	var b lineBuilder

	for _, f := range ctx.flags {
		b.pushLineSmart(asmop.DecCell(fmt.Sprintf("flag_%s", f.label), int32(f.line)))
	}
	for _, a := range ctx.addrs {
		b.pushLineSmart(asmop.DecCell(fmt.Sprintf("addr_%d", a.counter), int32(a.line)))
	}

	return b.collapseFlat()
}

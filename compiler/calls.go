package compiler

import (
	"fmt"

	"github.com/skx/mariec/asmop"
	"github.com/skx/mariec/parser"
)

// getNormalFunctionCallText renders a call to a non-stack function: each
// argument is copied into the callee's corresponding local, then control
// transfers with `jns`, then (if the call's result is assigned) the
// callee's return value is stored.
func getNormalFunctionCallText(call *parser.FunctionCall, ctx *context) string {
	var b lineBuilder
	fn := ctx.tree.GetFunc(call.FuncID)

	for i, arg := range call.Arguments {
		b.pushLineSmart(getSetFromArg(&fn.Locals[i], arg, ctx))
	}
	b.pushLineSmart(asmop.Op(asmop.JNS, realFuncName(fn)))
	if call.Assignment != nil {
		b.pushLineSmart(getStoreText(*call.Assignment, ctx))
	}
	return b.collapseFlat()
}

// getStackFunctionCallText renders a call to a stack function: the
// calling convention spelled out in spec §4.4 ("Calling convention").
// Since the target machine has no call stack, reentrancy for recursive
// stack functions is faked by round-tripping through the user-supplied
// push/pop/stack_return primitives: the caller saves its own locals (if
// it is itself a stack function), pushes a return-address sentinel and
// the call's arguments, transfers control, then restores its locals and
// the real return value in the opposite order.
func getStackFunctionCallText(masterCall *parser.FunctionCall, ctx *context, lineOffset int) string {
	counter := ctx.pushCounter()

	pushFn := ctx.tree.MustFindFuncByName("push")
	argName := "var_push_" + pushFn.Locals[0].Name
	popFn := ctx.tree.MustFindFuncByName("pop")

	from := ctx.tree.GetFunc(masterCall.From)
	fromStack := from.IsStack

	var b lineBuilder

	if fromStack {
		for i := range from.Locals {
			arg := &from.Locals[i]
			pushCall := &parser.FunctionCall{
				FuncID:    pushFn.ID,
				Arguments: []parser.ArgumentCallArg{{Kind: parser.ArgReference, VarID: arg.ID}},
				From:      from.ID,
			}
			b.pushLineSmart(getNormalFunctionCallText(pushCall, ctx))
		}
	}

	addr := fmt.Sprintf("addr_%d", counter)
	b.pushLineSmart(asmop.Op(asmop.LOAD, addr))
	b.pushLineSmart(asmop.Op(asmop.STORE, argName))
	b.pushLineSmart(asmop.Op(asmop.JNS, "function_push"))

	for _, el := range masterCall.Arguments {
		pushCall := &parser.FunctionCall{
			FuncID:    pushFn.ID,
			Arguments: []parser.ArgumentCallArg{el},
			From:      from.ID,
		}
		b.pushLineSmart(getNormalFunctionCallText(pushCall, ctx))
	}

	callee := ctx.tree.GetFunc(masterCall.FuncID)
	b.pushLineSmart(asmop.Op(asmop.JNS, realFuncName(callee)))
	ctx.addrs = append(ctx.addrs, addrEntry{counter: counter, line: b.count() + lineOffset})

	b.pushLineSmart(asmop.Op(asmop.LOAD, "var_return") + "\n" + asmop.Op(asmop.STORE, "var_return_saver"))

	if fromStack {
		for i := len(from.Locals) - 1; i >= 0; i-- {
			arg := &from.Locals[i]
			popCall := &parser.FunctionCall{
				FuncID:     popFn.ID,
				Assignment: &arg.ID,
				From:       from.ID,
			}
			b.pushLineSmart(getNormalFunctionCallText(popCall, ctx))
		}
	}

	b.pushLineSmart(asmop.Op(asmop.LOAD, "var_return_saver") + "\n" + asmop.Op(asmop.STORE, "var_return"))

	if masterCall.Assignment != nil {
		b.pushLineSmart(getStoreText(*masterCall.Assignment, ctx))
	}
	return b.collapseFlat()
}

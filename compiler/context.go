// Package compiler lowers a resolved parser.ProgramTree into MARIE-style
// assembly text: variable and constant data cells, a prologue/epilogue
// around every function body, and a back-patched tail of flag and
// address cells resolved only once every line number is known.
package compiler

import "github.com/skx/mariec/parser"

// flagEntry is a pending `flag_<label>, DEC <line>` cell: the position a
// `.flag(...)` statement occupied, not yet known to be correct until the
// whole program has been emitted.
type flagEntry struct {
	label string
	line  int
}

// addrEntry is a pending `addr_<counter>, DEC <line>` cell: the line a
// stack-function call should resume at once its callee's stack dance
// returns control.
type addrEntry struct {
	counter int
	line    int
}

// context carries the state threaded through a single compilation: the
// tree being lowered, each variable's resolved cell address (needed by
// GetAddress arguments), a counter minting unique per-call-site ids, and
// the flag/addr back-patch tables.
type context struct {
	tree      *parser.ProgramTree
	addressOf map[parser.VariableId]int
	counter   int
	flags     []flagEntry
	addrs     []addrEntry
}

func newContext(tree *parser.ProgramTree) *context {
	return &context{tree: tree, addressOf: make(map[parser.VariableId]int)}
}

// pushCounter mints a fresh unique id for an if-statement or stack-call
// back-patch site.
func (c *context) pushCounter() int {
	c.counter++
	return c.counter - 1
}

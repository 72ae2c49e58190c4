package parser

import (
	"fmt"

	"github.com/skx/mariec/diag"
	"github.com/skx/mariec/stack"
)

// scopeFrame names one level of nesting a statement was parsed under,
// used only to enrich diagnostics raised from inside nested blocks.
type scopeFrame struct {
	description string
	line        uint
}

// buildingContext is bound to the function currently being parsed. It
// resolves names (locals first, then globals), accumulates the literal
// constants the function's body references, and tracks the chain of
// enclosing scopes for diagnostics.
type buildingContext struct {
	fn        *Function
	tree      *ProgramTree
	constants map[int32]struct{}
	scopes    *stack.Stack[scopeFrame]
}

func newBuildingContext(fn *Function, tree *ProgramTree) *buildingContext {
	return &buildingContext{
		fn:        fn,
		tree:      tree,
		constants: make(map[int32]struct{}),
		scopes:    stack.New[scopeFrame](),
	}
}

// resolveVariable finds name as a local of the current function, falling
// back to a global.
func (c *buildingContext) resolveVariable(name string) (VariableId, bool) {
	for _, v := range c.fn.Locals {
		if v.Name == name {
			return v.ID, true
		}
	}
	if g, ok := c.tree.findGlobalByName(name); ok {
		return g.ID, true
	}
	return VariableId{}, false
}

// mustResolveVariable is resolveVariable plus a diagnostic on failure.
func (c *buildingContext) mustResolveVariable(name string, line uint, original string) (VariableId, error) {
	id, ok := c.resolveVariable(name)
	if !ok {
		return VariableId{}, c.annotate(diag.Newf(line, original,
			"%q is neither a local nor a global variable", name))
	}
	return id, nil
}

// recordLiteral marks a literal as used, both locally (for this
// function's bookkeeping) and in the tree's merged set.
func (c *buildingContext) recordLiteral(n int32) {
	c.constants[n] = struct{}{}
	c.tree.addConstant(n)
}

// enterScope pushes a new scope frame, returning a function to pop it;
// callers `defer ctx.enterScope(...)()`.
func (c *buildingContext) enterScope(description string, line uint) func() {
	c.scopes.Push(scopeFrame{description: description, line: line})
	return func() {
		_, _ = c.scopes.Pop()
	}
}

// annotate prepends the current scope chain to a diagnostic's message, so
// an error raised deep inside nested if-blocks names every enclosing
// scope it was found under.
func (c *buildingContext) annotate(err *diag.LinedError) *diag.LinedError {
	frames := c.scopes.Items()
	if len(frames) == 0 {
		return err
	}
	ctxMsg := fmt.Sprintf("in function %q", c.fn.Name)
	for _, f := range frames {
		ctxMsg += fmt.Sprintf(", inside %s at line %d", f.description, f.line+1)
	}
	return err.WithContext(ctxMsg)
}

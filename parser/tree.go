package parser

import "fmt"

// GetFunc returns the function named by id. It panics if id is out of
// range: by T2 (name resolution soundness) every id reaching this point
// was produced by the parser itself against this same tree.
func (t *ProgramTree) GetFunc(id FunctionId) *Function {
	return &t.Functions[id]
}

// GetVar returns the variable named by id, resolving through the owning
// function for locals. Panics on an out-of-range id, see GetFunc.
func (t *ProgramTree) GetVar(id VariableId) *Variable {
	if id.Kind == VarLocal {
		return &t.GetFunc(id.Owner).Locals[id.Raw]
	}
	return &t.Globals[id.Raw]
}

// GetTempVar returns the reserved `_temp` scratch global.
func (t *ProgramTree) GetTempVar() *Variable {
	return &t.Globals[TempVarRaw]
}

// GetReturnVar returns the reserved `return` global.
func (t *ProgramTree) GetReturnVar() *Variable {
	return &t.Globals[ReturnVarRaw]
}

// GetReturnSaverVar returns the reserved `return_saver` global.
func (t *ProgramTree) GetReturnSaverVar() *Variable {
	return &t.Globals[ReturnSaverVarRaw]
}

// FindFuncByName looks up a function by name.
func (t *ProgramTree) FindFuncByName(name string) (*Function, bool) {
	for i := range t.Functions {
		if t.Functions[i].Name == name {
			return &t.Functions[i], true
		}
	}
	return nil, false
}

// MustFindFuncByName looks up a function the finalized tree is known to
// contain (push/pop/stack_return, having already been validated to
// exist). Panics if it is missing: that would be a compiler bug, not a
// user error, since finalize() already checked for these.
func (t *ProgramTree) MustFindFuncByName(name string) *Function {
	fn, ok := t.FindFuncByName(name)
	if !ok {
		panic(fmt.Sprintf("internal error: function %q should exist but does not", name))
	}
	return fn
}

// findGlobalByName looks up a global variable by name.
func (t *ProgramTree) findGlobalByName(name string) (*Variable, bool) {
	for i := range t.Globals {
		if t.Globals[i].Name == name {
			return &t.Globals[i], true
		}
	}
	return nil, false
}

// pushFunction appends a new function declaration (locals already laid out
// as [arg0..argN-1]) and returns its id.
func (t *ProgramTree) pushFunction(name string, args []string, isStack bool) FunctionId {
	id := FunctionId(len(t.Functions))

	fn := Function{
		ID:      id,
		Name:    name,
		Args:    uint(len(args)),
		IsStack: isStack,
	}
	for i, a := range args {
		fn.Locals = append(fn.Locals, Variable{
			Name:     a,
			Default:  ArgDefault,
			ID:       VariableId{Raw: uint(i), Kind: VarLocal, Owner: id},
			ReadOnly: true,
		})
	}
	t.Functions = append(t.Functions, fn)
	return id
}

// pushLocals appends non-argument locals to the function named by id.
func (t *ProgramTree) pushLocals(id FunctionId, decls []variableDecl) {
	fn := t.GetFunc(id)
	base := uint(len(fn.Locals))
	for i, d := range decls {
		fn.Locals = append(fn.Locals, Variable{
			Name:    d.name,
			Default: d.value,
			ID:      VariableId{Raw: base + uint(i), Kind: VarLocal, Owner: id},
		})
	}
}

// pushGlobals appends globals (the three reserved ones, or user ones) to
// the tree.
func (t *ProgramTree) pushGlobals(decls []variableDecl, readOnly bool) {
	base := uint(len(t.Globals))
	for i, d := range decls {
		t.Globals = append(t.Globals, Variable{
			Name:     d.name,
			Default:  d.value,
			ID:       VariableId{Raw: base + uint(i), Kind: VarGlobal},
			ReadOnly: readOnly,
		})
	}
}

// Package parser consumes token lines produced by the lexer and produces a
// ProgramTree: globals, functions (each with locals, body, arg count, stack
// flag), the set of integer literals referenced anywhere, and the set of
// features the program uses.
package parser

import "github.com/skx/mariec/token"

// FunctionId is a dense index into ProgramTree.Functions.
type FunctionId int

// VariableKind says whether a VariableId names a global or a function-local.
type VariableKind byte

// The two kinds of variable.
const (
	VarGlobal VariableKind = iota
	VarLocal
)

// VariableId names a variable: a raw index into the owning scope's variable
// list, plus (for locals) the function that scope belongs to.
type VariableId struct {
	Raw   uint
	Kind  VariableKind
	Owner FunctionId // meaningful only when Kind == VarLocal
}

// Variable is one declared name: a global, an argument, or a local.
type Variable struct {
	Name     string
	Default  int32
	ID       VariableId
	ReadOnly bool
}

// Reserved global indices, always present in that order before any
// user-declared global.
const (
	TempVarRaw         uint  = 0
	ReturnVarRaw       uint  = 1
	ReturnSaverVarRaw  uint  = 2
	TempDefault        int32 = -100
	ReturnDefault      int32 = -200
	ReturnSaverDefault int32 = -300
	// ArgDefault is the sentinel default value given to every function
	// argument; it is never emitted as a constant cell since arguments
	// are always overwritten by the caller before first use.
	ArgDefault int32 = -21
)

// ArgKind selects which case of ArgumentCallArg is populated.
type ArgKind byte

// The five kinds of call argument.
const (
	ArgLiteral ArgKind = iota
	ArgReference
	ArgDeref
	ArgGetAddress
	ArgFlag
)

// ArgumentCallArg is a tagged union: a literal number, a variable
// reference/dereference/address-of, or a reference to a named flag inside
// a function.
type ArgumentCallArg struct {
	Kind ArgKind

	Literal   int32
	VarID     VariableId
	FlagLabel string
	FlagFunc  FunctionId
}

// FunctionCall is a call to another function, optionally assigning its
// return value, tagged with the function it was made from (needed to
// decide whether a stack-function call is legal and what protocol it
// needs).
type FunctionCall struct {
	FuncID     FunctionId
	Arguments  []ArgumentCallArg
	Assignment *VariableId
	From       FunctionId
}

// StmtKind selects which case of Statement is populated.
type StmtKind byte

// The six kinds of statement.
const (
	StmtInline StmtKind = iota
	StmtCall
	StmtAssign
	StmtIf
	StmtFlag
	StmtRet
)

// If is the payload of a StmtIf statement.
type If struct {
	A, B    ArgumentCallArg
	Cond    token.CondKind
	IfTrue  []Statement
	IfFalse []Statement
	HasElse bool
}

// Statement is a tagged union over the six statement kinds.
type Statement struct {
	Kind StmtKind

	Inline string

	Call FunctionCall

	AssignLeft  VariableId
	AssignRight ArgumentCallArg

	If *If

	FlagLabel string

	RetVal *ArgumentCallArg
	RetFn  FunctionId
}

// Block is a sequence of statements, parsed top to bottom.
type Block = []Statement

// Function is one declared function: its name, locals (laid out
// [arg0..argN-1, local0..]), declared arg count, body (nil for a ghost
// function whose block was empty in source), and whether it uses the
// stack-function calling convention.
type Function struct {
	ID      FunctionId
	Name    string
	Locals  []Variable
	Args    uint
	Content Block // nil iff the source block had zero statements
	IsStack bool
}

// IsGhost reports whether this function has no body to compile.
func (f *Function) IsGhost() bool {
	return f.Content == nil
}

// Feature is a bit in ProgramTree.Features identifying an optional
// language feature a program makes use of.
type Feature uint32

// FeatureStackFunctions is set when any function in the program is a
// stack function, triggering the requirement that push/pop/stack_return
// exist with exact signatures.
const FeatureStackFunctions Feature = 1 << 0

// ProgramTree is the fully resolved program: every name bound to a
// function/variable id, every call arity checked, every feature flag
// collected.
type ProgramTree struct {
	Functions     []Function
	Globals       []Variable
	ConstantsUsed map[int32]struct{}
	Features      Feature
}

// UsesStackFunctions reports whether the stack-function feature is active.
func (t *ProgramTree) UsesStackFunctions() bool {
	return t.Features&FeatureStackFunctions != 0
}

func newProgramTree() *ProgramTree {
	return &ProgramTree{ConstantsUsed: make(map[int32]struct{})}
}

func (t *ProgramTree) addConstant(n int32) {
	t.ConstantsUsed[n] = struct{}{}
}

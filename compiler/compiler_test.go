package compiler

import (
	"strings"
	"testing"

	"github.com/skx/mariec/lexer"
	"github.com/skx/mariec/parser"
)

func mustParse(t *testing.T, source string) *parser.ProgramTree {
	t.Helper()
	lines, err := lexer.New(source).Tokenize()
	if err != nil {
		t.Fatalf("lexer error: %v", err)
	}
	tree, err := parser.Parse(lines)
	if err != nil {
		t.Fatalf("parser error: %v", err)
	}
	return tree
}

func TestCompileMinimalMain(t *testing.T) {
	source := `
*
function main
*
{
.ret()
}
`
	tree := mustParse(t, source)
	out := Compile(tree)

	lines := strings.Split(out, "\n")
	if lines[0] != "jns function_main" {
		t.Fatalf("expected first line to be the entry jump, got %q", lines[0])
	}
	if lines[1] != "halt" {
		t.Fatalf("expected second line to be halt, got %q", lines[1])
	}
	if !strings.Contains(out, "function_main, DEC 0") {
		t.Fatalf("expected a function_main entry cell, output:\n%s", out)
	}
	if !strings.Contains(out, "var__temp, DEC -100") {
		t.Fatalf("expected the reserved _temp global cell, output:\n%s", out)
	}
	if !strings.Contains(out, "jumpi function_main") {
		t.Fatalf("expected main's return to jump back through its own cell, output:\n%s", out)
	}
}

func TestCompileFunctionCallAndAssignment(t *testing.T) {
	source := `
*
function add a b
result = 0
*
{
result := a
.ret(result)
}
function main
x = 0
*
{
x = add(1 2)
.ret()
}
`
	tree := mustParse(t, source)
	out := Compile(tree)

	for _, want := range []string{
		"var_add_result, DEC 0",
		"const_1, DEC 1",
		"const_2, DEC 2",
		"store var_main_x",
		"jns function_add",
		"store var_add_a",
		"store var_add_b",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, output:\n%s", want, out)
		}
	}
}

func TestCompileIfEmitsSkipcondAndLabels(t *testing.T) {
	source := `
*
function main
x = 5
*
{
.if(EQ x 5)
{
.flag(here)
}
.noelse
.ret()
}
`
	tree := mustParse(t, source)
	out := Compile(tree)

	for _, want := range []string{
		"skipcond 400",
		"subt var__temp",
		"if_0, store var__temp",
		"end_if_0, store var__temp",
		"flag_main_here, DEC",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, output:\n%s", want, out)
		}
	}
}

func TestCompileStackFunctionEmitsBackpatchedAddr(t *testing.T) {
	source := `
*
function push v
*
{
.ret()
}
function pop
*
{
.ret(0)
}
function stack_return v
*
{
.ret(v)
}
stack_function fact n
x = 0
*
{
x = fact(n)
.ret(x)
}
function main
*
{
.ret()
}
`
	tree := mustParse(t, source)
	out := Compile(tree)

	for _, want := range []string{
		"addr_0, DEC",
		"jns function_push",
		"store var_push_v",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, output:\n%s", want, out)
		}
	}
}

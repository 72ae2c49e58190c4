package asmop

import "testing"

func TestDecCell(t *testing.T) {
	got := DecCell("const_5", 5)
	want := "const_5, DEC 5"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestDecCellNegative(t *testing.T) {
	got := DecCell("var_x", -21)
	want := "var_x, DEC -21"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestOpNoOperand(t *testing.T) {
	if got := Op(HALT, ""); got != "halt" {
		t.Fatalf("expected %q, got %q", "halt", got)
	}
}

func TestLineNoLabel(t *testing.T) {
	if got := Line("", Op(JNS, "function_main")); got != "jns function_main" {
		t.Fatalf("unexpected line: %q", got)
	}
}

func TestSkipcondFor(t *testing.T) {
	cases := map[byte]string{CondLess: "000", CondEq: "400", CondMore: "800"}
	for cond, want := range cases {
		if got := SkipcondFor(cond); got != want {
			t.Fatalf("SkipcondFor(%d): expected %q, got %q", cond, want, got)
		}
	}
}

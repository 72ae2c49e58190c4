package stack

import "testing"

func TestPushPop(t *testing.T) {
	s := New[int]()

	if !s.Empty() {
		t.Fatalf("a new stack should be empty")
	}

	s.Push(1)
	s.Push(2)
	s.Push(3)

	if s.Empty() {
		t.Fatalf("stack should not be empty after pushing")
	}

	for _, want := range []int{3, 2, 1} {
		got, err := s.Pop()
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if got != want {
			t.Fatalf("expected %d, got %d", want, got)
		}
	}

	if !s.Empty() {
		t.Fatalf("stack should be empty after popping everything")
	}

	if _, err := s.Pop(); err == nil {
		t.Fatalf("expected an error popping an empty stack")
	}
}

func TestItems(t *testing.T) {
	s := New[string]()
	s.Push("a")
	s.Push("b")

	items := s.Items()
	if len(items) != 2 || items[0] != "a" || items[1] != "b" {
		t.Fatalf("unexpected items: %v", items)
	}
}

package libmerge

import "testing"

func TestMergeSingleSplicesAtFirstStar(t *testing.T) {
	got := mergeSingle("header\n*\nfooter\n", "lib-contents")
	want := "header\nlib-contents\nfooter\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestMergeSingleEmptyHostReturnsGuest(t *testing.T) {
	if got := mergeSingle("", "guest"); got != "guest" {
		t.Fatalf("got %q, want %q", got, "guest")
	}
}

func TestMergeSingleEmptyGuestReturnsHost(t *testing.T) {
	if got := mergeSingle("host", ""); got != "host" {
		t.Fatalf("got %q, want %q", got, "host")
	}
}

func TestMergeSingleOnlyReplacesFirstStar(t *testing.T) {
	got := mergeSingle("a*b*c", "X")
	want := "aXb*c"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestMergeRightFoldsLibrariesBeforeSplicingMain(t *testing.T) {
	// The fold starts from libs[len-1] as the initial accumulator, then
	// splices each earlier library into the accumulator's `*` in turn,
	// so libs[0] ends up innermost. The combined result is then spliced
	// into code's own `*`.
	got := Merge("pre*post", []string{"X", "Y*Z"})
	want := "preYXZpost"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestMergeNoLibrariesReturnsCodeUnchanged(t *testing.T) {
	if got := Merge("unchanged", nil); got != "unchanged" {
		t.Fatalf("got %q, want %q", got, "unchanged")
	}
}

func TestMergeExampleFromSpec(t *testing.T) {
	main := "header\n*\nfunction main\n*\n{\n}\n"
	lib := "lib-contents"
	got := Merge(main, []string{lib})
	want := "headerlib-contents\nfunction main\n*\n{\n}\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

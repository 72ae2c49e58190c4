package compiler

import "strings"

// lineBuilder accumulates assembly text, tracking how many lines have been
// pushed so callers can compute absolute line numbers for back-patching
// without a second pass. Grounded on the original implementation's
// string-builder: pushing the empty string is a no-op, and the final
// output has its trailing newlines trimmed.
type lineBuilder struct {
	buf   strings.Builder
	lines int
}

// push appends text with no trailing newline, counting any newlines
// already inside it.
func (b *lineBuilder) push(text string) {
	b.lines += strings.Count(text, "\n")
	b.buf.WriteString(text)
}

// pushLineSmart appends text followed by a newline, unless text is empty.
func (b *lineBuilder) pushLineSmart(text string) {
	if text == "" {
		return
	}
	b.lines += strings.Count(text, "\n") + 1
	b.buf.WriteString(text)
	b.buf.WriteByte('\n')
}

// count returns the number of lines pushed so far.
func (b *lineBuilder) count() int {
	return b.lines
}

// collapseFlat returns the accumulated text with trailing newlines
// trimmed.
func (b *lineBuilder) collapseFlat() string {
	return strings.TrimRight(b.buf.String(), "\n")
}

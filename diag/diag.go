// Package diag holds the single diagnostic type shared by the lexer, the
// parser, and the CLI driver.
package diag

import "fmt"

// LinedError is the shape every non-internal compiler error takes: the
// 0-based source line it occurred on, that line's original text, and a
// human-readable message.
type LinedError struct {
	Line        uint
	RelatedText string
	Message     string
}

// Error implements the error interface.
func (e *LinedError) Error() string {
	return fmt.Sprintf("%s\n  at line %d: %q", e.Message, e.Line+1, e.RelatedText)
}

// New builds a LinedError.
func New(line uint, relatedText, message string) *LinedError {
	return &LinedError{Line: line, RelatedText: relatedText, Message: message}
}

// Newf builds a LinedError with a formatted message.
func Newf(line uint, relatedText, format string, args ...any) *LinedError {
	return New(line, relatedText, fmt.Sprintf(format, args...))
}

// WithContext returns a copy of e with extra context prepended to the
// message, used by the parser to record the chain of enclosing scopes
// (function, nested if-blocks) a semantic error was raised inside of.
func (e *LinedError) WithContext(context string) *LinedError {
	return &LinedError{
		Line:        e.Line,
		RelatedText: e.RelatedText,
		Message:     context + ": " + e.Message,
	}
}

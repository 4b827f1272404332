package parser

import (
	"errors"
	"fmt"

	"jpath/internal/source"
)

// ErrSyntax is matched by every error Parse returns for malformed input.
var ErrSyntax = errors.New("syntax error")

// SyntaxError is the error Parse returns. Rendered holds the source excerpt
// with the primary label and the "while parsing" notes.
type SyntaxError struct {
	Message  string
	Span     source.Span
	Rendered string
	Err      *Error
}

func newSyntaxError(err *Error, src string) *SyntaxError {
	se := &SyntaxError{
		Message:  PrimaryMessage(err),
		Span:     err.Span,
		Rendered: DisplayError(err, src),
		Err:      err,
	}
	if !err.Backtrace.Empty() {
		se.Span = err.Backtrace.Span()
	}
	return se
}

func (e *SyntaxError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s at offset %d", ErrSyntax, e.Span.Start)
	}
	return fmt.Sprintf("%s at offset %d: %s", ErrSyntax, e.Span.Start, e.Message)
}

func (e *SyntaxError) Unwrap() []error {
	return []error{ErrSyntax, e.Err}
}

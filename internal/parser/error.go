package parser

import (
	"errors"
	"strconv"
	"strings"

	"jpath/internal/source"
	"jpath/internal/token"
)

type ReasonKind uint8

const (
	// ReasonExpectToken: ожидался токен вида Token (matchToken).
	ReasonExpectToken ReasonKind = iota
	// ReasonExpectText: ожидался токен с текстом Text (matchText).
	ReasonExpectText
	// ReasonOther: произвольное сообщение.
	ReasonOther
)

// Reason says why one attempt failed at one position.
type Reason struct {
	Kind  ReasonKind
	Token token.Kind
	Text  string
}

func ExpectToken(k token.Kind) Reason { return Reason{Kind: ReasonExpectToken, Token: k} }
func ExpectText(text string) Reason   { return Reason{Kind: ReasonExpectText, Text: text} }
func Other(msg string) Reason         { return Reason{Kind: ReasonOther, Text: msg} }

// Backtrace records the farthest failure of one parse session, including
// failures of branches that alt/opt/many0 later discard.
// Not safe for concurrent use.
type Backtrace struct {
	set     bool
	span    source.Span
	reasons []Reason
}

// NewBacktrace returns an empty tracker.
func NewBacktrace() *Backtrace {
	return &Backtrace{}
}

// Record stores reason at span if span is at least as far as the current record.
func (bt *Backtrace) Record(span source.Span, reason Reason) {
	switch {
	case !bt.set || span.Start > bt.span.Start:
		bt.set = true
		bt.span = span
		bt.reasons = append(bt.reasons[:0], reason)
	case span.Start == bt.span.Start:
		bt.reasons = append(bt.reasons, reason)
	}
}

// Clear forgets everything recorded so far.
func (bt *Backtrace) Clear() {
	bt.set = false
	bt.span = source.Span{}
	bt.reasons = bt.reasons[:0]
}

func (bt *Backtrace) Empty() bool { return bt == nil || !bt.set }

func (bt *Backtrace) Span() source.Span {
	if bt == nil {
		return source.Span{}
	}
	return bt.span
}

// Reasons returns a copy of the reasons at the farthest span.
func (bt *Backtrace) Reasons() []Reason {
	if bt.Empty() {
		return nil
	}
	out := make([]Reason, len(bt.reasons))
	copy(out, bt.reasons)
	return out
}

// Context is one named production active when the error propagated.
type Context struct {
	Span  source.Span
	Label string
}

// Error is the failure of one parse branch. Values are never mutated after
// construction; Merge and WithContext return new errors.
type Error struct {
	// Span of the next token when the failure happened.
	Span    source.Span
	Reasons []Reason
	// Contexts, outer first.
	Contexts  []Context
	Backtrace *Backtrace
}

// NewError builds a leaf failure at the next token of in and records it in
// the session backtrace.
func NewError(in Input, reason Reason) *Error {
	sp := in.Span()
	if in.Backtrace != nil {
		in.Backtrace.Record(sp, reason)
	}
	return &Error{
		Span:      sp,
		Reasons:   []Reason{reason},
		Backtrace: in.Backtrace,
	}
}

// Merge combines failures of two alternatives: on the same start the reasons
// are concatenated and contexts dropped, otherwise the farther error wins.
func Merge(a, b *Error) *Error {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case a.Span.Start < b.Span.Start:
		return b
	case a.Span.Start > b.Span.Start:
		return a
	}
	reasons := make([]Reason, 0, len(a.Reasons)+len(b.Reasons))
	reasons = append(reasons, a.Reasons...)
	reasons = append(reasons, b.Reasons...)
	bt := a.Backtrace
	if bt == nil {
		bt = b.Backtrace
	}
	return &Error{
		Span:      a.Span,
		Reasons:   reasons,
		Backtrace: bt,
	}
}

// Or is Merge(e, other).
func (e *Error) Or(other *Error) *Error {
	return Merge(e, other)
}

// WithContext returns a copy of e with (span, label) as its new outermost context.
func (e *Error) WithContext(span source.Span, label string) *Error {
	if e == nil {
		return nil
	}
	ctxs := make([]Context, 0, len(e.Contexts)+1)
	ctxs = append(ctxs, Context{Span: span, Label: label})
	ctxs = append(ctxs, e.Contexts...)
	out := *e
	out.Contexts = ctxs
	return &out
}

// AddContext attaches label at the first token of in, the input a named
// production started from.
func AddContext(in Input, label string, err *Error) *Error {
	return err.WithContext(in.Span(), label)
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return PrimaryMessage(e)
}

// ReasonFromIntError classifies a strconv.ParseInt failure. lit is the text
// that was parsed; its sign decides the overflow direction.
func ReasonFromIntError(lit string, err error) Reason {
	var ne *strconv.NumError
	if !errors.As(err, &ne) {
		return Other("unable to parse number")
	}
	switch {
	case errors.Is(ne.Err, strconv.ErrSyntax):
		return Other("unable to parse number because it contains invalid characters")
	case errors.Is(ne.Err, strconv.ErrRange) && strings.HasPrefix(lit, "-"):
		return Other("unable to parse number because it negatively overflowed")
	case errors.Is(ne.Err, strconv.ErrRange):
		return Other("unable to parse number because it positively overflowed")
	}
	return Other("unable to parse number")
}

// ReasonFromFloatError classifies a strconv.ParseFloat failure.
func ReasonFromFloatError(error) Reason {
	return Other("unable to parse float number")
}

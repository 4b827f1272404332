package parser

import (
	"context"
	"fmt"
	"strconv"

	"fortio.org/safecast"

	"jpath/internal/ast"
	"jpath/internal/diag"
	"jpath/internal/lexer"
	"jpath/internal/source"
	"jpath/internal/token"
	"jpath/internal/trace"
)

// Session owns the backtrace of one parse at a time. Errors returned by a
// session stay readable until its next parse, which clears the backtrace.
// A Session must not be shared between goroutines.
type Session struct {
	bt Backtrace
}

func NewSession() *Session {
	return &Session{}
}

// Reset clears the backtrace left by the previous parse.
func (s *Session) Reset() {
	s.bt.Clear()
}

func (s *Session) Backtrace() *Backtrace {
	return &s.bt
}

// ParseTokens parses one query. tokens must end with EOF.
func (s *Session) ParseTokens(tokens []token.Token) (*ast.JSONPath, *Error) {
	s.Reset()
	in := Input{Tokens: tokens, Backtrace: &s.bt}
	_, q, err := query(in)
	if err != nil {
		return nil, err
	}
	return q, nil
}

// ParseTokens parses tokens with a fresh session.
func ParseTokens(tokens []token.Token) (*ast.JSONPath, *Error) {
	return NewSession().ParseTokens(tokens)
}

// Parse lexes and parses a single query. Failures are *SyntaxError and match ErrSyntax.
func Parse(src string) (*ast.JSONPath, error) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("<query>", []byte(src)))
	q, err := ParseTokens(lexer.Tokenize(file, lexer.Options{}))
	if err != nil {
		return nil, newSyntaxError(err, src)
	}
	return q, nil
}

type Options struct {
	Reporter diag.Reporter // может быть nil
	Session  *Session      // nil: новая сессия на каждый вызов
}

type Result struct {
	Query *ast.JSONPath
	Err   *Error
}

func (r Result) OK() bool { return r.Err == nil }

// ParseRange parses the query stored in file bytes [start, end). Lexer
// problems and the syntax error, if any, go to opts.Reporter.
func ParseRange(ctx context.Context, file *source.File, start, end uint32, opts Options) Result {
	parent := trace.CurrentSpan(ctx).SpanID
	span := trace.Begin(trace.FromContext(ctx), trace.ScopeQuery, "query", parent).
		WithExtra("offset", strconv.FormatUint(uint64(start), 10))

	sess := opts.Session
	if sess == nil {
		sess = NewSession()
	}
	tokens := lexer.NewRange(file, start, end, lexer.Options{Reporter: opts.Reporter}).All()
	q, err := sess.ParseTokens(tokens)
	if err != nil {
		reportSyntaxError(opts.Reporter, err)
		span.End("error")
		return Result{Err: err}
	}
	span.End("ok")
	return Result{Query: q}
}

// ParseFile parses the whole file as one query.
func ParseFile(ctx context.Context, file *source.File, opts Options) Result {
	end, err := safecast.Conv[uint32](len(file.Content))
	if err != nil {
		panic(fmt.Errorf("file content length overflow: %w", err))
	}
	return ParseRange(ctx, file, 0, end, opts)
}

// reportSyntaxError emits exactly one SYN2001: the primary label as the
// message, every context as a note.
func reportSyntaxError(r diag.Reporter, err *Error) {
	if r == nil {
		return
	}
	labels := ErrorLabels(err)
	if len(labels) == 0 {
		diag.ReportError(r, diag.SynUnexpectedToken, err.Span, "syntax error").Emit()
		return
	}
	b := diag.ReportError(r, diag.SynUnexpectedToken, labels[0].Span, labels[0].Msg)
	for _, l := range labels[1:] {
		b.WithNote(l.Span, l.Msg)
	}
	b.Emit()
}

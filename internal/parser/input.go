package parser

import (
	"jpath/internal/source"
	"jpath/internal/token"
)

// Input is an immutable position in a token stream. Tokens must end with EOF.
type Input struct {
	Tokens    []token.Token
	Pos       int
	Backtrace *Backtrace
}

// Peek returns the next token; past the end it keeps returning the final EOF.
func (in Input) Peek() token.Token {
	if in.Pos < len(in.Tokens) {
		return in.Tokens[in.Pos]
	}
	if n := len(in.Tokens); n > 0 {
		return in.Tokens[n-1]
	}
	return token.Token{Kind: token.EOF}
}

// Span is the span of the next token.
func (in Input) Span() source.Span {
	return in.Peek().Span
}

// Advance returns the input after the next token.
func (in Input) Advance() Input {
	if in.Pos < len(in.Tokens) {
		in.Pos++
	}
	return in
}

// AtEOF reports whether only the EOF marker is left.
func (in Input) AtEOF() bool {
	return in.Peek().Kind == token.EOF
}

// SpanFrom covers tokens [start.Pos, in.Pos). Empty when nothing was consumed.
func (in Input) SpanFrom(start Input) source.Span {
	if in.Pos <= start.Pos || start.Pos >= len(in.Tokens) {
		sp := start.Span()
		return source.Span{File: sp.File, Start: sp.Start, End: sp.Start}
	}
	first := in.Tokens[start.Pos].Span
	last := in.Tokens[min(in.Pos, len(in.Tokens))-1].Span
	return first.Cover(last)
}

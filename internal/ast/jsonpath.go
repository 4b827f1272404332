package ast

import "jpath/internal/source"

type Mode uint8

const (
	ModeNone Mode = iota
	ModeStrict
	ModeLax
)

func (m Mode) String() string {
	switch m {
	case ModeStrict:
		return "strict"
	case ModeLax:
		return "lax"
	}
	return ""
}

// JSONPath is one parsed query: an optional mode followed by an expression.
type JSONPath struct {
	Mode Mode
	Expr Expr
	Span source.Span
}

func (q *JSONPath) String() string {
	if q == nil || q.Expr == nil {
		return ""
	}
	if q.Mode != ModeNone {
		return q.Mode.String() + " " + q.Expr.String()
	}
	return q.Expr.String()
}

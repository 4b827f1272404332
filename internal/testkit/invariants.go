// Package testkit holds checks shared by tests and fuzz harnesses.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"jpath/internal/ast"
	"jpath/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed query:
// 1) the query span is non-empty and within file content bounds
// 2) every node span lies inside the span of its parent
// 3) every span points into sf
func CheckSpanInvariants(q *ast.JSONPath, sf *source.File) error {
	if q == nil || sf == nil {
		return fmt.Errorf("nil query or file")
	}
	if q.Span.End <= q.Span.Start {
		return fmt.Errorf("query span is empty: %v", q.Span)
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if q.Span.End > lenContent {
		return fmt.Errorf("query span end beyond content: %d > %d", q.Span.End, lenContent)
	}
	c := checker{file: sf.ID}
	c.expr(q.Expr, q.Span)
	return c.err
}

type checker struct {
	file source.FileID
	err  error
}

func (c *checker) within(what string, sp, parent source.Span) bool {
	if c.err != nil {
		return false
	}
	switch {
	case sp.File != c.file:
		c.err = fmt.Errorf("%s span points to different file id: got=%d want=%d", what, sp.File, c.file)
	case sp.End < sp.Start:
		c.err = fmt.Errorf("%s span is inverted: %v", what, sp)
	case sp.Start < parent.Start || sp.End > parent.End:
		c.err = fmt.Errorf("%s span %v escapes parent %v", what, sp, parent)
	}
	return c.err == nil
}

func (c *checker) expr(e ast.Expr, parent source.Span) {
	if e == nil {
		c.err = fmt.Errorf("nil expression inside %v", parent)
		return
	}
	sp := e.Span()
	switch n := e.(type) {
	case *ast.Literal:
		c.within("literal", sp, parent)
	case *ast.UnaryExpr:
		if c.within("unary", sp, parent) {
			c.expr(n.X, sp)
		}
	case *ast.BinaryExpr:
		if c.within("binary", sp, parent) {
			c.expr(n.X, sp)
			c.expr(n.Y, sp)
		}
	case *ast.ExistsExpr:
		if c.within("exists", sp, parent) {
			c.path(n.Path, sp)
		}
	case *ast.Path:
		c.path(n, parent)
	default:
		c.err = fmt.Errorf("unexpected node %T", e)
	}
}

func (c *checker) path(p *ast.Path, parent source.Span) {
	if p == nil {
		c.err = fmt.Errorf("nil path inside %v", parent)
		return
	}
	if !c.within("path", p.Sp, parent) {
		return
	}
	prev := p.Sp.Start
	for i, a := range p.Accessors {
		if !c.within(fmt.Sprintf("accessor %d", i), a.Span, p.Sp) {
			return
		}
		if a.Span.Start < prev {
			c.err = fmt.Errorf("accessor %d starts at %d before previous end %d", i, a.Span.Start, prev)
			return
		}
		prev = a.Span.End
		if a.Filter != nil {
			c.expr(a.Filter, a.Span)
		}
	}
}

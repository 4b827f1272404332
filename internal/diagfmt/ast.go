package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"jpath/internal/ast"
	"jpath/internal/source"
)

type ASTNodeOutput struct {
	Type     string          `json:"type"`
	Kind     string          `json:"kind,omitempty"`
	Span     source.Span     `json:"span"`
	Text     string          `json:"text,omitempty"`
	Children []ASTNodeOutput `json:"children,omitempty"`
}

type treeNode struct {
	label    string
	children []*treeNode
}

// FormatASTPretty печатает дерево запроса:
//
//	JSONPath lax (span: 1:1-1:8)
//	└─ Path $ (span: 1:5-1:8)
//	   └─ DotField a (span: 1:6-1:8)
func FormatASTPretty(w io.Writer, q *ast.JSONPath, fs *source.FileSet) error {
	if q == nil {
		return fmt.Errorf("nil query")
	}
	root := buildQueryTree(q, fs)
	if _, err := fmt.Fprintln(w, root.label); err != nil {
		return err
	}
	return writeTreeChildren(w, root.children, "")
}

func writeTreeChildren(w io.Writer, children []*treeNode, prefix string) error {
	for i, child := range children {
		branch, next := "├─ ", "│  "
		if i == len(children)-1 {
			branch, next = "└─ ", "   "
		}
		if _, err := fmt.Fprintf(w, "%s%s%s\n", prefix, branch, child.label); err != nil {
			return err
		}
		if err := writeTreeChildren(w, child.children, prefix+next); err != nil {
			return err
		}
	}
	return nil
}

func buildQueryTree(q *ast.JSONPath, fs *source.FileSet) *treeNode {
	label := "JSONPath"
	if q.Mode != ast.ModeNone {
		label += " " + q.Mode.String()
	}
	return &treeNode{
		label:    fmt.Sprintf("%s (span: %s)", label, formatSpan(q.Span, fs)),
		children: []*treeNode{buildExprTree(q.Expr, fs)},
	}
}

func buildExprTree(e ast.Expr, fs *source.FileSet) *treeNode {
	out := ExprOutput(e)
	return outputToTree(out, fs)
}

func outputToTree(out ASTNodeOutput, fs *source.FileSet) *treeNode {
	label := out.Type
	if out.Kind != "" {
		label += " " + out.Kind
	}
	if out.Text != "" {
		label += " " + out.Text
	}
	n := &treeNode{label: fmt.Sprintf("%s (span: %s)", label, formatSpan(out.Span, fs))}
	for _, c := range out.Children {
		n.children = append(n.children, outputToTree(c, fs))
	}
	return n
}

// FormatASTJSON выводит дерево запроса в JSON.
func FormatASTJSON(w io.Writer, q *ast.JSONPath) error {
	if q == nil {
		return fmt.Errorf("nil query")
	}
	output := ASTNodeOutput{
		Type:     "JSONPath",
		Kind:     q.Mode.String(),
		Span:     q.Span,
		Text:     q.String(),
		Children: []ASTNodeOutput{ExprOutput(q.Expr)},
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// ExprOutput converts an expression subtree into its serialisable form.
func ExprOutput(e ast.Expr) ASTNodeOutput {
	switch n := e.(type) {
	case *ast.Literal:
		return ASTNodeOutput{Type: "Literal", Kind: literalKind(n.Kind), Span: n.Sp, Text: n.String()}
	case *ast.Path:
		out := ASTNodeOutput{Type: "Path", Span: n.Sp, Text: n.String()[:1]}
		for _, a := range n.Accessors {
			out.Children = append(out.Children, accessorOutput(a))
		}
		return out
	case *ast.UnaryExpr:
		kind := "!"
		if n.Op == ast.UnaryNeg {
			kind = "-"
		}
		return ASTNodeOutput{Type: "Unary", Kind: kind, Span: n.Sp, Children: []ASTNodeOutput{ExprOutput(n.X)}}
	case *ast.BinaryExpr:
		return ASTNodeOutput{
			Type:     "Binary",
			Kind:     n.Op.String(),
			Span:     n.Sp,
			Children: []ASTNodeOutput{ExprOutput(n.X), ExprOutput(n.Y)},
		}
	case *ast.ExistsExpr:
		return ASTNodeOutput{Type: "Exists", Span: n.Sp, Children: []ASTNodeOutput{ExprOutput(n.Path)}}
	}
	return ASTNodeOutput{Type: "Unknown"}
}

func accessorOutput(a ast.Accessor) ASTNodeOutput {
	out := ASTNodeOutput{Type: accessorKind(a.Kind), Span: a.Span}
	switch a.Kind {
	case ast.AccDotField, ast.AccDescField:
		out.Text = a.Field.String()
	case ast.AccBracketFields:
		for _, f := range a.Fields {
			out.Children = append(out.Children, ASTNodeOutput{Type: "Field", Span: f.Span, Text: f.String()})
		}
	case ast.AccBracketIndices:
		for _, idx := range a.Indices {
			out.Children = append(out.Children, ASTNodeOutput{Type: "Index", Span: a.Span, Text: idx.String()})
		}
	case ast.AccSlice:
		out.Text = a.Slice.String()
	case ast.AccFilter, ast.AccPostfixFilter:
		out.Children = []ASTNodeOutput{ExprOutput(a.Filter)}
	}
	return out
}

func accessorKind(k ast.AccessorKind) string {
	switch k {
	case ast.AccDotField:
		return "DotField"
	case ast.AccDotWildcard:
		return "DotWildcard"
	case ast.AccDescField:
		return "DescendantField"
	case ast.AccDescWildcard:
		return "DescendantWildcard"
	case ast.AccBracketWildcard:
		return "BracketWildcard"
	case ast.AccBracketFields:
		return "BracketFields"
	case ast.AccBracketIndices:
		return "BracketIndices"
	case ast.AccSlice:
		return "Slice"
	case ast.AccFilter:
		return "Filter"
	case ast.AccPostfixFilter:
		return "PostfixFilter"
	}
	return "Accessor(" + strconv.Itoa(int(k)) + ")"
}

func literalKind(k ast.LitKind) string {
	switch k {
	case ast.LitBool:
		return "bool"
	case ast.LitInt:
		return "int"
	case ast.LitFloat:
		return "float"
	case ast.LitString:
		return "string"
	}
	return "null"
}

func formatSpan(span source.Span, fs *source.FileSet) string {
	if fs != nil && fs.Get(span.File) != nil {
		start, end := fs.Resolve(span)
		return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
	}
	return fmt.Sprintf("span(%d-%d)", span.Start, span.End)
}

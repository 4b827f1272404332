package testkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jpath/internal/ast"
	"jpath/internal/parser"
	"jpath/internal/source"
)

func TestCheckSpanInvariantsOnParsedQueries(t *testing.T) {
	queries := []string{
		"$",
		"lax $.a[0 to last]",
		"$..book[?(@.price <= $.expensive)]",
		"$.a ? (@ > 1)",
		"!$.a == 1 && $.b || exists($.c)",
		"-($.a + 1) * 2",
	}
	for _, src := range queries {
		t.Run(src, func(t *testing.T) {
			fs := source.NewFileSet()
			file := fs.Get(fs.AddVirtual("q.jsonpath", []byte(src)))
			q, err := parser.Parse(src)
			require.NoError(t, err)
			assert.NoError(t, CheckSpanInvariants(q, file))
		})
	}
}

func TestCheckSpanInvariantsViolations(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("q.jsonpath", []byte("$.a")))

	tests := []struct {
		name string
		q    *ast.JSONPath
		want string
	}{
		{
			name: "empty query",
			q:    &ast.JSONPath{Expr: &ast.Path{}},
			want: "query span is empty",
		},
		{
			name: "past content",
			q:    &ast.JSONPath{Span: source.Span{Start: 0, End: 9}, Expr: &ast.Path{}},
			want: "beyond content",
		},
		{
			name: "child escapes",
			q: &ast.JSONPath{
				Span: source.Span{Start: 0, End: 2},
				Expr: &ast.Path{Sp: source.Span{Start: 0, End: 3}},
			},
			want: "escapes parent",
		},
		{
			name: "accessors out of order",
			q: &ast.JSONPath{
				Span: source.Span{Start: 0, End: 3},
				Expr: &ast.Path{
					Sp: source.Span{Start: 0, End: 3},
					Accessors: []ast.Accessor{
						{Span: source.Span{Start: 2, End: 3}},
						{Span: source.Span{Start: 1, End: 2}},
					},
				},
			},
			want: "before previous end",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckSpanInvariants(tt.q, file)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
	assert.Error(t, CheckSpanInvariants(nil, file))
}

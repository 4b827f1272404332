package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func i64(v int64) *int64 { return &v }

func field(name string) Accessor {
	return Accessor{Kind: AccDotField, Field: Identifier{Name: name}}
}

func TestIdentifierString(t *testing.T) {
	assert.Equal(t, "name", Identifier{Name: "name"}.String())
	assert.Equal(t, `"a b"`, Identifier{Name: "a b", Quote: '"'}.String())
	assert.Equal(t, `'it\'s'`, Identifier{Name: "it's", Quote: '\''}.String())
	assert.Equal(t, `"a\nb\u0001"`, QuoteString("a\nb\x01", '"'))
}

func TestAccessorString(t *testing.T) {
	last := IndexBound{Last: true, Value: 1}
	tests := []struct {
		acc  Accessor
		want string
	}{
		{field("a"), ".a"},
		{Accessor{Kind: AccDotWildcard}, ".*"},
		{Accessor{Kind: AccDescField, Field: Identifier{Name: "x y", Quote: '\''}}, "..'x y'"},
		{Accessor{Kind: AccDescWildcard}, "..*"},
		{Accessor{Kind: AccBracketWildcard}, "[*]"},
		{Accessor{Kind: AccBracketFields, Fields: []Identifier{{Name: "a", Quote: '\''}, {Name: "b", Quote: '"'}}}, `['a', "b"]`},
		{Accessor{Kind: AccBracketIndices, Indices: []ArrayIndex{
			{Start: IndexBound{Value: 0}},
			{Start: IndexBound{Last: true}},
			{Start: IndexBound{Value: 2}, End: &last},
		}}, "[0, last, 2 to last - 1]"},
		{Accessor{Kind: AccSlice, Slice: Slice{Start: i64(1), End: i64(-1)}}, "[1:-1]"},
		{Accessor{Kind: AccSlice, Slice: Slice{Step: i64(2)}}, "[::2]"},
		{Accessor{Kind: AccFilter, Filter: &Path{Root: RootAt, Accessors: []Accessor{field("b")}}}, "[?(@.b)]"},
		{Accessor{Kind: AccPostfixFilter, Filter: &Literal{Kind: LitBool, Bool: true}}, " ? (true)"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.acc.String())
		})
	}
}

func TestExprStringPrecedence(t *testing.T) {
	a := &Path{Root: RootAt, Accessors: []Accessor{field("a")}}
	b := &Path{Root: RootAt, Accessors: []Accessor{field("b")}}
	one := &Literal{Kind: LitInt, Int: 1}
	two := &Literal{Kind: LitFloat, Float: 2}

	sum := &BinaryExpr{Op: BinAdd, X: a, Y: one}
	tests := []struct {
		expr Expr
		want string
	}{
		{&BinaryExpr{Op: BinMul, X: sum, Y: two}, "(@.a + 1) * 2.0"},
		{&BinaryExpr{Op: BinSub, X: a, Y: &BinaryExpr{Op: BinSub, X: b, Y: one}}, "@.a - (@.b - 1)"},
		{&BinaryExpr{Op: BinSub, X: &BinaryExpr{Op: BinSub, X: a, Y: b}, Y: one}, "@.a - @.b - 1"},
		{&BinaryExpr{Op: BinAnd, X: &BinaryExpr{Op: BinOr, X: a, Y: b}, Y: one}, "(@.a || @.b) && 1"},
		{&BinaryExpr{Op: BinEq, X: &BinaryExpr{Op: BinLt, X: a, Y: b}, Y: one}, "(@.a < @.b) == 1"},
		{&UnaryExpr{Op: UnaryNot, X: &BinaryExpr{Op: BinEq, X: a, Y: one}}, "!@.a == 1"},
		{&UnaryExpr{Op: UnaryNot, X: &BinaryExpr{Op: BinOr, X: a, Y: b}}, "!(@.a || @.b)"},
		{&UnaryExpr{Op: UnaryNeg, X: sum}, "-(@.a + 1)"},
		{&BinaryExpr{Op: BinStartsWith, X: a, Y: &Literal{Kind: LitString, Str: "x"}}, `@.a starts with "x"`},
		{&ExistsExpr{Path: a}, "exists(@.a)"},
		{&Literal{Kind: LitNull}, "null"},
		{&Literal{Kind: LitFloat, Float: 1.5e300}, "1.5e+300"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.expr.String())
		})
	}
}

func TestJSONPathString(t *testing.T) {
	q := &JSONPath{Mode: ModeLax, Expr: &Path{Root: RootDollar, Accessors: []Accessor{field("a")}}}
	assert.Equal(t, "lax $.a", q.String())
	q.Mode = ModeNone
	assert.Equal(t, "$.a", q.String())
	assert.Equal(t, "", (*JSONPath)(nil).String())
}

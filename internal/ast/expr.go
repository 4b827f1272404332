package ast

import (
	"strconv"
	"strings"

	"jpath/internal/source"
)

// Expr is any node that can appear where an expression is expected.
type Expr interface {
	Span() source.Span
	String() string
	exprNode()
}

type LitKind uint8

const (
	LitNull LitKind = iota
	LitBool
	LitInt
	LitFloat
	LitString
)

type Literal struct {
	Kind  LitKind
	Bool  bool
	Int   int64
	Float float64
	Str   string // уже раскодированное и NFC-нормализованное значение
	Sp    source.Span
}

func (l *Literal) Span() source.Span { return l.Sp }

func (l *Literal) String() string {
	switch l.Kind {
	case LitBool:
		return strconv.FormatBool(l.Bool)
	case LitInt:
		return strconv.FormatInt(l.Int, 10)
	case LitFloat:
		s := strconv.FormatFloat(l.Float, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eIN") {
			s += ".0"
		}
		return s
	case LitString:
		return QuoteString(l.Str, '"')
	}
	return "null"
}

func (*Literal) exprNode() {}

type UnaryOp uint8

const (
	UnaryNot UnaryOp = iota // !
	UnaryNeg                // -
)

type UnaryExpr struct {
	Op UnaryOp
	X  Expr
	Sp source.Span
}

func (u *UnaryExpr) Span() source.Span { return u.Sp }

func (u *UnaryExpr) String() string {
	if u.Op == UnaryNot {
		return "!" + wrap(u.X, precedence(u.X) < precNot)
	}
	return "-" + wrap(u.X, precedence(u.X) < precUnary)
}

func (*UnaryExpr) exprNode() {}

type BinaryOp uint8

const (
	BinOr BinaryOp = iota
	BinAnd
	BinEq
	BinNe
	BinLt
	BinLe
	BinGt
	BinGe
	BinLikeRegex
	BinStartsWith
	BinAdd
	BinSub
	BinMul
	BinDiv
	BinMod
)

var binaryOpText = [...]string{
	BinOr:         "||",
	BinAnd:        "&&",
	BinEq:         "==",
	BinNe:         "!=",
	BinLt:         "<",
	BinLe:         "<=",
	BinGt:         ">",
	BinGe:         ">=",
	BinLikeRegex:  "like_regex",
	BinStartsWith: "starts with",
	BinAdd:        "+",
	BinSub:        "-",
	BinMul:        "*",
	BinDiv:        "/",
	BinMod:        "%",
}

func (op BinaryOp) String() string {
	if int(op) < len(binaryOpText) {
		return binaryOpText[op]
	}
	return "?"
}

// Precedence returns the binding strength of op; higher binds tighter.
func (op BinaryOp) Precedence() int {
	switch op {
	case BinOr:
		return precOr
	case BinAnd:
		return precAnd
	case BinAdd, BinSub:
		return precSum
	case BinMul, BinDiv, BinMod:
		return precProduct
	}
	return precCompare
}

type BinaryExpr struct {
	Op BinaryOp
	X  Expr
	Y  Expr
	Sp source.Span
}

func (b *BinaryExpr) Span() source.Span { return b.Sp }

func (b *BinaryExpr) String() string {
	p := b.Op.Precedence()
	// сравнения не цепляются: (a == b) == c
	left := precedence(b.X) < p || (p == precCompare && precedence(b.X) == p)
	right := precedence(b.Y) <= p
	return wrap(b.X, left) + " " + b.Op.String() + " " + wrap(b.Y, right)
}

func (*BinaryExpr) exprNode() {}

// ExistsExpr is `exists(path)`.
type ExistsExpr struct {
	Path *Path
	Sp   source.Span
}

func (e *ExistsExpr) Span() source.Span { return e.Sp }

func (e *ExistsExpr) String() string {
	return "exists(" + e.Path.String() + ")"
}

func (*ExistsExpr) exprNode() {}

const (
	precOr = iota + 1
	precAnd
	precNot
	precCompare
	precSum
	precProduct
	precUnary
	precPrimary
)

func precedence(e Expr) int {
	switch n := e.(type) {
	case *BinaryExpr:
		return n.Op.Precedence()
	case *UnaryExpr:
		if n.Op == UnaryNot {
			return precNot
		}
		return precUnary
	}
	return precPrimary
}

func wrap(e Expr, paren bool) string {
	if paren {
		return "(" + exprString(e) + ")"
	}
	return exprString(e)
}

func exprString(e Expr) string {
	if e == nil {
		return ""
	}
	return e.String()
}

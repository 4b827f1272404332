package parser

import (
	"jpath/internal/ast"
)

// Операторы одного уровня приоритета. Порядок в таблице определяет порядок
// в сообщении "expected ...".
var (
	orOps      = []opEntry{{"||", ast.BinOr}}
	andOps     = []opEntry{{"&&", ast.BinAnd}}
	compareOps = []opEntry{
		{"==", ast.BinEq}, {"!=", ast.BinNe},
		{"<", ast.BinLt}, {"<=", ast.BinLe},
		{">", ast.BinGt}, {">=", ast.BinGe},
	}
	sumOps     = []opEntry{{"+", ast.BinAdd}, {"-", ast.BinSub}}
	productOps = []opEntry{{"*", ast.BinMul}, {"/", ast.BinDiv}, {"%", ast.BinMod}}
)

type opEntry struct {
	text string
	op   ast.BinaryOp
}

// binaryOp matches any operator of the table.
func binaryOp(table []opEntry) parseFn[ast.BinaryOp] {
	ps := make([]parseFn[ast.BinaryOp], 0, len(table))
	for _, e := range table {
		ps = append(ps, constant(e.op, matchText(e.text)))
	}
	return alt(ps...)
}

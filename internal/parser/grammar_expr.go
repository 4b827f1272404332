package parser

import (
	"jpath/internal/ast"
	"jpath/internal/token"
)

// query := mode? expr EOF
func query(in Input) (Input, *ast.JSONPath, *Error) {
	rest, mode, _ := opt(queryMode)(in)
	rest, expr, err := expression(rest)
	if err != nil {
		return in, nil, err
	}
	end, _, err := eof(rest)
	if err != nil {
		return in, nil, err
	}
	q := &ast.JSONPath{Expr: expr, Span: rest.SpanFrom(in)}
	if mode != nil {
		q.Mode = *mode
	}
	return end, q, nil
}

func queryMode(in Input) (Input, ast.Mode, *Error) {
	return alt(
		constant(ast.ModeStrict, matchToken(token.KwStrict)),
		constant(ast.ModeLax, matchToken(token.KwLax)),
	)(in)
}

func expression(in Input) (Input, ast.Expr, *Error) {
	return orExpr(in)
}

func orExpr(in Input) (Input, ast.Expr, *Error) {
	return binaryChain(andExpr, binaryOp(orOps))(in)
}

func andExpr(in Input) (Input, ast.Expr, *Error) {
	return binaryChain(notExpr, binaryOp(andOps))(in)
}

// not := '!' not | predicate
func notExpr(in Input) (Input, ast.Expr, *Error) {
	return alt(
		prefixed("!", ast.UnaryNot, notExpr),
		predicate,
	)(in)
}

// predicate := sum (cmpop sum | 'like_regex' string | 'starts' 'with' string)?
func predicate(in Input) (Input, ast.Expr, *Error) {
	rest, x, err := sumExpr(in)
	if err != nil {
		return in, nil, err
	}
	tail := alt(
		pair(binaryOp(compareOps), sumExpr),
		pair(constant(ast.BinLikeRegex, matchToken(token.KwLikeRegex)), stringLiteral),
		pair(constant(ast.BinStartsWith, pair(matchToken(token.KwStarts), matchToken(token.KwWith))), stringLiteral),
	)
	rest, t, _ := opt(tail)(rest)
	if t == nil {
		return rest, x, nil
	}
	return rest, &ast.BinaryExpr{Op: t.First, X: x, Y: t.Second, Sp: rest.SpanFrom(in)}, nil
}

func sumExpr(in Input) (Input, ast.Expr, *Error) {
	return binaryChain(productExpr, binaryOp(sumOps))(in)
}

func productExpr(in Input) (Input, ast.Expr, *Error) {
	return binaryChain(unaryExpr, binaryOp(productOps))(in)
}

// unary := '-' int | '-' unary | primary
func unaryExpr(in Input) (Input, ast.Expr, *Error) {
	if minus := in.Peek(); minus.Kind.IsPunctOrOp() && minus.Text == "-" && in.Advance().Peek().Kind == token.IntLit {
		return negIntLiteral(in)
	}
	return alt(
		prefixed("-", ast.UnaryNeg, unaryExpr),
		primary,
	)(in)
}

// primary := literal | path | exists | '(' expr ')'
func primary(in Input) (Input, ast.Expr, *Error) {
	return alt(
		literal,
		pathExpr,
		existsExpr,
		named("expression", delimited(matchText("("), expression, matchText(")"))),
	)(in)
}

func existsExpr(in Input) (Input, ast.Expr, *Error) {
	rest, p, err := named("exists predicate",
		preceded(matchToken(token.KwExists), delimited(matchText("("), path, matchText(")"))),
	)(in)
	if err != nil {
		return in, nil, err
	}
	return rest, &ast.ExistsExpr{Path: p, Sp: rest.SpanFrom(in)}, nil
}

// binaryChain parses operand (op operand)* into a left-associative tree.
func binaryChain(operand parseFn[ast.Expr], op parseFn[ast.BinaryOp]) parseFn[ast.Expr] {
	return func(in Input) (Input, ast.Expr, *Error) {
		rest, x, err := operand(in)
		if err != nil {
			return in, nil, err
		}
		rest, tail, _ := many0(pair(op, operand))(rest)
		for _, t := range tail {
			x = &ast.BinaryExpr{Op: t.First, X: x, Y: t.Second, Sp: x.Span().Cover(t.Second.Span())}
		}
		return rest, x, nil
	}
}

func prefixed(text string, op ast.UnaryOp, operand parseFn[ast.Expr]) parseFn[ast.Expr] {
	return func(in Input) (Input, ast.Expr, *Error) {
		rest, x, err := preceded(matchText(text), operand)(in)
		if err != nil {
			return in, nil, err
		}
		return rest, &ast.UnaryExpr{Op: op, X: x, Sp: rest.SpanFrom(in)}, nil
	}
}

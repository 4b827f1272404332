package parser

import (
	"strconv"

	"golang.org/x/text/unicode/norm"

	"jpath/internal/ast"
	"jpath/internal/lexer"
	"jpath/internal/token"
)

// literal := null | true | false | float | int | string
func literal(in Input) (Input, ast.Expr, *Error) {
	return alt(
		keywordLiteral(token.KwNull, func(l *ast.Literal) { l.Kind = ast.LitNull }),
		keywordLiteral(token.KwTrue, func(l *ast.Literal) { l.Kind, l.Bool = ast.LitBool, true }),
		keywordLiteral(token.KwFalse, func(l *ast.Literal) { l.Kind = ast.LitBool }),
		floatLiteral,
		intLiteral,
		stringLiteral,
	)(in)
}

func keywordLiteral(k token.Kind, fill func(*ast.Literal)) parseFn[ast.Expr] {
	return mapFn(matchToken(k), func(tok token.Token) ast.Expr {
		l := &ast.Literal{Sp: tok.Span}
		fill(l)
		return l
	})
}

func intLiteral(in Input) (Input, ast.Expr, *Error) {
	return mapRes(matchToken(token.IntLit), func(tok token.Token) (ast.Expr, *Reason) {
		v, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			r := ReasonFromIntError(tok.Text, err)
			return nil, &r
		}
		return &ast.Literal{Kind: ast.LitInt, Int: v, Sp: tok.Span}, nil
	})(in)
}

func floatLiteral(in Input) (Input, ast.Expr, *Error) {
	return mapRes(matchToken(token.FloatLit), func(tok token.Token) (ast.Expr, *Reason) {
		v, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			r := ReasonFromFloatError(err)
			return nil, &r
		}
		return &ast.Literal{Kind: ast.LitFloat, Float: v, Sp: tok.Span}, nil
	})(in)
}

func stringLiteral(in Input) (Input, ast.Expr, *Error) {
	return mapRes(matchToken(token.StringLit), func(tok token.Token) (ast.Expr, *Reason) {
		s, r := decodeString(tok.Text)
		if r != nil {
			return nil, r
		}
		return &ast.Literal{Kind: ast.LitString, Str: s, Sp: tok.Span}, nil
	})(in)
}

// negIntLiteral folds the sign into the literal, otherwise -9223372036854775808
// would overflow before negation.
func negIntLiteral(in Input) (Input, ast.Expr, *Error) {
	return mapRes(pair(matchText("-"), matchToken(token.IntLit)), func(t tuple[token.Token, token.Token]) (ast.Expr, *Reason) {
		lit := "-" + t.Second.Text
		v, err := strconv.ParseInt(lit, 10, 64)
		if err != nil {
			r := ReasonFromIntError(lit, err)
			return nil, &r
		}
		return &ast.Literal{Kind: ast.LitInt, Int: v, Sp: t.First.Span.Cover(t.Second.Span)}, nil
	})(in)
}

// signedInt := '-'? int
func signedInt(in Input) (Input, int64, *Error) {
	rest, minus, _ := opt(matchText("-"))(in)
	rest, tok, err := matchToken(token.IntLit)(rest)
	if err != nil {
		return in, 0, err
	}
	lit := tok.Text
	if minus != nil {
		lit = "-" + lit
	}
	v, perr := strconv.ParseInt(lit, 10, 64)
	if perr != nil {
		return in, 0, NewError(in, ReasonFromIntError(lit, perr))
	}
	return rest, v, nil
}

// decodeString returns the NFC-normalised value of a string literal token.
func decodeString(text string) (string, *Reason) {
	s, err := lexer.Unquote(text)
	if err != nil {
		r := Other("invalid escape sequence in string literal")
		return "", &r
	}
	return norm.NFC.String(s), nil
}

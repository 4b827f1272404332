package parser

import (
	"jpath/internal/ast"
	"jpath/internal/token"
)

func pathExpr(in Input) (Input, ast.Expr, *Error) {
	rest, p, err := path(in)
	if err != nil {
		return in, nil, err
	}
	return rest, p, nil
}

// path := ('$' | '@') accessor*
func path(in Input) (Input, *ast.Path, *Error) {
	return named("json path", func(in Input) (Input, *ast.Path, *Error) {
		rest, root, err := alt(
			constant(ast.RootDollar, matchText("$")),
			constant(ast.RootAt, matchText("@")),
		)(in)
		if err != nil {
			return in, nil, err
		}
		rest, accs, _ := many0(accessor)(rest)
		return rest, &ast.Path{Root: root, Accessors: accs, Sp: rest.SpanFrom(in)}, nil
	})(in)
}

func accessor(in Input) (Input, ast.Accessor, *Error) {
	rest, acc, err := alt(
		dotAccessor,
		descendantAccessor,
		bracketAccessor,
		postfixFilter,
	)(in)
	if err != nil {
		return in, ast.Accessor{}, err
	}
	acc.Span = rest.SpanFrom(in)
	return rest, acc, nil
}

// '.' '*' | '.' name
func dotAccessor(in Input) (Input, ast.Accessor, *Error) {
	return preceded(matchText("."), alt(
		constant(ast.Accessor{Kind: ast.AccDotWildcard}, matchText("*")),
		mapFn(fieldName, func(id ast.Identifier) ast.Accessor {
			return ast.Accessor{Kind: ast.AccDotField, Field: id}
		}),
	))(in)
}

// '..' '*' | '..' name
func descendantAccessor(in Input) (Input, ast.Accessor, *Error) {
	return preceded(matchText(".."), alt(
		constant(ast.Accessor{Kind: ast.AccDescWildcard}, matchText("*")),
		mapFn(fieldName, func(id ast.Identifier) ast.Accessor {
			return ast.Accessor{Kind: ast.AccDescField, Field: id}
		}),
	))(in)
}

func bracketAccessor(in Input) (Input, ast.Accessor, *Error) {
	return named("bracket selector", delimited(matchText("["), selector, matchText("]")))(in)
}

// '?' '(' expr ')' после пути
func postfixFilter(in Input) (Input, ast.Accessor, *Error) {
	return mapFn(filterBody, func(e ast.Expr) ast.Accessor {
		return ast.Accessor{Kind: ast.AccPostfixFilter, Filter: e}
	})(in)
}

func filterBody(in Input) (Input, ast.Expr, *Error) {
	return named("filter expression",
		preceded(matchText("?"), delimited(matchText("("), expression, matchText(")"))),
	)(in)
}

// selector := '*' | filter | slice | string (',' string)* | index (',' index)*
func selector(in Input) (Input, ast.Accessor, *Error) {
	return alt(
		constant(ast.Accessor{Kind: ast.AccBracketWildcard}, matchText("*")),
		mapFn(filterBody, func(e ast.Expr) ast.Accessor {
			return ast.Accessor{Kind: ast.AccFilter, Filter: e}
		}),
		mapFn(named("array slice", slice), func(s ast.Slice) ast.Accessor {
			return ast.Accessor{Kind: ast.AccSlice, Slice: s}
		}),
		mapFn(separated1(quotedName, matchText(",")), func(ids []ast.Identifier) ast.Accessor {
			return ast.Accessor{Kind: ast.AccBracketFields, Fields: ids}
		}),
		mapFn(named("array index", separated1(arrayIndex, matchText(","))), func(idx []ast.ArrayIndex) ast.Accessor {
			return ast.Accessor{Kind: ast.AccBracketIndices, Indices: idx}
		}),
	)(in)
}

// slice := int? ':' int? (':' int?)?
func slice(in Input) (Input, ast.Slice, *Error) {
	rest, start, _ := opt(signedInt)(in)
	rest, _, err := matchText(":")(rest)
	if err != nil {
		return in, ast.Slice{}, err
	}
	rest, end, _ := opt(signedInt)(rest)
	out := ast.Slice{Start: start, End: end}

	afterColon, _, err := matchText(":")(rest)
	if err != nil {
		return rest, out, nil
	}
	stepIn := afterColon
	rest, out.Step, _ = opt(signedInt)(afterColon)
	if out.Step != nil && *out.Step == 0 {
		return in, ast.Slice{}, NewError(stepIn, Other("slice step cannot be zero"))
	}
	return rest, out, nil
}

// index := bound ('to' bound)?
func arrayIndex(in Input) (Input, ast.ArrayIndex, *Error) {
	rest, start, err := indexBound(in)
	if err != nil {
		return in, ast.ArrayIndex{}, err
	}
	rest, end, _ := opt(preceded(matchToken(token.KwTo), indexBound))(rest)
	return rest, ast.ArrayIndex{Start: start, End: end}, nil
}

// bound := int | 'last' ('-' int)?
func indexBound(in Input) (Input, ast.IndexBound, *Error) {
	return alt(
		mapFn(signedInt, func(v int64) ast.IndexBound { return ast.IndexBound{Value: v} }),
		lastBound,
	)(in)
}

func lastBound(in Input) (Input, ast.IndexBound, *Error) {
	rest, _, err := matchToken(token.KwLast)(in)
	if err != nil {
		return in, ast.IndexBound{}, err
	}
	afterMinus, _, err := matchText("-")(rest)
	if err != nil {
		return rest, ast.IndexBound{Last: true}, nil
	}
	next, n, err := signedInt(afterMinus)
	if err != nil {
		return rest, ast.IndexBound{Last: true}, nil
	}
	if n < 0 {
		return in, ast.IndexBound{}, NewError(afterMinus, Other("offset after `last` must not be negative"))
	}
	return next, ast.IndexBound{Last: true, Value: n}, nil
}

// fieldName := identifier | keyword | string
func fieldName(in Input) (Input, ast.Identifier, *Error) {
	return alt(bareName, quotedName)(in)
}

// bareName accepts identifiers and keywords used as names ($.last, $.null).
func bareName(in Input) (Input, ast.Identifier, *Error) {
	tok := in.Peek()
	if tok.Kind == token.Ident || tok.Kind.IsKeyword() {
		return in.Advance(), ast.Identifier{Name: tok.Text, Span: tok.Span}, nil
	}
	return in, ast.Identifier{}, NewError(in, ExpectToken(token.Ident))
}

func quotedName(in Input) (Input, ast.Identifier, *Error) {
	return mapRes(matchToken(token.StringLit), func(tok token.Token) (ast.Identifier, *Reason) {
		s, r := decodeString(tok.Text)
		if r != nil {
			return ast.Identifier{}, r
		}
		return ast.Identifier{Name: s, Quote: rune(tok.Text[0]), Span: tok.Span}, nil
	})(in)
}

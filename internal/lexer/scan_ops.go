package lexer

import (
	"jpath/internal/diag"
	"jpath/internal/token"
)

// Жадность: сначала 2-символьные, затем 1-символьные.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: k, Span: sp, Text: lx.text(sp)}
	}

	switch {
	case lx.try2('.', '.'):
		return emit(token.DotDot)
	case lx.try2('=', '='):
		return emit(token.EqEq)
	case lx.try2('!', '='):
		return emit(token.BangEq)
	case lx.try2('<', '='):
		return emit(token.LtEq)
	case lx.try2('>', '='):
		return emit(token.GtEq)
	case lx.try2('&', '&'):
		return emit(token.AndAnd)
	case lx.try2('|', '|'):
		return emit(token.OrOr)
	}

	ch := lx.cursor.Bump()
	switch ch {
	case '$':
		return emit(token.Dollar)
	case '@':
		return emit(token.At)
	case '.':
		return emit(token.Dot)
	case '*':
		return emit(token.Star)
	case '[':
		return emit(token.LBracket)
	case ']':
		return emit(token.RBracket)
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case ',':
		return emit(token.Comma)
	case ':':
		return emit(token.Colon)
	case '?':
		return emit(token.Question)
	case '<':
		return emit(token.Lt)
	case '>':
		return emit(token.Gt)
	case '!':
		return emit(token.Bang)
	case '+':
		return emit(token.Plus)
	case '-':
		return emit(token.Minus)
	case '/':
		return emit(token.Slash)
	case '%':
		return emit(token.Percent)
	default:
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnknownChar, sp, "unknown character "+quoteRune(rune(ch)))
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}
}

package lexer

import (
	"jpath/internal/diag"
	"jpath/internal/token"
)

// scanString читает "..." или '...'. Escape-последовательности только
// пропускаются здесь, декодирование: в Unquote. Неверный escape даёт
// LexBadEscape, но токен остаётся StringLit.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == quote {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			text := lx.text(sp)
			if _, err := Unquote(text); err != nil {
				lx.errLex(diag.LexBadEscape, sp, err.Error())
			}
			return token.Token{Kind: token.StringLit, Span: sp, Text: text}
		}
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.cursor.Bump()
			continue
		}
		if b == '\n' {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp, "newline in string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

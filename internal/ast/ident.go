package ast

import (
	"strings"

	"jpath/internal/source"
)

// Identifier is a field name. Quote is 0 for a bare name, otherwise the quote
// character it was written with.
type Identifier struct {
	Name  string
	Quote rune
	Span  source.Span
}

func (id Identifier) IsQuoted() bool {
	return id.Quote != 0
}

func (id Identifier) String() string {
	if id.Quote == 0 {
		return id.Name
	}
	return QuoteString(id.Name, id.Quote)
}

// QuoteString renders s as a literal the lexer reads back to the same value.
func QuoteString(s string, q rune) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteRune(q)
	for _, r := range s {
		switch r {
		case q, '\\':
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		default:
			if r < 0x20 {
				sb.WriteString(`\u00`)
				sb.WriteByte(hexDigits[r>>4])
				sb.WriteByte(hexDigits[r&0xF])
				continue
			}
			sb.WriteRune(r)
		}
	}
	sb.WriteRune(q)
	return sb.String()
}

const hexDigits = "0123456789abcdef"

func writeCommaList[T interface{ String() string }](sb *strings.Builder, items []T) {
	for i, item := range items {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(item.String())
	}
}

package lexer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

var errBadQuote = errors.New("string literal must be quoted with ' or \"")

// Unquote decodes a string literal token text (including its quotes).
func Unquote(lit string) (string, error) {
	if len(lit) < 2 {
		return "", errBadQuote
	}
	q := lit[0]
	if (q != '"' && q != '\'') || lit[len(lit)-1] != q {
		return "", errBadQuote
	}
	body := lit[1 : len(lit)-1]
	if !strings.ContainsRune(body, '\\') {
		return body, nil
	}

	var sb strings.Builder
	sb.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			sb.WriteByte(c)
			continue
		}
		i++
		if i >= len(body) {
			return "", errors.New("trailing backslash in string literal")
		}
		switch body[i] {
		case '"', '\'', '\\', '/':
			sb.WriteByte(body[i])
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case 'u':
			r, n, err := decodeU(body[i+1:])
			if err != nil {
				return "", err
			}
			i += n
			// суррогатная пара 😀
			if utf16.IsSurrogate(r) && strings.HasPrefix(body[i+1:], `\u`) {
				r2, n2, err2 := decodeU(body[i+3:])
				if err2 == nil {
					if dec := utf16.DecodeRune(r, r2); dec != utf8.RuneError {
						r = dec
						i += 2 + n2
					}
				}
			}
			sb.WriteRune(r)
		default:
			return "", fmt.Errorf("unknown escape sequence \\%c", body[i])
		}
	}
	return sb.String(), nil
}

func decodeU(s string) (rune, int, error) {
	if len(s) < 4 {
		return 0, 0, errors.New("short \\u escape")
	}
	for k := range 4 {
		if !isHex(s[k]) {
			return 0, 0, fmt.Errorf("invalid hex digit %q in \\u escape", s[k])
		}
	}
	v, err := strconv.ParseUint(s[:4], 16, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid \\u escape: %w", err)
	}
	return rune(v), 4, nil
}

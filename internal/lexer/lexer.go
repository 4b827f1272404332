package lexer

import (
	"jpath/internal/source"
	"jpath/internal/token"
)

// Lexer turns one query (a byte range of a source.File) into tokens.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1 элементный буфер для токена
}

// New creates a lexer over the whole file.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// NewRange creates a lexer over file bytes [start, end). Token spans stay
// file-absolute, so several queries of one file share a single line index.
func NewRange(file *source.File, start, end uint32, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewRangeCursor(file, start, end),
		opts:   opts,
	}
}

// Next возвращает следующий значимый токен. После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipWhitespace()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.EmptySpan(),
		}
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStartByte(ch), ch >= utf8RuneSelf:
		return lx.scanIdentOrKeyword()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '"' || ch == '\'':
		return lx.scanString()
	default:
		return lx.scanOperatorOrPunct()
	}
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// All drains the lexer and returns every token including the trailing EOF.
func (lx *Lexer) All() []token.Token {
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

// EmptySpan returns the empty span at the current cursor position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) skipWhitespace() {
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case ' ', '\t', '\n', '\r':
			lx.cursor.Bump()
		default:
			return
		}
	}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}

// Tokenize lexes the whole file and returns the stream ending with EOF.
func Tokenize(file *source.File, opts Options) []token.Token {
	return New(file, opts).All()
}

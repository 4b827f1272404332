package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0
	// Лексические
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadEscape          Code = 1003
	LexBadNumber          Code = 1004

	// Парсерные
	SynInfo            Code = 2000
	SynUnexpectedToken Code = 2001

	// Ввод-вывод
	IOLoadFileError Code = 4001
	IOCacheError    Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode:           "Unknown error",
	LexInfo:               "Lexical information",
	LexUnknownChar:        "Unknown character",
	LexUnterminatedString: "Unterminated string literal",
	LexBadEscape:          "Invalid escape sequence",
	LexBadNumber:          "Malformed number literal",
	SynInfo:               "Syntax information",
	SynUnexpectedToken:    "Syntax error",
	IOLoadFileError:       "Unable to load file",
	IOCacheError:          "Unable to use check cache",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

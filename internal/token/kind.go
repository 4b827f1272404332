package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the query.
	EOF

	// Ident represents an unquoted member name.
	Ident
	// IntLit represents an integer literal.
	IntLit
	// FloatLit represents a float literal.
	FloatLit
	// StringLit represents a single- or double-quoted string literal.
	StringLit

	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false
	// KwNull represents the 'null' keyword.
	KwNull // null
	// KwLast represents the 'last' keyword.
	KwLast // last
	// KwTo represents the 'to' keyword.
	KwTo // to
	// KwExists represents the 'exists' keyword.
	KwExists // exists
	// KwStrict represents the 'strict' keyword.
	KwStrict // strict
	// KwLax represents the 'lax' keyword.
	KwLax // lax
	// KwLikeRegex represents the 'like_regex' keyword.
	KwLikeRegex // like_regex
	// KwStarts represents the 'starts' keyword.
	KwStarts // starts
	// KwWith represents the 'with' keyword.
	KwWith // with

	Dollar   // $
	At       // @
	Dot      // .
	DotDot   // ..
	Star     // *
	LBracket // [
	RBracket // ]
	LParen   // (
	RParen   // )
	Comma    // ,
	Colon    // :
	Question // ?

	EqEq    // ==
	BangEq  // !=
	Lt      // <
	LtEq    // <=
	Gt      // >
	GtEq    // >=
	AndAnd  // &&
	OrOr    // ||
	Bang    // !
	Plus    // +
	Minus   // -
	Slash   // /
	Percent // %
)

var kindNames = [...]string{
	Invalid:     "invalid token",
	EOF:         "end of input",
	Ident:       "identifier",
	IntLit:      "integer",
	FloatLit:    "float",
	StringLit:   "string",
	KwTrue:      "true",
	KwFalse:     "false",
	KwNull:      "null",
	KwLast:      "last",
	KwTo:        "to",
	KwExists:    "exists",
	KwStrict:    "strict",
	KwLax:       "lax",
	KwLikeRegex: "like_regex",
	KwStarts:    "starts",
	KwWith:      "with",
	Dollar:      "$",
	At:          "@",
	Dot:         ".",
	DotDot:      "..",
	Star:        "*",
	LBracket:    "[",
	RBracket:    "]",
	LParen:      "(",
	RParen:      ")",
	Comma:       ",",
	Colon:       ":",
	Question:    "?",
	EqEq:        "==",
	BangEq:      "!=",
	Lt:          "<",
	LtEq:        "<=",
	Gt:          ">",
	GtEq:        ">=",
	AndAnd:      "&&",
	OrOr:        "||",
	Bang:        "!",
	Plus:        "+",
	Minus:       "-",
	Slash:       "/",
	Percent:     "%",
}

// String returns the display name used in diagnostics: the lexeme for keywords and
// punctuation, a class name for everything else.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown"
}

// IsKeyword reports whether k is a reserved word. Keyword expectations are quoted
// with backticks in diagnostics, token classes with angle brackets.
func (k Kind) IsKeyword() bool {
	return k >= KwTrue && k <= KwWith
}

// IsPunctOrOp reports whether k is punctuation or an operator.
func (k Kind) IsPunctOrOp() bool {
	return k >= Dollar && k <= Percent
}

// IsEOF reports whether k marks the end of input.
func (k Kind) IsEOF() bool { return k == EOF }

package token

var keywords = map[string]Kind{
	"true":       KwTrue,
	"false":      KwFalse,
	"null":       KwNull,
	"last":       KwLast,
	"to":         KwTo,
	"exists":     KwExists,
	"strict":     KwStrict,
	"lax":        KwLax,
	"like_regex": KwLikeRegex,
	"starts":     KwStarts,
	"with":       KwWith,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые: только lowercase версии распознаются.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

package driver

import (
	"jpath/internal/diag"
	"jpath/internal/lexer"
	"jpath/internal/source"
	"jpath/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize lexes the whole file; comment lines are lexed too, so `#`
// shows up as an unknown character.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeFile(fs, fileID, maxDiagnostics), nil
}

// TokenizeExpr lexes a query given on the command line.
func TokenizeExpr(expr string, maxDiagnostics int) *TokenizeResult {
	fs := source.NewFileSet()
	return tokenizeFile(fs, fs.AddVirtual(ExprFileName, []byte(expr)), maxDiagnostics)
}

func tokenizeFile(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) *TokenizeResult {
	file := fs.Get(fileID)
	bag := diag.NewBag(bagLimit(maxDiagnostics))
	tokens := lexer.Tokenize(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}
}

// bagLimit maps "0 = unlimited" onto the Bag limit.
func bagLimit(maxDiagnostics int) int {
	if maxDiagnostics <= 0 {
		return int(^uint16(0))
	}
	return maxDiagnostics
}

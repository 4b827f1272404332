package driver

import (
	"context"

	"jpath/internal/ast"
	"jpath/internal/diag"
	"jpath/internal/parser"
	"jpath/internal/source"
)

// ExprFileName names the virtual file holding a query passed with -e.
const ExprFileName = "<expr>"

// ParsedQuery is one line of a query file. Query is nil when parsing failed.
type ParsedQuery struct {
	Line  QueryLine
	Query *ast.JSONPath
}

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Queries []ParsedQuery
	Bag     *diag.Bag
}

// Parse parses every query of a query file.
func Parse(ctx context.Context, path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)
	return parseLines(ctx, fs, file, SplitQueries(file.Content), maxDiagnostics), nil
}

// ParseExpr parses a single query given on the command line.
func ParseExpr(ctx context.Context, expr string, maxDiagnostics int) *ParseResult {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(ExprFileName, []byte(expr)))
	return parseLines(ctx, fs, file, []QueryLine{wholeFile(file)}, maxDiagnostics)
}

func wholeFile(file *source.File) QueryLine {
	return QueryLine{Line: 1, Start: 0, End: offset(len(file.Content))}
}

func parseLines(ctx context.Context, fs *source.FileSet, file *source.File, lines []QueryLine, maxDiagnostics int) *ParseResult {
	bag := diag.NewBag(bagLimit(maxDiagnostics))
	opts := parser.Options{
		Reporter: diag.BagReporter{Bag: bag},
		Session:  parser.NewSession(),
	}
	res := &ParseResult{FileSet: fs, File: file, Bag: bag}
	for _, ln := range lines {
		r := parser.ParseRange(ctx, file, ln.Start, ln.End, opts)
		res.Queries = append(res.Queries, ParsedQuery{Line: ln, Query: r.Query})
	}
	bag.Sort()
	bag.Dedup()
	return res
}

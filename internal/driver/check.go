package driver

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"jpath/internal/diag"
	"jpath/internal/diagfmt"
	"jpath/internal/logging"
	"jpath/internal/observ"
	"jpath/internal/parser"
	"jpath/internal/source"
	"jpath/internal/trace"
)

type CheckOptions struct {
	MaxDiagnostics int // 0: без лимита
	Jobs           int // 0: GOMAXPROCS
	Cache          *DiskCache
	Timer          *observ.Timer
}

// FileResult is the outcome of checking one query file.
type FileResult struct {
	Path    string
	FileID  source.FileID
	Queries int
	Failed  int
	Bag     *diag.Bag
	Cached  bool
}

type CheckResult struct {
	FileSet *source.FileSet
	Files   []FileResult
}

func (r *CheckResult) Stats() diagfmt.SummaryStats {
	var s diagfmt.SummaryStats
	for _, f := range r.Files {
		s.Files++
		s.Queries += f.Queries
		s.Failed += f.Failed
		s.Errors += f.Bag.ErrorCount()
		if f.Cached {
			s.Cached++
		}
	}
	return s
}

// Bag merges the per-file bags, sorted by position, without duplicates.
func (r *CheckResult) Bag() *diag.Bag {
	out := diag.NewBag(0)
	for _, f := range r.Files {
		out.Merge(f.Bag)
	}
	out.Sort()
	out.Dedup()
	return out
}

func (r *CheckResult) HasErrors() bool {
	for _, f := range r.Files {
		if f.Bag.HasErrors() {
			return true
		}
	}
	return false
}

// Check checks a query file, or every query file under a directory.
func Check(ctx context.Context, path string, opts CheckOptions) (*CheckResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return CheckDir(ctx, path, opts)
	}
	return CheckPaths(ctx, []string{path}, opts)
}

// CheckExpr checks a single query given on the command line. The cache is
// not consulted.
func CheckExpr(ctx context.Context, expr string, opts CheckOptions) *CheckResult {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(ExprFileName, []byte(expr)))
	opts.Cache = nil
	res := checkLines(ctx, file, []QueryLine{wholeFile(file)}, opts)
	return &CheckResult{FileSet: fs, Files: []FileResult{res}}
}

// checkFile parses every query of file, going through the cache when one is set.
func checkFile(ctx context.Context, file *source.File, opts CheckOptions) FileResult {
	parent := trace.CurrentSpan(ctx).SpanID
	span := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, "file", parent).
		WithExtra("path", file.Path)
	ctx = span.Context(ctx)
	done := opts.Timer.Track("check " + file.Path)
	logger := logging.FromContext(ctx)

	key := checkKey(Digest(file.Hash), opts.MaxDiagnostics)
	var cacheErrs []error

	var cached DiskPayload
	hit, err := opts.Cache.Get(key, &cached)
	if err != nil {
		cacheErrs = append(cacheErrs, err)
	}
	if hit {
		bag := diag.NewBag(bagLimit(opts.MaxDiagnostics))
		cached.restore(file.ID, bag)
		logger.Debug("cache hit", logging.FieldPath, file.Path, logging.FieldKey, shortKey(key))
		span.End("cached")
		done("cached")
		return FileResult{
			Path:    file.Path,
			FileID:  file.ID,
			Queries: cached.Queries,
			Failed:  cached.Failed,
			Bag:     bag,
			Cached:  true,
		}
	}

	res := checkLines(ctx, file, SplitQueries(file.Content), opts)
	if opts.Cache != nil {
		payload := payloadFromBag(file.Path, Digest(file.Hash), res.Queries, res.Failed, res.Bag)
		if err := opts.Cache.Put(key, payload); err != nil {
			cacheErrs = append(cacheErrs, err)
		}
	}
	for _, err := range cacheErrs {
		logger.Warn("check cache", logging.FieldPath, file.Path, logging.FieldError, err)
		diag.ReportWarning(diag.BagReporter{Bag: res.Bag}, diag.IOCacheError,
			source.Span{File: file.ID}, fmt.Sprintf("check cache unavailable: %v", err)).Emit()
	}

	logger.Debug("checked",
		logging.FieldPath, file.Path,
		logging.FieldQueries, res.Queries,
		logging.FieldFailed, res.Failed,
	)
	detail := "ok"
	if res.Failed > 0 {
		detail = "failed"
	}
	span.WithExtra("queries", strconv.Itoa(res.Queries)).End(detail)
	done(detail)
	return res
}

// checkLines reuses one parser session for all lines of a file.
func checkLines(ctx context.Context, file *source.File, lines []QueryLine, opts CheckOptions) FileResult {
	bag := diag.NewBag(bagLimit(opts.MaxDiagnostics))
	popts := parser.Options{
		Reporter: diag.BagReporter{Bag: bag},
		Session:  parser.NewSession(),
	}
	res := FileResult{Path: file.Path, FileID: file.ID, Queries: len(lines), Bag: bag}
	for _, ln := range lines {
		if !parser.ParseRange(ctx, file, ln.Start, ln.End, popts).OK() {
			res.Failed++
		}
	}
	return res
}

func shortKey(key Digest) string {
	return fmt.Sprintf("%x", key[:6])
}

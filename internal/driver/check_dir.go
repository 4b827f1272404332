package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"jpath/internal/diag"
	"jpath/internal/logging"
	"jpath/internal/source"
)

// listQueryFiles возвращает отсортированный список всех *.jsonpath файлов в директории
func listQueryFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, QueryExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// CheckDir checks every *.jsonpath file under dir in parallel. Paths in
// diagnostics are relative to dir.
func CheckDir(ctx context.Context, dir string, opts CheckOptions) (*CheckResult, error) {
	files, err := listQueryFiles(dir)
	if err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Debug("scanned directory", logging.FieldDir, dir, logging.FieldFiles, len(files))
	return checkFiles(ctx, source.NewFileSetWithBase(dir), files, opts)
}

// CheckPaths checks the given files and directories as one run.
func CheckPaths(ctx context.Context, paths []string, opts CheckOptions) (*CheckResult, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			// ошибку загрузки покажем диагностикой
			files = append(files, p)
			continue
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		found, err := listQueryFiles(p)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	return checkFiles(ctx, source.NewFileSet(), files, opts)
}

func checkFiles(ctx context.Context, fileSet *source.FileSet, files []string, opts CheckOptions) (*CheckResult, error) {
	res := &CheckResult{FileSet: fileSet}
	if len(files) == 0 {
		return res, nil
	}

	// Предзагружаем все файлы: FileSet не потокобезопасен на запись
	fileIDs := make([]source.FileID, len(files))
	loadErrors := make(map[int]error)
	for i, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[i] = err
			fileID = fileSet.AddVirtual(path, nil)
		}
		fileIDs[i] = fileID
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			// Проверка отмены
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			file := fileSet.Get(fileIDs[i])
			if loadErr, failed := loadErrors[i]; failed {
				bag := diag.NewBag(bagLimit(opts.MaxDiagnostics))
				diag.ReportError(diag.BagReporter{Bag: bag}, diag.IOLoadFileError,
					source.Span{File: file.ID}, "failed to load file: "+loadErr.Error()).Emit()
				logging.FromContext(gctx).Warn("load failed", logging.FieldPath, path, logging.FieldError, loadErr)
				results[i] = FileResult{Path: path, FileID: file.ID, Bag: bag}
				return nil
			}

			results[i] = checkFile(gctx, file, opts)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return res, err
	}
	res.Files = results
	return res, nil
}

// Package driver walks source trees and runs the rewrap pass over many
// files in parallel. Отказ на одном файле попадает в его Result и не
// останавливает группу.
package driver

import (
	"context"
	"crypto/sha256"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"pywrap/internal/diag"
	"pywrap/internal/rewrap"
	"pywrap/internal/source"
)

// Options controls one batch run.
type Options struct {
	MaxLineLength  int
	Extensions     []string // распознаваемые расширения, например [".py"]
	Check          bool     // не переписывать файлы, только определить нужность
	Stdout         bool     // вывод в Result.Output вместо записи на диск
	Jobs           int      // 0 → GOMAXPROCS
	MaxDiagnostics int
	Progress       ProgressSink
	Cache          *DiskCache // nil → без кэша
}

// Result captures the outcome for a single file.
type Result struct {
	Path    string
	FileID  source.FileID
	Changed bool
	Output  string // новый буфер; пуст при попадании в кэш без изменений
	Bag     *diag.Bag
	Err     error
	Elapsed time.Duration
}

// ListSourceFiles expands paths (files or directories) into a sorted list
// of files with recognized extensions. Явно указанный файл берём как есть,
// даже с чужим расширением.
func ListSourceFiles(paths []string, extensions []string) ([]string, error) {
	recognized := func(path string) bool {
		ext := strings.ToLower(filepath.Ext(path))
		for _, e := range extensions {
			if ext == strings.ToLower(e) {
				return true
			}
		}
		return false
	}

	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && recognized(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// WrapPaths rewraps every recognized file under paths in parallel and
// returns per-file results in the same order as the expanded file list.
func WrapPaths(ctx context.Context, paths []string, opts Options) (*source.FileSet, []Result, error) {
	files, err := ListSourceFiles(paths, opts.Extensions)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSet()
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// FileSet не потокобезопасен: грузим файлы до запуска группы
	results := make([]Result, len(files))
	fileIDs := make([]source.FileID, len(files))
	loaded := make([]bool, len(files))
	for i, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusWorking})
		id, err := fileSet.Load(path)
		if err != nil {
			bag := diag.NewBag(1)
			bag.Add(diag.Diagnostic{
				Severity: diag.SevError,
				Code:     diag.IOReadFailed,
				Message:  err.Error(),
			})
			results[i] = Result{Path: path, Bag: bag, Err: err}
			emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusError, Err: err})
			continue
		}
		fileIDs[i] = id
		loaded[i] = true
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		if !loaded[i] {
			continue
		}
		g.Go(func(i int, path string) func() error {
			return func() error {
				select {
				case <-gctx.Done():
					results[i] = Result{Path: path, FileID: fileIDs[i], Err: gctx.Err()}
					return nil
				default:
				}
				results[i] = wrapOne(fileSet.Get(fileIDs[i]), path, opts)
				return nil
			}
		}(i, path))
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// wrapOne processes a single already-loaded file.
func wrapOne(f *source.File, path string, opts Options) Result {
	started := time.Now()
	res := Result{Path: path, FileID: f.ID}

	maxDiagnostics := opts.MaxDiagnostics
	if maxDiagnostics <= 0 {
		maxDiagnostics = 100
	}
	res.Bag = diag.NewBag(maxDiagnostics)

	// кэш: этот контент при этой ширине уже был в бюджете
	var payload Payload
	if hit, err := opts.Cache.Get(f.Hash, &payload); err == nil && hit &&
		payload.Clean && payload.MaxLineLength == opts.MaxLineLength {
		emit(opts.Progress, Event{File: path, Stage: StageWrap, Status: StatusSkipped, Elapsed: time.Since(started)})
		res.Elapsed = time.Since(started)
		return res
	}

	emit(opts.Progress, Event{File: path, Stage: StageWrap, Status: StatusWorking})
	out, changed := rewrap.File(f, opts.MaxLineLength, rewrap.Options{
		Reporter: &diag.BagReporter{Bag: res.Bag},
	})
	res.Changed = changed
	res.Output = out

	if !changed {
		// перенос идемпотентен: чистый вердикт можно запомнить
		_ = opts.Cache.Put(f.Hash, &Payload{
			Schema:        cacheSchemaVersion,
			MaxLineLength: opts.MaxLineLength,
			Clean:         true,
		})
		emit(opts.Progress, Event{File: path, Stage: StageWrap, Status: StatusSkipped, Elapsed: time.Since(started)})
		res.Elapsed = time.Since(started)
		return res
	}

	if opts.Check || opts.Stdout {
		emit(opts.Progress, Event{File: path, Stage: StageWrap, Status: StatusDone, Elapsed: time.Since(started)})
		res.Elapsed = time.Since(started)
		return res
	}

	emit(opts.Progress, Event{File: path, Stage: StageWrite, Status: StatusWorking})
	// на диск — в байтовых конвенциях, зафиксированных при загрузке
	if err := writeBack(path, source.RestoreConventions([]byte(out), f.Flags)); err != nil {
		res.Err = err
		res.Bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.IOWriteFailed,
			Message:  err.Error(),
			Primary:  source.Span{File: f.ID},
		})
		emit(opts.Progress, Event{File: path, Stage: StageWrite, Status: StatusError, Err: err})
		res.Elapsed = time.Since(started)
		return res
	}
	_ = opts.Cache.Put(sha256.Sum256([]byte(out)), &Payload{
		Schema:        cacheSchemaVersion,
		MaxLineLength: opts.MaxLineLength,
		Clean:         true,
	})

	emit(opts.Progress, Event{File: path, Stage: StageWrite, Status: StatusDone, Elapsed: time.Since(started)})
	res.Elapsed = time.Since(started)
	return res
}

// writeBack replaces the file content atomically within its directory.
func writeBack(path string, content []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".pywrap-*")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()
	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if info, err := os.Stat(path); err == nil {
		_ = os.Chmod(tmp.Name(), info.Mode())
	}
	return os.Rename(tmp.Name(), path)
}

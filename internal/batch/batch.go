// Package batch is ambient dev tooling, not part of the core: it is a
// thin driver showing that multiple parses can run concurrently on
// disjoint inputs with no coordination, per spec.md §5. Nothing in
// internal/source, internal/lexer, internal/parser, or internal/pathspec
// depends on this package.
package batch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/nezdolik/reproto/internal/ast"
	"github.com/nezdolik/reproto/internal/diag"
	"github.com/nezdolik/reproto/internal/lexer"
	"github.com/nezdolik/reproto/internal/parser"
	"github.com/nezdolik/reproto/internal/source"
)

func readFile(path string) ([]byte, error) {
	return os.ReadFile(path) // #nosec G304 -- path comes from a directory walk the caller chose
}

// FileResult is one file's outcome within a ParseDir run. FileSet is a
// single-file set holding just this file's content: parser.ParseFile
// builds its own internal FileSet per call (always assigning the parsed
// file FileID 0), so every diagnostic in Bag resolves against FileSet,
// not against any set shared across files.
type FileResult struct {
	Path    string
	File    *ast.File
	FileSet *source.FileSet
	Bag     *diag.Bag
	Err     error
}

// Result collects every file's outcome from a ParseDir run.
type Result struct {
	Files []FileResult
}

// HasErrors reports whether any file failed to load or parse, or reported
// an error-severity diagnostic.
func (r *Result) HasErrors() bool {
	for _, f := range r.Files {
		if f.Err != nil {
			return true
		}
		if f.Bag != nil && f.Bag.HasErrors() {
			return true
		}
	}
	return false
}

func listReprotoFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".reproto") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// ParseDir walks dir for *.reproto files and parses each one concurrently,
// one goroutine per file, via golang.org/x/sync/errgroup. Each file's
// lexer/parser state is entirely its own; there is no shared mutable core
// state between goroutines, matching spec.md §5's concurrency model.
// jobs caps concurrency (0 means GOMAXPROCS). maxDiagnostics bounds each
// file's diagnostic bag.
func ParseDir(ctx context.Context, dir string, jobs, maxDiagnostics int) (*Result, error) {
	files, err := listReprotoFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return &Result{}, nil
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]FileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(maxDiagnostics)
			content, readErr := readFile(path)
			if readErr != nil {
				bag.Add(diag.NewFromCode(diag.IOLoadFileError, source.Span{}, "failed to load file: "+readErr.Error()))
				results[i] = FileResult{Path: path, Bag: bag, Err: readErr}
				return nil
			}

			// Mirrors the FileID ParseFile's own internal FileSet assigns
			// this content (always 0, since that FileSet starts empty),
			// so diagnostics in bag resolve correctly against this set.
			fset := source.NewFileSet()
			fset.AddVirtual(path, content)

			astFile, perr := parser.ParseFile(path, content,
				parser.WithReporter((&lexer.ReporterAdapter{Bag: bag}).Reporter()),
				parser.WithMaxErrors(uint(maxDiagnostics)))
			results[i] = FileResult{Path: path, File: astFile, FileSet: fset, Bag: bag, Err: perr}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &Result{Files: results}, nil
}

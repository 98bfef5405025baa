package runner

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/viant/afs"
	"golang.org/x/sync/errgroup"

	"github.com/swiftcheck/swiftcheck/linter"
	"github.com/swiftcheck/swiftcheck/swift"
)

// FileResult holds the outcome of linting or fixing one file
type FileResult struct {
	Path        string
	Violations  []linter.Violation
	Corrections []linter.Correction
}

// Runner lints sets of Swift files. Each file gets its own parse tree,
// its own contents buffer and its own traversal; the only state shared
// across files is the skip cache, guarded by a mutex.
type Runner struct {
	fs       afs.Service
	parser   *swift.Parser
	registry *linter.Registry

	mu      sync.Mutex
	hashes  map[string]uint64
	results map[string]FileResult
}

// New creates a runner executing the given rules
func New(registry *linter.Registry) *Runner {
	return &Runner{
		fs:       afs.New(),
		parser:   swift.NewParser(),
		registry: registry,
		hashes:   map[string]uint64{},
		results:  map[string]FileResult{},
	}
}

// LintPaths lints every Swift file under the given paths concurrently and
// returns per-file results sorted by path. Files whose contents have not
// changed since the previous run are served from the cache.
func (r *Runner) LintPaths(ctx context.Context, paths []string) ([]FileResult, error) {
	files, err := listSwiftFiles(paths)
	if err != nil {
		return nil, err
	}

	results := make([]FileResult, len(files))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.NumCPU())
	for i, path := range files {
		i, path := i, path
		group.Go(func() error {
			result, err := r.lintFile(ctx, path)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Path < results[j].Path
	})
	return results, nil
}

// lintFile checks one file against every registered rule
func (r *Runner) lintFile(ctx context.Context, path string) (FileResult, error) {
	contents, err := r.fs.DownloadWithURL(ctx, path)
	if err != nil {
		return FileResult{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	hash, hashErr := contentHash(contents)
	if hashErr == nil {
		r.mu.Lock()
		previous, seen := r.hashes[path]
		cached := r.results[path]
		r.mu.Unlock()
		if seen && previous == hash {
			return cached, nil
		}
	}

	tree, err := r.parser.ParseSource(ctx, contents)
	if err != nil {
		return FileResult{}, err
	}
	defer tree.Close()

	result := FileResult{Path: path}
	for _, rule := range r.registry.Rules() {
		result.Violations = append(result.Violations, rule.Check(tree)...)
	}

	r.mu.Lock()
	r.results[path] = result
	if hashErr == nil {
		r.hashes[path] = hash
	}
	r.mu.Unlock()
	return result, nil
}

// FixPaths autocorrects every Swift file under the given paths and writes
// the mutated contents back. Each file is written at most once, after all
// of its edits have been applied.
func (r *Runner) FixPaths(ctx context.Context, paths []string) ([]FileResult, error) {
	files, err := listSwiftFiles(paths)
	if err != nil {
		return nil, err
	}

	results := make([]FileResult, len(files))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.NumCPU())
	for i, path := range files {
		i, path := i, path
		group.Go(func() error {
			result, err := r.fixFile(ctx, path)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Path < results[j].Path
	})
	return results, nil
}

// fixFile applies every registered rule's corrections to one file. Rules
// run sequentially; the source is re-parsed between rules because each
// rule's edits shift the offsets the next rule sees.
func (r *Runner) fixFile(ctx context.Context, path string) (FileResult, error) {
	contents, err := r.fs.DownloadWithURL(ctx, path)
	if err != nil {
		return FileResult{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	result := FileResult{Path: path}
	updated := contents
	for _, rule := range r.registry.Rules() {
		tree, err := r.parser.ParseSource(ctx, updated)
		if err != nil {
			return FileResult{}, err
		}
		filter := linter.ScanRegions(updated)
		corrected, corrections := rule.Correct(tree, filter)
		tree.Close()
		updated = corrected
		result.Corrections = append(result.Corrections, corrections...)
	}

	if !bytes.Equal(updated, contents) {
		if err := r.fs.Upload(ctx, path, os.FileMode(0644), bytes.NewReader(updated)); err != nil {
			return FileResult{}, fmt.Errorf("failed to write %s: %w", path, err)
		}
		r.mu.Lock()
		delete(r.hashes, path)
		r.mu.Unlock()
	}
	return result, nil
}

// listSwiftFiles expands the given paths into a sorted list of *.swift
// files, descending into directories.
func listSwiftFiles(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		err = filepath.WalkDir(path, func(candidate string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(candidate, ".swift") {
				files = append(files, candidate)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(files)
	return files, nil
}

package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 300 * time.Millisecond

// Watch re-lints the given paths whenever a Swift file under them
// changes, reporting each run. It blocks until the context is cancelled.
// Events are debounced so editors that write in bursts trigger one run.
func (r *Runner) Watch(ctx context.Context, paths []string, reporter *Reporter) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch init failed: %w", err)
	}
	defer watcher.Close()

	for _, path := range paths {
		if err := addWatchRecursive(watcher, path); err != nil {
			return fmt.Errorf("watch failed: %w", err)
		}
	}

	lint := func() {
		results, err := r.LintPaths(ctx, paths)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lint failed: %v\n", err)
			return
		}
		for _, result := range results {
			reporter.Report(result)
		}
	}
	lint()

	var timer *time.Timer
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Directories created while watching must be registered or
			// files under them never trigger a run.
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := addWatchRecursive(watcher, event.Name); err != nil {
						fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
					}
					continue
				}
			}
			if !strings.HasSuffix(event.Name, ".swift") {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, lint)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		}
	}
}

// addWatchRecursive registers the path and all of its subdirectories
func addWatchRecursive(watcher *fsnotify.Watcher, root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return watcher.Add(filepath.Dir(root))
	}
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if strings.HasPrefix(info.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			return watcher.Add(path)
		}
		return nil
	})
}

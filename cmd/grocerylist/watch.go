package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alnah/go-grocerylist"
)

// Watch timing.
const (
	watchDebounce = 200 * time.Millisecond // Quiet time before regenerating
	watchTick     = 50 * time.Millisecond  // Debounce check interval
)

// listWatcher regenerates documents when their list files change.
// It watches parent directories so editors that save by rename are seen.
type listWatcher struct {
	watcher  *fsnotify.Watcher
	byPath   map[string][]int     // Cleaned absolute input path -> job indices
	pending  map[string]time.Time // Last change per path, awaiting debounce
	debounce time.Duration
}

// newListWatcher starts watching the directories holding the job inputs.
func newListWatcher(jobs []grocerylist.Job, debounce time.Duration) (*listWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	lw := &listWatcher{
		watcher:  w,
		byPath:   make(map[string][]int),
		pending:  make(map[string]time.Time),
		debounce: debounce,
	}

	dirs := make(map[string]bool)
	for i, job := range jobs {
		abs, err := filepath.Abs(job.InputPath)
		if err != nil {
			_ = w.Close()
			return nil, fmt.Errorf("resolving %s: %w", job.InputPath, err)
		}
		abs = filepath.Clean(abs)
		lw.byPath[abs] = append(lw.byPath[abs], i)
		dirs[filepath.Dir(abs)] = true
	}

	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	return lw, nil
}

// Close stops the underlying watcher.
func (lw *listWatcher) Close() error {
	return lw.watcher.Close()
}

// run dispatches debounced changes to onChange until ctx is done.
func (lw *listWatcher) run(ctx context.Context, onChange func(indices []int), onError func(error)) error {
	ticker := time.NewTicker(watchTick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-lw.watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			path := filepath.Clean(event.Name)
			if _, watched := lw.byPath[path]; watched {
				lw.pending[path] = time.Now()
			}

		case err, ok := <-lw.watcher.Errors:
			if !ok {
				return nil
			}
			onError(err)

		case <-ticker.C:
			lw.flush(onChange)
		}
	}
}

// flush hands over every path that has been quiet for the debounce window.
func (lw *listWatcher) flush(onChange func(indices []int)) {
	now := time.Now()
	for path, changed := range lw.pending {
		if now.Sub(changed) < lw.debounce {
			continue
		}
		delete(lw.pending, path)
		onChange(lw.byPath[path])
	}
}

// watchJobs regenerates jobs whenever their input changes, until ctx is done.
func watchJobs(ctx context.Context, gen FileGenerator, jobs []grocerylist.Job, env *Environment, quiet bool) error {
	lw, err := newListWatcher(jobs, watchDebounce)
	if err != nil {
		return err
	}
	defer func() { _ = lw.Close() }()

	if !quiet {
		fmt.Fprintf(env.Stdout, "Watching %d list(s) for changes (Ctrl+C to stop)\n", len(jobs))
	}

	onChange := func(indices []int) {
		for _, i := range indices {
			r := generateOne(ctx, gen, jobs[i], false)
			switch {
			case r.Err != nil:
				fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			case !quiet:
				fmt.Fprintf(env.Stdout, "Regenerated %s\n", r.OutputPath)
			}
		}
	}
	onError := func(err error) {
		fmt.Fprintf(env.Stderr, "warning: watch: %v\n", err)
	}

	return lw.run(ctx, onChange, onError)
}

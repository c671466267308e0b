package engine

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period Watch waits for after the last
// change before re-lexing.
const DefaultDebounce = 100 * time.Millisecond

// WatchFunc receives the outcome of each re-lex.
type WatchFunc func(report *Report, err error)

// Watch re-lexes files from paths whenever they are written, until ctx is
// done. Bursts of events are coalesced: once no event arrives for
// debounce, every file changed since the last call is lexed together and
// fn is called with the result. Calls to fn never overlap.
func (e *Engine) Watch(ctx context.Context, paths []string, debounce time.Duration, fn WatchFunc) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	watched := make(map[string]string, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", p, err)
		}
		watched[abs] = p
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		// Editors often replace files on save, which drops a watch on the
		// file itself, so the parent directory is watched instead.
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}
	e.logger.Debug("watching files", slog.Int("files", len(watched)), slog.Int("dirs", len(dirs)))

	var (
		mu      sync.Mutex
		pending = make(map[string]bool)
		timer   *time.Timer
		runMu   sync.Mutex
	)
	flush := func() {
		mu.Lock()
		batch := make([]string, 0, len(pending))
		for p := range pending {
			batch = append(batch, p)
		}
		clear(pending)
		mu.Unlock()
		if len(batch) == 0 || ctx.Err() != nil {
			return
		}
		slices.Sort(batch)

		runMu.Lock()
		defer runMu.Unlock()
		e.logger.Debug("files changed, re-lexing", slog.Int("files", len(batch)))
		report, err := e.LexFiles(ctx, batch)
		fn(report, err)
	}
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
		// Wait for an in-flight flush.
		runMu.Lock()
		runMu.Unlock() //nolint:staticcheck // empty critical section is the barrier
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			orig, ok := watched[abs]
			if !ok {
				continue
			}

			mu.Lock()
			pending[orig] = true
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, flush)
			mu.Unlock()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			e.logger.Error("watcher error", "error", err)
		}
	}
}

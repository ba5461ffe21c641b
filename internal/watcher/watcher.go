// Package watcher re-runs a comparison whenever one of its inputs changes.
package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/aleister1102/irdiff/internal/common/file"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce is how long the watcher waits for writes to settle.
const DefaultDebounce = 200 * time.Millisecond

// Watcher observes input files and directories. Files are watched through
// their parent directory so editors that replace files on save are seen.
type Watcher struct {
	logger     zerolog.Logger
	fsw        *fsnotify.Watcher
	files      map[string]struct{}
	dirs       map[string]struct{}
	extensions []string
	debounce   time.Duration
}

// New starts watching paths. Directory events only count for files with one
// of extensions.
func New(logger zerolog.Logger, paths []string, extensions []string, debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w := &Watcher{
		logger:     logger.With().Str("component", "Watcher").Logger(),
		fsw:        fsw,
		files:      make(map[string]struct{}),
		dirs:       make(map[string]struct{}),
		extensions: extensions,
		debounce:   debounce,
	}

	for _, p := range paths {
		if err := w.add(p); err != nil {
			fsw.Close()
			return nil, err
		}
	}

	wl := fsw.WatchList()
	slices.Sort(wl)
	w.logger.Info().Strs("watching", wl).Msg("File watcher started")
	return w, nil
}

func (w *Watcher) add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	stat, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	dir := abs
	if stat.IsDir() {
		w.dirs[abs] = struct{}{}
	} else {
		w.files[abs] = struct{}{}
		dir = filepath.Dir(abs)
	}

	if slices.Contains(w.fsw.WatchList(), dir) {
		return nil
	}
	if err := w.fsw.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory '%s': %w", dir, err)
	}
	return nil
}

// Run calls onChange once per burst of relevant events until ctx is done.
// Errors from onChange are logged and watching continues.
func (w *Watcher) Run(ctx context.Context, onChange func(ctx context.Context) error) error {
	reloadTimer := time.NewTimer(0)
	reloadTimer.Stop()
	defer reloadTimer.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("File watcher stopped")
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("Input change detected")
			reloadTimer.Reset(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error().Err(err).Msg("File watcher error")

		case <-reloadTimer.C:
			start := time.Now()
			if err := onChange(ctx); err != nil {
				w.logger.Error().Err(err).Msg("Failed to regenerate comparison")
				continue
			}
			w.logger.Info().Dur("duration", time.Since(start)).Msg("Comparison regenerated")
		}
	}
}

// Close stops the underlying watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
		return false
	}
	if _, ok := w.files[event.Name]; ok {
		return true
	}
	if _, ok := w.dirs[filepath.Dir(event.Name)]; ok {
		return file.HasExtension(event.Name, w.extensions)
	}
	return false
}

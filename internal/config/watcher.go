package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watcher keeps a course config in sync with a file on disk.
// Invalid edits are logged and ignored; the last good config stays current.
type Watcher struct {
	path    string
	fsw     *fsnotify.Watcher
	logger  *log.Logger
	mu      sync.RWMutex
	current CourseConfig
}

// NewWatcher starts watching the directory containing path.
// The directory is watched rather than the file so editors that replace
// the file on save are still picked up.
func NewWatcher(path string, initial CourseConfig, logger *log.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: cannot resolve %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("config: watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:    abs,
		fsw:     fsw,
		logger:  logger,
		current: initial,
	}, nil
}

// Current returns the latest valid config.
func (w *Watcher) Current() CourseConfig {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// Run processes file events until ctx is cancelled or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.logger.Debug("config event", "op", event.Op.String(), "file", event.Name)
				w.reload()
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Error("config watcher error", "error", err)
		}
	}
}

// reload re-reads the file and swaps the config if it is valid.
func (w *Watcher) reload() {
	data, err := os.ReadFile(w.path)
	if err != nil {
		w.logger.Warn("could not read config", "file", w.path, "error", err)
		return
	}
	// Truncation shows up as its own write event
	if len(data) == 0 {
		return
	}
	cfg, err := Parse(data)
	if err != nil {
		w.logger.Warn("ignoring invalid config", "file", w.path, "error", err)
		return
	}

	w.mu.Lock()
	w.current = cfg
	w.mu.Unlock()
	w.logger.Info("config reloaded", "file", w.path)
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

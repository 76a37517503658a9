package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a configuration file for changes and invokes a
// callback with the freshly loaded configuration. Events are debounced
// so editors that write in several steps trigger a single reload. The
// parent directory is watched rather than the file itself because many
// editors replace the file by rename, which drops a direct file watch.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	debounce time.Duration

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
}

// DefaultDebounceInterval is the time to wait after a file event before
// reloading.
const DefaultDebounceInterval = 100 * time.Millisecond

// NewWatcher creates a watcher for the given config file path.
func NewWatcher(path string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		path:     path,
		watcher:  fsw,
		logger:   logger.With("component", "config.watcher"),
		debounce: DefaultDebounceInterval,
		stopCh:   make(chan struct{}),
	}, nil
}

// Watch blocks, reloading the config file whenever it changes and passing
// the result to onReload. Reload failures are logged and the previous
// configuration stays in effect. Watch returns when the context is
// cancelled or Stop is called.
func (w *Watcher) Watch(ctx context.Context, onReload func(*Config)) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
	}()

	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %q: %w", dir, err)
	}

	w.logger.Info("config watcher started",
		"path", w.path,
		"debounce_ms", w.debounce.Milliseconds(),
	)

	var timer *time.Timer
	var timerCh <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("config watcher stopped (context cancelled)")
			return nil

		case <-w.stopCh:
			w.logger.Info("config watcher stopped")
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerCh = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case <-timerCh:
			timer = nil
			timerCh = nil

			cfg, err := LoadConfigWithEnvOverrides(w.path)
			if err != nil {
				w.logger.Error("config reload failed, keeping previous configuration",
					"path", w.path,
					"error", err,
				)
				continue
			}
			w.logger.Info("config reloaded", "path", w.path)
			onReload(cfg)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("config watcher error", "error", err)
		}
	}
}

// Stop stops a running watcher and releases the underlying fsnotify
// resources.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		close(w.stopCh)
	}
	return w.watcher.Close()
}

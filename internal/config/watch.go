package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/five82/responsive/internal/scaling"
)

// Apply loads path and merges its overrides into store. Validation problems
// with the resulting config are logged, not returned.
func Apply(path string, store *scaling.Store, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	store.Configure(cfg.Overrides)
	if err := store.Config().Validate(); err != nil {
		logger.Warn("scaling config will produce unexpected output", zap.Error(err))
	}
	return nil
}

// Watcher re-applies a config file to a store whenever the file changes.
type Watcher struct {
	path     string
	store    *scaling.Store
	logger   *zap.Logger
	debounce time.Duration

	watcher *fsnotify.Watcher
}

// NewWatcher prepares a watcher for path. The file's directory is watched so
// files replaced by rename (as most editors do) are picked up.
func NewWatcher(path string, store *scaling.Store, logger *zap.Logger) (*Watcher, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(resolved)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch config dir: %w", err)
	}

	return &Watcher{
		path:     resolved,
		store:    store,
		logger:   logger,
		debounce: defaultDebounce,
		watcher:  fw,
	}, nil
}

// Run processes file events until ctx is cancelled, then closes the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	deb := newDebouncer(w.debounce)
	defer deb.cancel()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			deb.trigger(w.reload)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("config watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) reload() {
	if err := Apply(w.path, w.store, w.logger); err != nil {
		w.logger.Warn("config reload failed", zap.String("path", w.path), zap.Error(err))
		return
	}
	cfg := w.store.Config()
	w.logger.Info("config reloaded",
		zap.String("path", w.path),
		zap.Float64("base_width", cfg.BaseWidth),
		zap.Float64("medium", cfg.Breakpoints.Medium),
		zap.Float64("large", cfg.Breakpoints.Large))
}

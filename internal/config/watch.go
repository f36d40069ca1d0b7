package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/footprint-tools/dispatch/internal/log"
)

// Watch reloads path whenever it is written or replaced and passes the new config to fn.
// It watches the containing directory so editors that save by rename are seen.
// The watcher stops when ctx is done. Reload failures are logged and skipped.
func Watch(ctx context.Context, path string, fn func(Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: create watcher: %w", err)
	}

	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("config: watch %s: %w", filepath.Dir(target), err)
	}

	go func() {
		defer func() { _ = watcher.Close() }()

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}

				cfg, err := Load(target)
				if err != nil {
					log.Warn("config: reload failed: %v", err)
					continue
				}
				log.Debug("config: reloaded %s", target)
				fn(cfg)

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn("config: watcher error: %v", err)
			}
		}
	}()

	return nil
}

package config

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch re-reads the config file whenever it changes and delivers the new
// settings on the returned channel. The channel is closed when stop is
// called. Reload errors are logged and skipped; the previous settings stay
// in effect.
//
// The parent directory is watched rather than the file itself so that
// editors which replace the file (write to temp, rename over) keep working.
func Watch(path string) (<-chan Config, func() error, error) {
	if path == "" {
		path = DefaultFile
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, fmt.Errorf("create watcher: %w", err)
	}

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	ch := make(chan Config, 1)
	go func() {
		defer close(ch)
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(path) {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				cfg, err := Load(path)
				if err != nil {
					slog.Warn("config reload failed",
						slog.String("path", path),
						slog.Any("error", err))
					continue
				}
				// Drop a stale pending update so the reader always sees
				// the newest settings.
				select {
				case <-ch:
				default:
				}
				ch <- cfg
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Warn("config watcher error", slog.Any("error", err))
			}
		}
	}()

	return ch, watcher.Close, nil
}

package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDelay is the time a config file must stay unchanged before it is loaded.
// A single save often produces multiple events, e.g. a truncate followed by a write.
const reloadDelay = 100 * time.Millisecond

// Watch reloads the config file at path every time it changes and passes the
// result to onChange. Errors while loading are passed to onError, the previous
// config stays in effect. An empty file is treated as a save in progress and
// ignored. Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, onChange func(Config), onError func(error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	defer watcher.Close()

	// watch the directory, as editors often replace a file instead of writing to it.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %q: %w", dir, err)
	}

	target := filepath.Clean(path)

	slog.Debug("Watching config file", slog.String("path", target))

	timer := time.NewTimer(reloadDelay)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(event.Name) != target {
				continue
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			slog.Debug("Config file changed", slog.String("op", event.Op.String()))
			timer.Reset(reloadDelay)

		case <-timer.C:
			data, err := os.ReadFile(path)
			if err != nil {
				onError(fmt.Errorf("read config %q: %w", target, err))
				continue
			}

			if len(data) == 0 {
				continue
			}

			config, err := Parse(data)
			if err != nil {
				onError(fmt.Errorf("load config %q: %w", target, err))
				continue
			}

			onChange(config)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			onError(fmt.Errorf("watch %q: %w", target, err))
		}
	}
}

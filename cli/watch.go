package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/tinywasm/graph/logging"
)

// watch calls render every time path is written, until ctx is done.
// The parent directory is watched so editors that replace the file on
// save are still seen.
func (a *App) watch(ctx context.Context, path string, render func() error) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("failed to watch path: %w", err)
	}
	logging.Info().Str("file", absPath).Msg("watching form file")

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != absPath || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := render(); err != nil {
				// keep watching; the next save may fix the file
				logging.With(logging.Warn(), logging.File(absPath), logging.ErrorField(err)).Msg("re-render failed")
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.Warn().Err(err).Msg("watch error")
		}
	}
}

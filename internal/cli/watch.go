package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

// WatchScenario replays the scenario every time its file changes, until ctx
// is cancelled. Replay errors are printed and the watcher keeps going.
func WatchScenario(ctx context.Context, opts PlayOptions, out, errOut io.Writer) error {
	path, err := filepath.Abs(opts.Path)
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer w.Close()

	// Editors often replace the file, so the directory is watched.
	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	replay := func() {
		if err := playOnce(ctx, opts, out, errOut); err != nil {
			fmt.Fprintf(errOut, "Error: %v\n", err)
		}
		printSystemMessage(out, "Waiting for changes to '%s'...", opts.Path)
	}
	replay()

	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path || !event.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			debounce = time.After(watchDebounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(errOut, "watch error: %v\n", err)
		case <-debounce:
			debounce = nil
			printSystemMessage(out, "Change detected in '%s'.", opts.Path)
			replay()
		}
	}
}

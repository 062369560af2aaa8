package command

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/adhocteam/lily/internal/diagnostics"
	"github.com/adhocteam/lily/internal/files"
)

const debounceInterval = 125 * time.Millisecond

// Watch checks root, then re-checks each source file under it whenever it
// changes, until ctx is cancelled.
func Watch(ctx context.Context, root string, w io.Writer) error {
	logger := slog.Default()

	fi, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("watching %q: %w", root, err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("watching %q: not a directory", root)
	}

	if err := Check(w, root); err != nil {
		logger.Info("Initial check failed", "err", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating new fsnotify watcher: %w", err)
	}
	defer watcher.Close()

	if err := watchDirRecursively(watcher, root); err != nil {
		return fmt.Errorf("adding dir to watch: %w", err)
	}

	// settled's timers must not outlive an early return
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	changed := settled(ctx, watcher, debounceInterval)

	for {
		select {
		case <-ctx.Done():
			return nil
		case path, ok := <-changed:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watching %q: watcher closed", root)
			}
			if isDir(path) {
				if err := watchDirRecursively(watcher, path); err != nil {
					logger.Info("Could not watch new directory", "dir", path, "err", err)
				}
				continue
			}
			if filepath.Ext(path) != files.SourceExt || !files.Reloadable(path) {
				continue
			}
			logger.Info("Change detected, re-checking", "file", path)
			f, list, err := checkFile(path)
			if err != nil {
				// removed or renamed between the event and now
				logger.Debug("Skipping", "file", path, "err", err)
				continue
			}
			if err := diagnostics.Fprint(w, f, list); err != nil {
				return fmt.Errorf("printing diagnostics: %w", err)
			}
			logger.Info("Checked", "file", path, "diagnostics", len(list))
		}
	}
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fi.IsDir()
}

func watchDirRecursively(watcher *fsnotify.Watcher, root string) error {
	return fs.WalkDir(os.DirFS(root), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			path = filepath.Join(root, path)
			if err := watcher.Add(path); err != nil {
				return fmt.Errorf("adding path %s to watch: %w", path, err)
			}
			slog.Debug("Watching", "dir", path)
		}
		return nil
	})
}

// settled sends the name of each created or written path once no further
// event for it has arrived for interval. The channel is closed when ctx is
// done or the watcher shuts down.
func settled(ctx context.Context, watcher *fsnotify.Watcher, interval time.Duration) <-chan string {
	out := make(chan string)
	go func() {
		defer close(out)
		quiet := make(chan string)
		pending := make(map[string]*time.Timer)
		defer func() {
			for _, t := range pending {
				t.Stop()
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Info("File watch error", "err", err)
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
					continue
				}
				if t, ok := pending[ev.Name]; ok {
					t.Reset(interval)
					continue
				}
				name := ev.Name
				pending[name] = time.AfterFunc(interval, func() {
					select {
					case quiet <- name:
					case <-ctx.Done():
					}
				})
			case name := <-quiet:
				delete(pending, name)
				select {
				case out <- name:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}

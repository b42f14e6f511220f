package dict

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads path into c whenever the file is written or recreated, until
// ctx ends. The whole content is replaced on each successful reload; a file
// that fails to parse is logged and the previous content kept. The directory
// is watched so editors that replace files atomically are followed.
func Watch(ctx context.Context, path string, c *Cache, log *slog.Logger) error {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		w.Close()
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return err
	}

	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				entries, err := ParseFile(abs)
				if err != nil {
					log.Warn("dictionary reload failed", "path", abs, "error", err)
					continue
				}
				c.Replace(entries)
				log.Info("dictionary reloaded", "path", abs, "entries", len(entries))
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn("dictionary watcher error", "path", abs, "error", err)
			}
		}
	}()
	return nil
}

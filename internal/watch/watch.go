// Package watch detects the content type of files as they are written.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"

	"github.com/gobeaver/mimesniff"
	"github.com/gobeaver/mimesniff/internal/log"
	"github.com/gobeaver/mimesniff/internal/scan"
)

var (
	ErrNoDetector    = errors.New("no detector")
	ErrWatcherClosed = errors.New("watcher closed")
)

// Result is a detection triggered by a file system event.
type Result struct {
	scan.Result

	Op fsnotify.Op
}

// Watcher reports content types of created and written files.
type Watcher struct {
	det       mimesniff.Detector
	filter    glob.Glob
	recursive bool
}

// New returns a watcher reporting files whose relative path or base name
// matches filter. An empty filter matches every file. A filter containing
// "**" also watches subdirectories.
func New(det mimesniff.Detector, filter string) (*Watcher, error) {
	if det == nil {
		return nil, ErrNoDetector
	}
	if filter == "" {
		filter = "**"
	}

	g, err := glob.Compile(filter, '/')
	if err != nil {
		return nil, fmt.Errorf("compile filter %q: %w", filter, err)
	}

	return &Watcher{
		det:       det,
		filter:    g,
		recursive: strings.Contains(filter, "**"),
	}, nil
}

// Match reports whether the slash-separated relative path passes the filter.
func (w *Watcher) Match(rel string) bool {
	return w.filter.Match(rel) || w.filter.Match(path.Base(rel))
}

// Run watches dir until ctx is done and calls fn for every matching
// Create or Write event. fn runs on the watching goroutine.
func (w *Watcher) Run(ctx context.Context, dir string, fn func(Result)) error {
	logger := log.WithContext(ctx)

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	if w.recursive {
		w.addTree(fw, dir, logger)
	}
	logger.Debug("watching", slog.String("dir", dir), slog.Bool("recursive", w.recursive))

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return ErrWatcherClosed
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}

			info, err := os.Stat(event.Name)
			if err != nil {
				// Gone before it could be read
				continue
			}
			if info.IsDir() {
				if w.recursive && event.Has(fsnotify.Create) {
					w.addTree(fw, event.Name, logger)
				}
				continue
			}
			if !info.Mode().IsRegular() {
				continue
			}

			rel, err := filepath.Rel(dir, event.Name)
			if err != nil || !w.Match(filepath.ToSlash(rel)) {
				continue
			}

			r := Result{Result: scan.DetectFile(w.det, event.Name), Op: event.Op}
			if r.Err != nil {
				logger.Warn("detect changed file", slog.String("path", r.Path), slog.Any("err", r.Err))
			}
			fn(r)

		case err, ok := <-fw.Errors:
			if !ok {
				return ErrWatcherClosed
			}
			logger.Warn("watch error", slog.Any("err", err))
		}
	}
}

func (w *Watcher) addTree(fw *fsnotify.Watcher, root string, logger *slog.Logger) {
	_ = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if err := fw.Add(p); err != nil {
			logger.Warn("watch directory", slog.String("dir", p), slog.Any("err", err))
		}
		return nil
	})
}

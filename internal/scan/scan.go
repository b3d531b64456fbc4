// Package scan detects the content type of every file under a directory.
package scan

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/gobwas/glob"

	"github.com/gobeaver/mimesniff"
	"github.com/gobeaver/mimesniff/internal/log"
)

// headerSize is the number of bytes read from each file.
const headerSize = 512

var ErrNoDetector = errors.New("no detector")

// Options configures a [Scanner].
type Options struct {
	// Include is a slash-separated glob matched against each file's path
	// relative to the scan root. Empty means every file.
	Include string

	// Exclude globs skip matching files, and whole directories when a
	// directory's relative path matches.
	Exclude []string

	// Workers is the number of files read concurrently.
	Workers int

	// FollowSymlinks reports symlinks to regular files. Symlinked
	// directories are never descended into.
	FollowSymlinks bool
}

// Result is the outcome for a single file.
type Result struct {
	Path        string
	Size        int64
	ContentType string
	Err         error
}

// Scanner walks directory trees and detects file content types.
type Scanner struct {
	det            mimesniff.Detector
	include        glob.Glob
	exclude        []glob.Glob
	workers        int
	followSymlinks bool
}

type job struct {
	path string
	err  error
}

// New compiles the filters in opts and returns a scanner using det.
func New(det mimesniff.Detector, opts Options) (*Scanner, error) {
	if det == nil {
		return nil, ErrNoDetector
	}

	include := opts.Include
	if include == "" {
		include = "**"
	}
	g, err := glob.Compile(include, '/')
	if err != nil {
		return nil, fmt.Errorf("compile include %q: %w", include, err)
	}

	s := &Scanner{
		det:            det,
		include:        g,
		workers:        opts.Workers,
		followSymlinks: opts.FollowSymlinks,
	}
	if s.workers <= 0 {
		s.workers = 1
	}

	for _, p := range opts.Exclude {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("compile exclude %q: %w", p, err)
		}
		s.exclude = append(s.exclude, g)
	}

	return s, nil
}

// Match reports whether a slash-separated relative path passes the filters.
func (s *Scanner) Match(rel string) bool {
	return s.include.Match(rel) && !s.excluded(rel)
}

func (s *Scanner) excluded(rel string) bool {
	for _, g := range s.exclude {
		if g.Match(rel) {
			return true
		}
	}
	return false
}

// Run walks root and calls fn once per matching file. fn is never called
// concurrently. Files that cannot be read are reported through
// [Result.Err]; Run itself fails only when root cannot be walked or ctx is
// canceled.
func (s *Scanner) Run(ctx context.Context, root string, fn func(Result)) error {
	logger := log.WithContext(ctx)

	jobs := make(chan job)
	results := make(chan Result)

	var walkErr error
	go func() {
		defer close(jobs)
		walkErr = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			if err != nil {
				if path == root {
					return err
				}
				return s.send(ctx, jobs, job{path: path, err: err})
			}

			rel := relPath(root, path)
			if d.IsDir() {
				if path != root && s.excluded(rel) {
					logger.Debug("skip directory", slog.String("path", path))
					return filepath.SkipDir
				}
				return nil
			}

			if !s.Match(rel) {
				return nil
			}
			if !d.Type().IsRegular() && !s.acceptSymlink(path, d) {
				return nil
			}

			return s.send(ctx, jobs, job{path: path})
		})
	}()

	var wg sync.WaitGroup
	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				r := Result{Path: j.path, Err: j.err}
				if r.Err == nil {
					r = DetectFile(s.det, j.path)
				}
				select {
				case results <- r:
				case <-ctx.Done():
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	for r := range results {
		if r.Err != nil {
			logger.Warn("scan file", slog.String("path", r.Path), slog.Any("err", r.Err))
		} else {
			logger.Debug("scanned file",
				slog.String("path", r.Path),
				slog.String("content_type", r.ContentType),
			)
		}
		if ctx.Err() == nil {
			fn(r)
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if walkErr != nil {
		return fmt.Errorf("walk %s: %w", root, walkErr)
	}
	return nil
}

func (s *Scanner) send(ctx context.Context, jobs chan<- job, j job) error {
	select {
	case jobs <- j:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scanner) acceptSymlink(path string, d fs.DirEntry) bool {
	if !s.followSymlinks || d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// DetectFile reads the head of the file at path and detects its content
// type with det.
func DetectFile(det mimesniff.Detector, path string) Result {
	r := Result{Path: path}

	f, err := os.Open(path)
	if err != nil {
		r.Err = err
		return r
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		r.Err = err
		return r
	}
	r.Size = info.Size()

	header, err := io.ReadAll(io.LimitReader(f, headerSize))
	if err != nil {
		r.Err = &mimesniff.DetectError{Op: "read", Err: err}
		return r
	}
	r.ContentType = det.Detect(header)

	return r
}

// relPath returns path relative to root with forward slashes. A root that
// is itself a file yields its base name.
func relPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		rel = filepath.Base(path)
	}
	return filepath.ToSlash(rel)
}

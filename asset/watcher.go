package asset

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watcher reports files under a directory that were created or written.
// The fsnotify loop runs on its own goroutine and only hands paths over a
// channel; Poll collects them from the frame loop without blocking.
type Watcher struct {
	dir     string
	fs      *fsnotify.Watcher
	changes chan string
	done    chan struct{}
	log     *log.Logger
}

// NewWatcher starts watching dir and every directory below it.
func NewWatcher(dir string, logger *log.Logger) (*Watcher, error) {
	if logger == nil {
		logger = log.Default()
	}
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	w := &Watcher{
		dir:     dir,
		fs:      fsWatch,
		changes: make(chan string, 64),
		done:    make(chan struct{}),
		log:     logger.WithPrefix("asset"),
	}
	if err := w.watchRecursive(dir); err != nil {
		fsWatch.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer close(w.changes)
	for {
		select {
		case e, ok := <-w.fs.Events:
			if !ok {
				return
			}
			w.handle(e)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Error("watch error", "err", err)

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) handle(e fsnotify.Event) {
	if e.Op&fsnotify.Create != 0 {
		if s, err := os.Stat(e.Name); err == nil && s.IsDir() {
			if err := w.watchRecursive(e.Name); err != nil {
				w.log.Warn("cannot watch new directory", "dir", e.Name, "err", err)
			}
			return
		}
	}
	if e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
		return
	}

	rel, err := filepath.Rel(w.dir, e.Name)
	if err != nil {
		rel = e.Name
	}
	select {
	case w.changes <- rel:
	case <-w.done:
	default:
		w.log.Warn("change queue full; dropping", "path", rel)
	}
}

func (w *Watcher) watchRecursive(path string) error {
	return filepath.WalkDir(path, func(walkPath string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.fs.Add(walkPath)
		}
		return nil
	})
}

// Poll returns the distinct paths changed since the last call, relative to the
// watched directory, in the order they were first seen.
func (w *Watcher) Poll() []string {
	var paths []string
	seen := make(map[string]bool)
	for {
		select {
		case path, ok := <-w.changes:
			if !ok {
				return paths
			}
			path = filepath.Clean(path)
			if !seen[path] {
				seen[path] = true
				paths = append(paths, path)
			}
		default:
			return paths
		}
	}
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	return w.fs.Close()
}

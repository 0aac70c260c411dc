package source

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher emits a signal whenever a file under root changes on disk. It
// supplements the static FileSource contract with a live variant for
// `--watch` mode: the core itself stays synchronous and is simply re-run
// each time a signal arrives.
type Watcher struct {
	root     string
	debounce time.Duration
	log      *slog.Logger
}

// NewWatcher builds a Watcher rooted at root. debounce <= 0 defaults to
// 250ms, matching bursty editor saves (write + rename + chmod in one flush).
func NewWatcher(root string, debounce time.Duration, log *slog.Logger) *Watcher {
	if debounce <= 0 {
		debounce = 250 * time.Millisecond
	}
	if log == nil {
		log = slog.Default()
	}
	return &Watcher{root: root, debounce: debounce, log: log}
}

// Changes starts watching root recursively and returns a channel that emits
// a signal whenever relevant file activity is detected. The channel closes
// when ctx is canceled or the watcher fails to start.
func (w *Watcher) Changes(ctx context.Context) <-chan struct{} {
	out := make(chan struct{}, 1)

	go func() {
		defer close(out)

		info, err := os.Stat(w.root)
		if err != nil {
			w.log.Error("watch: root unreadable", "root", w.root, "err", err)
			return
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			w.log.Error("watch: new watcher", "err", err)
			return
		}
		defer watcher.Close()

		if info.IsDir() {
			if err := addWatchRecursive(watcher, w.root); err != nil {
				w.log.Warn("watch: initial add recursive", "err", err)
			}
		} else if err := watcher.Add(w.root); err != nil {
			w.log.Warn("watch: add file", "path", w.root, "err", err)
		}

		var timer *time.Timer
		pending := false
		trigger := func() {
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				pending = true
				return
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.debounce)
			pending = true
		}
		notify := func() {
			select {
			case out <- struct{}{}:
			default:
			}
		}

		for {
			var timerC <-chan time.Time
			if timer != nil {
				timerC = timer.C
			}
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Op&fsnotify.Create == fsnotify.Create && isDir(ev.Name) {
					if err := addWatchRecursive(watcher, ev.Name); err != nil {
						w.log.Warn("watch: add recursive on create", "path", ev.Name, "err", err)
					}
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Remove|fsnotify.Rename|fsnotify.Chmod|fsnotify.Create) != 0 {
					trigger()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				w.log.Warn("watch: fsnotify error", "err", err)
			case <-timerC:
				if pending {
					notify()
					pending = false
				}
			}
		}
	}()

	return out
}

func addWatchRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			_ = w.Add(path)
		}
		return nil
	})
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

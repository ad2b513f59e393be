package staticrouter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrWatchUnavailable is returned when Watch is called without a content
// directory to observe (e.g. when a custom loader was supplied).
var ErrWatchUnavailable = errors.New("staticrouter: watch requires a content directory")

// ErrWatchAlreadyRunning is returned when Watch is called twice.
var ErrWatchAlreadyRunning = errors.New("staticrouter: watch already running")

// Watch monitors the content directory and reloads the page set when files
// change. Events are debounced with Config.Watch.Debounce since editors
// often trigger multiple writes per save. Watching stops when ctx is
// cancelled or StopWatch is called.
func (r *Router) Watch(ctx context.Context) error {
	dir := strings.TrimSpace(r.cfg.Content.Dir)
	if dir == "" {
		return ErrWatchUnavailable
	}

	r.mu.Lock()
	if r.watcher != nil {
		r.mu.Unlock()
		return ErrWatchAlreadyRunning
	}

	w, err := newWatcher(dir, r.cfg.Watch.Debounce, func() {
		if err := r.Reload(context.Background()); err != nil {
			r.logger.Error("reload after content change failed", "error", err)
			return
		}
		r.logger.Info("content reloaded", "pages", len(r.Routes()))
	})
	if err != nil {
		r.mu.Unlock()
		return err
	}
	r.watcher = w
	r.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
			r.StopWatch()
		case <-w.done:
			// StopWatch already ran; nothing left to release.
		}
	}()

	return nil
}

// StopWatch ends content monitoring. Safe to call multiple times.
func (r *Router) StopWatch() {
	r.mu.Lock()
	w := r.watcher
	r.watcher = nil
	r.mu.Unlock()

	if w != nil {
		w.stop()
	}
}

// watcher wraps fsnotify: it watches the content tree recursively, adds new
// directories as they appear, and coalesces bursts of events into a single
// onChange call.
type watcher struct {
	fw      *fsnotify.Watcher
	done    chan struct{}
	stopped bool
	mu      sync.Mutex
}

func newWatcher(dir string, debounce time.Duration, onChange func()) (*watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &watcher{
		fw:   fw,
		done: make(chan struct{}),
	}

	err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // skip inaccessible paths
		}
		if info.IsDir() {
			if strings.HasPrefix(info.Name(), ".") && path != dir {
				return filepath.SkipDir
			}
			return fw.Add(path)
		}
		return nil
	})
	if err != nil {
		fw.Close()
		return nil, err
	}

	if debounce <= 0 {
		debounce = 100 * time.Millisecond
	}

	go w.loop(debounce, onChange)

	return w, nil
}

func (w *watcher) loop(debounce time.Duration, onChange func()) {
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}

			// New directories join the watch list so nested content
			// keeps triggering reloads.
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if !strings.HasPrefix(filepath.Base(event.Name), ".") {
						w.fw.Add(event.Name)
					}
				}
			}

			if shouldIgnoreEvent(event) {
				continue
			}

			if timer == nil {
				timer = time.NewTimer(debounce)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(debounce)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			onChange()

		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			// Errors are swallowed; fsnotify recovers on its own.

		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

func (w *watcher) stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return
	}
	w.stopped = true
	close(w.done)
	w.fw.Close()
}

func shouldIgnoreEvent(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return true
	}
	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, ".") || strings.HasSuffix(base, ".swp") || strings.HasSuffix(base, "~") {
		return true
	}
	return false
}

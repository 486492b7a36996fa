// Package watch invalidates the picker's file listing when the
// working directory changes on disk. Events are debounced and rate
// limited so a burst of writes (a build, a checkout) triggers one
// refresh, not hundreds.
package watch

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"
)

const debounceDelay = 300 * time.Millisecond

// Watcher watches a working directory and its first-level
// subdirectories and emits a refresh signal after changes settle.
type Watcher struct {
	fsw     *fsnotify.Watcher
	limiter *rate.Limiter
	events  chan struct{}
	done    chan struct{}
	log     *slog.Logger

	mu    sync.Mutex
	timer *time.Timer
}

// New starts watching dir. At most two refreshes per second are
// emitted regardless of event volume.
func New(dir string, log *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	w := &Watcher{
		fsw:     fsw,
		limiter: rate.NewLimiter(rate.Limit(2), 1),
		events:  make(chan struct{}, 1),
		done:    make(chan struct{}),
		log:     log,
	}

	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}
	// Watching only one level deep keeps the descriptor count bounded
	// on large trees; deeper changes still surface through their
	// parent directories often enough for a picker.
	if subdirs, err := os.ReadDir(dir); err == nil {
		for _, de := range subdirs {
			if de.IsDir() && !strings.HasPrefix(de.Name(), ".") {
				_ = fsw.Add(filepath.Join(dir, de.Name()))
			}
		}
	}

	go w.loop()
	return w, nil
}

// Events signals that the listing should be refreshed. The channel has
// capacity one; coalesced signals are fine since a refresh re-lists
// everything anyway.
func (w *Watcher) Events() <-chan struct{} { return w.events }

// Close stops the watcher.
func (w *Watcher) Close() {
	close(w.done)
	w.fsw.Close()
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.schedule()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("watcher error", "error", err)
		}
	}
}

// schedule (re)arms the debounce timer; the refresh fires once the
// directory has been quiet for debounceDelay and the limiter allows.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(debounceDelay, func() {
		if !w.limiter.Allow() {
			return
		}
		select {
		case w.events <- struct{}{}:
		case <-w.done:
		default:
		}
	})
}

package watcher

import (
	"context"
	"errors"
	"iter"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/tabicons/internal/core/domain"
	"go.trai.ch/tabicons/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

// DefaultDebounceWindow is the default time window for debouncing file events.
const DefaultDebounceWindow = 100 * time.Millisecond

var errAlreadyStarted = zerr.New("watcher already started")

// Watcher implements ports.Watcher for a single directory using fsnotify.
// Only writes and creations are reported.
type Watcher struct {
	window time.Duration

	mu        sync.Mutex
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
	changes   chan []string
	done      chan struct{}
}

// NewWatcher creates a new watcher. No OS resources are held until Start.
func NewWatcher(window time.Duration) *Watcher {
	if window <= 0 {
		window = DefaultDebounceWindow
	}
	return &Watcher{window: window}
}

// Start begins watching dir.
func (w *Watcher) Start(ctx context.Context, dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.fsWatcher != nil {
		return errors.Join(domain.ErrWatchFailed, errAlreadyStarted)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Join(domain.ErrWatchFailed, err)
	}
	if err := fsWatcher.Add(dir); err != nil {
		_ = fsWatcher.Close()
		return errors.Join(domain.ErrWatchFailed, zerr.With(err, "path", dir))
	}

	w.fsWatcher = fsWatcher
	w.changes = make(chan []string)
	w.done = make(chan struct{})
	w.debouncer = NewDebouncer(w.window, w.emit)

	go w.processEvents(ctx, fsWatcher, w.debouncer, w.done)
	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.fsWatcher == nil {
		return nil
	}
	err := w.fsWatcher.Close()
	w.fsWatcher = nil
	return err
}

// Changes returns an iterator of debounced change batches. It ends once the
// watcher stops.
func (w *Watcher) Changes() iter.Seq[[]string] {
	w.mu.Lock()
	changes, done := w.changes, w.done
	w.mu.Unlock()

	return func(yield func([]string) bool) {
		if changes == nil {
			return
		}
		for {
			select {
			case paths := <-changes:
				if !yield(paths) {
					return
				}
			case <-done:
				return
			}
		}
	}
}

func (w *Watcher) emit(paths []string) {
	w.mu.Lock()
	changes, done := w.changes, w.done
	w.mu.Unlock()

	select {
	case changes <- paths:
	case <-done:
	}
}

func (w *Watcher) processEvents(ctx context.Context, fsWatcher *fsnotify.Watcher, debouncer *Debouncer, done chan struct{}) {
	defer close(done)
	defer debouncer.Stop()

	for {
		select {
		case <-ctx.Done():
			_ = w.Stop()
			return
		case event, ok := <-fsWatcher.Events:
			if !ok {
				return
			}
			if relevant(event) {
				debouncer.Add(event.Name)
			}
		case _, ok := <-fsWatcher.Errors:
			if !ok {
				return
			}
			// Overflow and similar errors only drop events; keep going.
		}
	}
}

func relevant(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

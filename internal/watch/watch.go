// Package watch raises storage-change signals when the database file is
// written by another process, so connected UIs know to re-read.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Notifier is called once per settled burst of changes.
type Notifier func()

// Watcher watches the directory of a database file and calls the notifier
// after writes to the file or its WAL/journal siblings settle.
type Watcher struct {
	watcher  *fsnotify.Watcher
	dir      string
	base     string
	notify   Notifier
	debounce time.Duration

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// New creates a Watcher for dbPath. Call Start to begin watching.
func New(dbPath string, notify Notifier, debounce time.Duration) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	abs, err := filepath.Abs(dbPath)
	if err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to resolve %s: %w", dbPath, err)
	}
	if debounce <= 0 {
		debounce = 250 * time.Millisecond
	}
	return &Watcher{
		watcher:  w,
		dir:      filepath.Dir(abs),
		base:     filepath.Base(abs),
		notify:   notify,
		debounce: debounce,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching. It is non-blocking; events are handled on a
// goroutine until ctx is done or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}
	if err := w.watcher.Add(w.dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}
	w.running = true
	slog.Info("Watching storage for external changes", "dir", w.dir, "file", w.base)

	go w.run(ctx)
	return nil
}

// Stop stops the watcher and waits for its goroutine to exit.
// It is safe to call Stop without Start and more than once.
func (w *Watcher) Stop() {
	w.mu.Lock()
	running := w.running
	w.running = false
	w.mu.Unlock()

	if running {
		close(w.stopCh)
		<-w.doneCh
	}
	if err := w.watcher.Close(); err != nil {
		slog.Debug("Watcher close", "error", err)
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			timer.Reset(w.debounce)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("Storage watcher error", "error", err)
		case <-timer.C:
			slog.Debug("External storage change detected", "file", w.base)
			w.notify()
		}
	}
}

// relevant reports whether event touches the database file or one of its
// -wal, -shm or -journal companions.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	return strings.HasPrefix(filepath.Base(event.Name), w.base)
}

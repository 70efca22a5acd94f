// Package watcher reports changes to the dependencies file.
package watcher

import (
	"context"
	"fmt"
	"iter"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/gemmatrix/internal/core/domain"
	"go.trai.ch/gemmatrix/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 100

// Watcher implements ports.Watcher using fsnotify.
//
// Editors often save by writing a temporary file and renaming it over the
// original, which drops a watch placed on the file itself. The Watcher
// therefore watches the parent directory and filters events to the file.
type Watcher struct {
	logger ports.Logger

	mu        sync.Mutex
	fsWatcher *fsnotify.Watcher
	target    string
	events    chan ports.WatchEvent
}

// NewWatcher creates a new Watcher. Nothing is watched until Start is called.
func NewWatcher(logger ports.Logger) *Watcher {
	return &Watcher{
		logger: logger,
		events: make(chan ports.WatchEvent, eventChannelBuffer),
	}
}

// Start begins watching the file at path. Events stop when ctx is done or
// Stop is called.
func (w *Watcher) Start(ctx context.Context, path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.fsWatcher != nil {
		return zerr.With(zerr.Wrap(zerr.New("watcher already started"), domain.ErrWatcherFailed.Error()), "path", path)
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatcherFailed.Error()), "path", path)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatcherFailed.Error()), "path", path)
	}
	if err := fsWatcher.Add(filepath.Dir(target)); err != nil {
		_ = fsWatcher.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrWatcherFailed.Error()), "path", path)
	}

	w.fsWatcher = fsWatcher
	w.target = target

	go w.processEvents(ctx, fsWatcher)

	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.fsWatcher == nil {
		return nil
	}
	return w.fsWatcher.Close()
}

// Events returns an iterator of change events for the watched file.
// The iterator ends once the watcher has stopped.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

// processEvents converts raw fsnotify events for the target file to
// ports.WatchEvent values.
func (w *Watcher) processEvents(ctx context.Context, fsWatcher *fsnotify.Watcher) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fsWatcher.Events:
			if !ok {
				return
			}

			watchEvent := w.convertEvent(event)
			if watchEvent == nil {
				continue
			}

			select {
			case w.events <- *watchEvent:
			case <-ctx.Done():
				return
			}

		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn(fmt.Sprintf("watcher: file system error: %v", err))
		}
	}
}

// convertEvent converts an fsnotify event to a ports.WatchEvent, or returns
// nil when the event is about another file or carries no change.
func (w *Watcher) convertEvent(event fsnotify.Event) *ports.WatchEvent {
	if filepath.Clean(event.Name) != w.target {
		return nil
	}

	var op ports.WatchOp
	switch {
	case event.Has(fsnotify.Write):
		op = ports.OpWrite
	case event.Has(fsnotify.Create):
		op = ports.OpCreate
	case event.Has(fsnotify.Remove):
		op = ports.OpRemove
	case event.Has(fsnotify.Rename):
		op = ports.OpRename
	default:
		return nil
	}

	return &ports.WatchEvent{Path: event.Name, Operation: op}
}

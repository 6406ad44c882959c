// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package watch

import (
	"errors"
	"sync"

	"github.com/fsnotify/fsnotify"
)

var _ Adapter = (*FS)(nil)

// ErrWatch is returned when the underlying filesystem watch faults.
var ErrWatch = errors.New("filesystem watch failed")

// FS is the production Adapter, built on fsnotify. It watches a single
// directory, non-recursively, and forwards create/modify/delete events to
// the registered callback.
type FS struct {
	dir      string
	onChange func(Event)

	mu      sync.Mutex
	done    chan struct{}
	stopped bool
}

// NewFS creates an adapter watching dir. The watch is not established until
// Start is called.
func NewFS(dir string) *FS {
	return &FS{
		dir:  dir,
		done: make(chan struct{}),
	}
}

// OnChange registers the change callback. It must be called before Start.
func (f *FS) OnChange(fn func(Event)) {
	f.onChange = fn
}

// Start implements Adapter. It blocks until Stop is called or the watch
// faults. Faults are wrapped with ErrWatch; a stop-triggered return is nil.
func (f *FS) Start() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Join(ErrWatch, err)
	}
	defer watcher.Close() //nolint:errcheck

	if err := watcher.Add(f.dir); err != nil {
		return errors.Join(ErrWatch, err)
	}

	for {
		select {
		case <-f.done:
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			f.deliver(event)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			return errors.Join(ErrWatch, err)
		}
	}
}

// Stop implements Adapter. It requests that Start return and never blocks.
// Calling it more than once is a no-op.
func (f *FS) Stop() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.stopped {
		return nil
	}

	f.stopped = true
	close(f.done)

	return nil
}

func (f *FS) deliver(event fsnotify.Event) {
	if f.onChange == nil {
		return
	}

	kind, ok := kindOf(event.Op)
	if !ok {
		return
	}

	f.onChange(Event{Kind: kind, Path: event.Name})
}

func kindOf(op fsnotify.Op) (Kind, bool) {
	switch {
	case op.Has(fsnotify.Create):
		return KindCreate, true
	case op.Has(fsnotify.Write):
		return KindModify, true
	case op.Has(fsnotify.Remove), op.Has(fsnotify.Rename):
		return KindDelete, true
	}

	// Chmod and friends are noise for wakeup purposes.
	return 0, false
}

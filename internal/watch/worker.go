// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/matt-FFFFFF/vigil/internal/ctxlog"
	"github.com/matt-FFFFFF/vigil/internal/supervise"
	"github.com/spf13/afero"
)

// SentinelName is the file created inside the watched directory during
// shutdown escalation. Its name is not a stable contract; its existence
// after shutdown is expected and harmless. The write truncates, so repeated
// shutdowns never accumulate more than one file.
const SentinelName = ".vigil-wakeup"

const sentinelFileMode = 0o644

// FsFactory returns the filesystem used for sentinel writes.
// Tests stub this to an in-memory filesystem.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

var _ supervise.Worker = (*Worker)(nil)

// Worker owns an Adapter and bridges its indefinitely-blocking watch call
// into the cooperative cancellation model. Detected changes are forwarded as
// application wakeups through the notify callback; the wake scope policy
// lives with the caller that builds the callback.
//
// Run hosts two concurrent activities: the blocking Start call, and the
// unblocker sub-task that escalates a stop request into (1) Adapter.Stop and
// (2) a manufactured sentinel write inside the watched directory. The
// unblocker is joined before Run returns, so "returned" really means
// "fully stopped".
type Worker struct {
	name    string
	dir     string
	adapter Adapter
	stop    *supervise.StopSignal
	gate    *supervise.Gate
	notify  func(Event)

	startDone atomic.Bool
}

// NewWorker creates a watcher worker around adapter, watching dir. notify is
// invoked for every delivered change event; it may be nil.
func NewWorker(name, dir string, adapter Adapter, stop *supervise.StopSignal, notify func(Event)) *Worker {
	w := &Worker{
		name:    name,
		dir:     dir,
		adapter: adapter,
		stop:    stop,
		gate:    supervise.NewGate(),
		notify:  notify,
	}

	adapter.OnChange(w.handleChange)

	return w
}

// Name implements supervise.Worker.
func (w *Worker) Name() string {
	return w.name
}

// Wake implements supervise.Worker. The only parked activity inside this
// worker is the unblocker sub-task, so a wake lets it re-check the stop
// signal.
func (w *Worker) Wake() {
	w.gate.Notify()
}

// Run implements supervise.Worker.
func (w *Worker) Run(ctx context.Context) error {
	logger := ctxlog.Logger(ctx).With("worker", w.name, "dir", w.dir)

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()
		w.unblocker(ctx)
	}()

	err := w.adapter.Start()

	// Let the unblocker finish even when Start returned on its own (fault
	// path) and no stop was ever requested.
	w.startDone.Store(true)
	w.gate.Notify()
	wg.Wait()

	if err != nil {
		return fmt.Errorf("watcher %s: %w", w.name, err)
	}

	logger.Debug("watch call returned cleanly")

	return nil
}

// unblocker parks until the stop signal trips or the blocking call returns
// by itself, then performs the two-step escalation. Stop alone is not
// trusted to unblock every adapter; the sentinel write guarantees one
// observable event inside the watched directory.
func (w *Worker) unblocker(ctx context.Context) {
	logger := ctxlog.Logger(ctx).With("worker", w.name, "dir", w.dir)

	w.gate.Wait(0, func() bool {
		return w.stop.Tripped() || w.startDone.Load()
	})

	if w.startDone.Load() {
		logger.Debug("watch returned before any stop request, unblocker exiting")
		return
	}

	logger.Debug("stop observed, requesting watch unblock")

	if err := w.adapter.Stop(); err != nil {
		logger.Warn("watch stop request failed", "error", err)
	}

	if err := w.writeSentinel(); err != nil {
		logger.Warn("sentinel write failed", "error", err)
	}

	logger.Debug("unblocker finished")
}

func (w *Worker) writeSentinel() error {
	fs := FsFactory()
	path := filepath.Join(w.dir, SentinelName)

	file, err := fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, sentinelFileMode)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if _, err := file.WriteString("wakeup\n"); err != nil {
		_ = file.Close()
		return err //nolint:wrapcheck
	}

	return file.Close() //nolint:wrapcheck
}

func (w *Worker) handleChange(event Event) {
	if w.notify == nil {
		return
	}

	w.notify(event)
}

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package supervise

import (
	"context"
	"fmt"
	"time"
)

var _ Worker = (*Periodic)(nil)

// ErrPeriodicTask is returned when a periodic worker's task fails.
var ErrPeriodicTask = fmt.Errorf("periodic task failed")

// Periodic is a worker whose loop is: wait on its gate with a timeout, then
// do a bounded piece of work, repeat until the stop signal trips. An external
// wake (filesystem change, shutdown broadcast) cuts the wait short.
type Periodic struct {
	name     string
	interval time.Duration
	task     func(ctx context.Context) error
	stop     *StopSignal
	gate     *Gate
}

// NewPeriodic creates a periodic worker. task may be nil for a worker that
// only wakes, checks for stop and goes back to sleep. A task error is fatal
// to the worker: it stops and is reported rather than silently retried, so
// shutdown stays bounded.
func NewPeriodic(name string, interval time.Duration, stop *StopSignal, task func(ctx context.Context) error) *Periodic {
	return &Periodic{
		name:     name,
		interval: interval,
		task:     task,
		stop:     stop,
		gate:     NewGate(),
	}
}

// Name implements Worker.
func (p *Periodic) Name() string {
	return p.name
}

// Wake implements Worker.
func (p *Periodic) Wake() {
	p.gate.Notify()
}

// Run implements Worker. It returns nil when the stop signal trips, the
// context error when the context is force-cancelled, and a wrapped task
// error when the periodic action fails.
func (p *Periodic) Run(ctx context.Context) error {
	for {
		if p.gate.Wait(p.interval, p.stop.Tripped) {
			return nil
		}

		if err := ctx.Err(); err != nil {
			return err //nolint:wrapcheck
		}

		if p.task == nil {
			continue
		}

		if err := p.task(ctx); err != nil {
			return fmt.Errorf("%w: %w", ErrPeriodicTask, err)
		}
	}
}

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package supervise

import (
	"context"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/vigil/internal/ctxlog"
)

// Supervisor owns the StopSignal and a fixed set of workers. It launches one
// goroutine per worker, broadcasts wakeups, and joins everything on shutdown.
type Supervisor struct {
	stop    *StopSignal
	workers []Worker
	results chan workerResult
	wg      sync.WaitGroup
}

type workerResult struct {
	name string
	err  error
}

// New creates a Supervisor around the given StopSignal.
func New(stop *StopSignal) *Supervisor {
	return &Supervisor{stop: stop}
}

// Add registers a worker. It must be called before Launch.
func (s *Supervisor) Add(w Worker) {
	s.workers = append(s.workers, w)
}

// StopSignal returns the signal shared with the workers.
func (s *Supervisor) StopSignal() *StopSignal {
	return s.stop
}

// Launch starts every registered worker in its own goroutine. Results are
// collected on a buffered channel and surfaced by Wait.
func (s *Supervisor) Launch(ctx context.Context) {
	s.results = make(chan workerResult, len(s.workers))

	for _, w := range s.workers {
		s.wg.Add(1)

		go func(w Worker) {
			defer s.wg.Done()

			logger := ctxlog.Logger(ctx).With("worker", w.Name())
			logger.Debug("worker starting")

			err := w.Run(ctx)
			if err != nil {
				logger.Error("worker terminated with error", "error", err)
			} else {
				logger.Info("worker stopped")
			}

			s.results <- workerResult{name: w.Name(), err: err}
		}(w)
	}
}

// RequestShutdown trips the StopSignal and then wakes every worker so each
// blocked wait returns and observes the trip. It is idempotent: any number
// of calls leaves the signal tripped and never deadlocks Wait.
func (s *Supervisor) RequestShutdown() {
	s.stop.Trip()

	for _, w := range s.workers {
		w.Wake()
	}
}

// WakeOthers wakes every worker except origin. Used when a change event
// should not re-wake the worker that observed it.
func (s *Supervisor) WakeOthers(origin Worker) {
	for _, w := range s.workers {
		if w == origin {
			continue
		}

		w.Wake()
	}
}

// WakeAll wakes every registered worker.
func (s *Supervisor) WakeAll() {
	for _, w := range s.workers {
		w.Wake()
	}
}

// Wait blocks until every launched worker goroutine has returned, in either
// order, and returns the workers' errors aggregated together (nil when all
// stopped cleanly). RequestShutdown must happen at some point before or
// during Wait, or Wait blocks until an external stop source fires.
func (s *Supervisor) Wait() error {
	s.wg.Wait()
	close(s.results)

	var merr *multierror.Error

	for res := range s.results {
		if res.err != nil {
			merr = multierror.Append(merr, fmt.Errorf("worker %s: %w", res.name, res.err))
		}
	}

	return merr.ErrorOrNil()
}

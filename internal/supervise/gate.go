// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package supervise

import (
	"sync"
	"time"
)

// Gate is a reusable wait/notify point for a single worker. One owner waits,
// any number of producers call Notify, and wakes are coalesced: there is no
// queue, only "current state plus at most one pending wake".
//
// A plain condition variable loses a notify that races with entering the
// wait. Gate avoids that by re-evaluating the caller's predicate under the
// lock before blocking as well as after every wake, which turns the lost-wake
// race into a correct level-triggered check.
type Gate struct {
	mu   sync.Mutex
	wake chan struct{}
}

// NewGate returns a Gate with no pending wake.
func NewGate() *Gate {
	return &Gate{wake: make(chan struct{})}
}

// Notify wakes every goroutine currently blocked in Wait. A Notify issued
// with no waiter parked is not queued; the predicate re-check on entry to
// Wait covers the "state changed just before I waited" window.
func (g *Gate) Notify() {
	g.mu.Lock()
	close(g.wake)
	g.wake = make(chan struct{})
	g.mu.Unlock()
}

// Wait blocks the calling goroutine until pred returns true or timeout
// elapses, whichever comes first, and reports whether pred held. pred is
// evaluated under the gate lock before sleeping and after every wake, so it
// must be fast and must not call back into the gate.
//
// A timeout of zero or less means wait indefinitely for pred.
func (g *Gate) Wait(timeout time.Duration, pred func() bool) bool {
	var timeoutC <-chan time.Time

	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()

		timeoutC = timer.C
	}

	for {
		g.mu.Lock()

		if pred() {
			g.mu.Unlock()
			return true
		}

		wake := g.wake
		g.mu.Unlock()

		select {
		case <-wake:
		case <-timeoutC:
			// One final check so a trip that raced the timer is not
			// reported as a timeout.
			g.mu.Lock()
			held := pred()
			g.mu.Unlock()

			return held
		}
	}
}

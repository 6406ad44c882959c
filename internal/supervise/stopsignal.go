// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package supervise

import "sync/atomic"

// StopSignal is a process-wide cancellation flag. It is monotonic: once
// tripped it never reverts. Trip is idempotent and safe from any goroutine,
// and happens-before any subsequent Tripped call that observes true.
//
// StopSignal carries no wakeup logic of its own; broadcasting the wake gates
// after a trip is the Supervisor's job. Keeping the two apart avoids hidden
// ordering dependencies between the flag and the gates.
type StopSignal struct {
	tripped atomic.Bool
}

// NewStopSignal returns an untripped StopSignal.
func NewStopSignal() *StopSignal {
	return &StopSignal{}
}

// Trip sets the flag. Calling it more than once is a no-op.
func (s *StopSignal) Trip() {
	s.tripped.Store(true)
}

// Tripped reports whether Trip has been called.
func (s *StopSignal) Tripped() bool {
	return s.tripped.Load()
}

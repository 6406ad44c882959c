// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package supervise

import (
	"context"
	"fmt"
)

// Worker is a long-lived background task managed by a Supervisor.
type Worker interface {
	// Name identifies the worker in logs and aggregated errors.
	Name() string
	// Run executes the worker until its stop signal trips or it faults.
	// It must return only when the worker is fully stopped, including any
	// sub-tasks it spawned. Errors are reported to the supervisor; Run must
	// never panic across this boundary.
	Run(ctx context.Context) error
	// Wake unparks the worker if it is blocked waiting on its gate.
	// It is safe to call from any goroutine at any time.
	Wake()
}

// WakeScope selects which workers a filesystem change event wakes up.
type WakeScope int

const (
	// WakeScopeOthers wakes every worker except the one that observed the
	// change.
	WakeScopeOthers WakeScope = iota
	// WakeScopeAll wakes every worker, the observer included.
	WakeScopeAll
)

// ErrUnknownWakeScope is returned when a wake scope string cannot be parsed.
var ErrUnknownWakeScope = fmt.Errorf("unknown wake scope")

// ParseWakeScope converts the command line representation of a wake scope.
// Valid values are "others" and "all".
func ParseWakeScope(s string) (WakeScope, error) {
	switch s {
	case "others":
		return WakeScopeOthers, nil
	case "all":
		return WakeScopeAll, nil
	}

	return WakeScopeOthers, fmt.Errorf("%w: %q", ErrUnknownWakeScope, s)
}

// String implements fmt.Stringer for WakeScope.
func (s WakeScope) String() string {
	if s == WakeScopeAll {
		return "all"
	}

	return "others"
}

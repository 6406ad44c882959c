// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package supervise

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/matt-FFFFFF/vigil/internal/ctxlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func quietCtx() context.Context {
	return ctxlog.New(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestPeriodicStopsOnTrip(t *testing.T) {
	defer goleak.VerifyNone(t)

	stop := NewStopSignal()

	var ticks atomic.Int32

	periodic := NewPeriodic("ticker", 10*time.Millisecond, stop, func(_ context.Context) error {
		ticks.Add(1)
		return nil
	})

	done := make(chan error, 1)

	go func() {
		done <- periodic.Run(quietCtx())
	}()

	time.Sleep(50 * time.Millisecond)
	stop.Trip()
	periodic.Wake()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("periodic worker did not stop")
	}

	assert.Positive(t, ticks.Load(), "expected at least one periodic tick")
}

func TestPeriodicWakeCutsWaitShort(t *testing.T) {
	defer goleak.VerifyNone(t)

	stop := NewStopSignal()
	ticked := make(chan struct{}, 8)

	// Interval far longer than the test: only an external wake can tick it.
	periodic := NewPeriodic("sleeper", time.Hour, stop, func(_ context.Context) error {
		ticked <- struct{}{}
		return nil
	})

	done := make(chan error, 1)

	go func() {
		done <- periodic.Run(quietCtx())
	}()

	time.Sleep(20 * time.Millisecond)
	periodic.Wake()

	select {
	case <-ticked:
	case <-time.After(2 * time.Second):
		t.Fatal("external wake did not cut the wait short")
	}

	stop.Trip()
	periodic.Wake()
	require.NoError(t, <-done)
}

func TestPeriodicTaskErrorIsFatal(t *testing.T) {
	defer goleak.VerifyNone(t)

	stop := NewStopSignal()
	periodic := NewPeriodic("faulty", 10*time.Millisecond, stop, func(_ context.Context) error {
		return os.ErrClosed
	})

	done := make(chan error, 1)

	go func() {
		done <- periodic.Run(quietCtx())
	}()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrPeriodicTask)
		assert.ErrorIs(t, err, os.ErrClosed)
	case <-time.After(2 * time.Second):
		t.Fatal("faulty task was retried instead of stopping the worker")
	}
}

func TestPeriodicForcedContextCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	stop := NewStopSignal()
	periodic := NewPeriodic("cancelled", 10*time.Millisecond, stop, nil)

	ctx, cancel := context.WithCancel(quietCtx())
	done := make(chan error, 1)

	go func() {
		done <- periodic.Run(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("worker ignored forced cancellation")
	}
}

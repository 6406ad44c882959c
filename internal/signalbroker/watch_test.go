// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/matt-FFFFFF/vigil/internal/ctxlog"
	"github.com/stretchr/testify/assert"
)

func quietCtx() context.Context {
	return ctxlog.New(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestWatchFirstSignalRequestsGracefulShutdown(t *testing.T) {
	sigCh := make(chan os.Signal, 1)

	var graceful, forced atomic.Int32

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()
		Watch(quietCtx(), sigCh, func() { graceful.Add(1) }, func() { forced.Add(1) })
	}()

	sigCh <- os.Interrupt
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, int32(1), graceful.Load(), "first signal must request graceful shutdown")
	assert.Equal(t, int32(0), forced.Load(), "first signal must not force termination")

	close(sigCh)
	wg.Wait()
}

func TestWatchSecondSignalForcesTermination(t *testing.T) {
	sigCh := make(chan os.Signal, 2)

	var graceful, forced atomic.Int32

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()
		Watch(quietCtx(), sigCh, func() { graceful.Add(1) }, func() { forced.Add(1) })
	}()

	sigCh <- os.Interrupt
	sigCh <- os.Interrupt
	wg.Wait()

	assert.Equal(t, int32(1), graceful.Load())
	assert.Equal(t, int32(1), forced.Load())

	// Watch closes the channel after the second signal.
	_, open := <-sigCh
	assert.False(t, open, "signal channel must be closed after forced termination")
}

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"
	"os/signal"

	"github.com/matt-FFFFFF/vigil/internal/ctxlog"
)

// Watch monitors the signal channel. The first terminating signal calls
// graceful, which should start a cooperative shutdown. The second signal of
// any kind closes the channel and calls force, abandoning cooperation.
// Watch returns when the channel is closed.
func Watch(ctx context.Context, sigCh chan os.Signal, graceful func(), force context.CancelFunc) {
	seen := 0

	for sig := range sigCh {
		seen++

		if seen > 1 {
			ctxlog.Warn(ctx, "watchdog", "detail", "received second signal, forcefully terminating", "signal", sig.String())
			// Unsubscribe first so a late signal is not delivered to a
			// closed channel.
			signal.Stop(sigCh)
			close(sigCh)
			force()

			return
		}

		ctxlog.Info(ctx, "watchdog", "detail", "received signal, requesting graceful shutdown", "signal", sig.String())
		graceful()
	}
}

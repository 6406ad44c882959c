// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package run

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/matt-FFFFFF/vigil/internal/console"
	"github.com/matt-FFFFFF/vigil/internal/ctxlog"
	"github.com/matt-FFFFFF/vigil/internal/signalbroker"
	"github.com/matt-FFFFFF/vigil/internal/supervise"
	"github.com/matt-FFFFFF/vigil/internal/watch"
	"github.com/urfave/cli/v3"
)

const (
	dirFlag       = "dir"
	intervalFlag  = "interval"
	wakeScopeFlag = "wake-scope"
	noConsoleFlag = "no-console"

	defaultInterval = time.Second
)

// RunCmd starts the supervisor with a periodic worker and a filesystem
// watcher worker, then waits for a quit command or signal.
var RunCmd = &cli.Command{
	Name:        "run",
	Description: "Run the worker supervisor until a quit command or terminating signal arrives.",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    dirFlag,
			Aliases: []string{"d"},
			Usage:   "Directory watched for filesystem changes",
			Value:   os.TempDir(),
		},
		&cli.DurationFlag{
			Name:    intervalFlag,
			Aliases: []string{"i"},
			Usage:   "Wake interval of the periodic worker",
			Value:   defaultInterval,
		},
		&cli.StringFlag{
			Name:  wakeScopeFlag,
			Usage: "Which workers a filesystem change wakes: 'others' or 'all'",
			Value: supervise.WakeScopeOthers.String(),
		},
		&cli.BoolFlag{
			Name:  noConsoleFlag,
			Usage: "Disable the interactive console; stop on signals only",
			Value: false,
		},
	},
	Action: actionFunc,
}

// validate checks the run options before any worker starts. Configuration
// errors terminate the process immediately with a non-zero exit code.
func validate(dir string, interval time.Duration, scopeValue string) (supervise.WakeScope, error) {
	scope, err := supervise.ParseWakeScope(scopeValue)
	if err != nil {
		return scope, fmt.Errorf("invalid --%s: %w", wakeScopeFlag, err)
	}

	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return scope, fmt.Errorf("invalid --%s: %s is not a watchable directory", dirFlag, dir)
	}

	if interval <= 0 {
		return scope, fmt.Errorf("invalid --%s: must be positive", intervalFlag)
	}

	return scope, nil
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	dir := cmd.String(dirFlag)
	interval := cmd.Duration(intervalFlag)

	scope, err := validate(dir, interval, cmd.String(wakeScopeFlag))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	logger := ctxlog.Logger(ctx)
	logger.Info("vigil starting", "dir", dir, "interval", interval.String(), "wakeScope", scope.String())

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	stop := supervise.NewStopSignal()
	sup := supervise.New(stop)

	periodic := supervise.NewPeriodic("periodic", interval, stop, func(taskCtx context.Context) error {
		ctxlog.Debug(taskCtx, "periodic tick")
		return nil
	})

	adapter := watch.NewFS(dir)

	var watcher *watch.Worker

	watcher = watch.NewWorker("fswatcher", dir, adapter, stop, func(event watch.Event) {
		logger.Debug("filesystem change", "kind", event.Kind.String(), "path", event.Path)

		switch scope {
		case supervise.WakeScopeAll:
			sup.WakeAll()
		case supervise.WakeScopeOthers:
			sup.WakeOthers(watcher)
		}
	})

	sup.Add(periodic)
	sup.Add(watcher)
	sup.Launch(runCtx)

	sigCh := signalbroker.New(runCtx)
	go signalbroker.Watch(runCtx, sigCh, sup.RequestShutdown, cancel)

	if !cmd.Bool(noConsoleFlag) {
		go func() {
			if err := console.Run(runCtx, os.Stdin, cmd.Writer); err != nil {
				logger.Warn("console stopped", "error", err)
			}

			logger.Info("request stop all workers")
			sup.RequestShutdown()
		}()
	}

	err = sup.Wait()
	if err != nil {
		return fmt.Errorf("supervisor: %w", err)
	}

	logger.Info("all workers stopped")

	return nil
}

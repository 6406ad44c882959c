// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"os"

	"github.com/matt-FFFFFF/vigil/cmd/run"
	"github.com/urfave/cli/v3"
)

// RootCmd is the root command for the CLI. Version is populated by main from
// the build-time variables.
var RootCmd = &cli.Command{
	Commands: []*cli.Command{
		run.RunCmd,
	},
	DefaultCommand: "run",
	Writer:         os.Stdout,
	ErrWriter:      os.Stderr,
	Name:           "vigil",
	Description: `Vigil supervises a small set of long-lived background workers:
a periodic task and a filesystem watcher. Workers run until told to stop, are
individually wakeable by filesystem changes or a timer, and shut down
deterministically when a quit command or signal arrives - including a worker
parked inside the blocking watch call.`,
	Usage:     "vigil run --dir /tmp",
	Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
	Authors: []any{
		"Matt White (matt-FFFFFF)",
	},
	EnableShellCompletion: true,
}

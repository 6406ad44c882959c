// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package console implements the interactive command loop: single-letter
// commands on standard input, where q requests shutdown and anything else
// prints a key-options reminder. When stdin is a terminal the loop runs on a
// liner prompt with history and Ctrl+C handling; otherwise it falls back to
// a plain line scanner, which is what the tests drive.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/matt-FFFFFF/vigil/internal/ctxlog"
	"github.com/peterh/liner"
	"golang.org/x/term"
)

const prompt = "vigil> "

var (
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	quitStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
)

func helpText() string {
	return helpStyle.Render(strings.Join([]string{
		"Key options are:",
		"  q - quit from the program",
	}, "\n"))
}

func quitText() string {
	return quitStyle.Render("Received QUIT command, exiting..")
}

// Run reads commands from in until a quit command arrives or the input ends,
// then returns. The caller is expected to request supervisor shutdown
// afterwards. Reading blocks without regard to ctx; ctx is used for logging
// only, matching the blocking console semantics of a foreground daemon.
func Run(ctx context.Context, in io.Reader, out io.Writer) error {
	if file, ok := in.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		return runInteractive(ctx, out)
	}

	return runScanner(ctx, in, out)
}

func runInteractive(ctx context.Context, out io.Writer) error {
	line := liner.NewLiner()
	defer line.Close() //nolint:errcheck

	line.SetCtrlCAborts(true)

	for {
		input, err := line.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return fmt.Errorf("console read failed: %w", err)
		}

		if quit := handle(ctx, input, out); quit {
			return nil
		}

		line.AppendHistory(input)
	}
}

func runScanner(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	for scanner.Scan() {
		if quit := handle(ctx, scanner.Text(), out); quit {
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("console read failed: %w", err)
	}

	// Input ended without a quit command; treat it the same way.
	return nil
}

// handle processes one input line and reports whether quit was requested.
func handle(ctx context.Context, input string, out io.Writer) bool {
	switch strings.TrimSpace(input) {
	case "":
		return false
	case "q":
		fmt.Fprintln(out, quitText())
		ctxlog.Debug(ctx, "console", "detail", "quit command received")

		return true
	default:
		fmt.Fprintln(out, helpText())

		return false
	}
}

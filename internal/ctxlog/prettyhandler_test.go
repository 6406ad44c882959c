// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrettyHandlerWritesMessageAndAttrs(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(NewPretty(
		&slog.HandlerOptions{Level: slog.LevelDebug},
		WithDestinationWriter(buf),
	))

	logger.Info("worker stopped", "worker", "periodic")

	output := buf.String()
	require.NotEmpty(t, output)
	assert.Contains(t, output, "worker stopped")
	assert.Contains(t, output, "periodic")
	assert.Contains(t, output, "INFO")
}

func TestPrettyHandlerRespectsLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(NewPretty(
		&slog.HandlerOptions{Level: slog.LevelWarn},
		WithDestinationWriter(buf),
	))

	logger.Info("should be filtered")
	logger.Warn("should appear")

	assert.NotContains(t, buf.String(), "should be filtered")
	assert.Contains(t, buf.String(), "should appear")
}

func TestPrettyHandlerWithAttrs(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(NewPretty(
		&slog.HandlerOptions{Level: slog.LevelDebug},
		WithDestinationWriter(buf),
	)).With("component", "watcher")

	logger.Info("hello")

	assert.Contains(t, buf.String(), "watcher")
}

func TestLevelFromEnvDefaultsToInfo(t *testing.T) {
	t.Setenv(levelEnvName, "")
	assert.Equal(t, slog.LevelInfo, levelFromEnv())

	t.Setenv(levelEnvName, "DEBUG")
	assert.Equal(t, slog.LevelDebug, levelFromEnv())

	t.Setenv(levelEnvName, "nonsense")
	assert.Equal(t, slog.LevelInfo, levelFromEnv())
}

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunQuitCommand(t *testing.T) {
	in := strings.NewReader("x\nq\nignored after quit\n")
	out := &bytes.Buffer{}

	err := Run(context.Background(), in, out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Key options are", "unknown command must print the reminder")
	assert.Contains(t, out.String(), "QUIT")
	assert.NotContains(t, out.String(), "ignored after quit")
}

func TestRunBlankLinesAreIgnored(t *testing.T) {
	in := strings.NewReader("\n\n  \nq\n")
	out := &bytes.Buffer{}

	err := Run(context.Background(), in, out)
	require.NoError(t, err)

	assert.NotContains(t, out.String(), "Key options are")
	assert.Contains(t, out.String(), "QUIT")
}

func TestRunInputEndsWithoutQuit(t *testing.T) {
	in := strings.NewReader("h\n")
	out := &bytes.Buffer{}

	err := Run(context.Background(), in, out)
	require.NoError(t, err, "EOF is treated like a quit request")
	assert.Contains(t, out.String(), "Key options are")
}

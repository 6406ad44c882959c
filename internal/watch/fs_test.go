// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestFSStopUnblocksStart(t *testing.T) {
	defer goleak.VerifyNone(t)

	adapter := NewFS(t.TempDir())
	done := make(chan error, 1)

	go func() {
		done <- adapter.Start()
	}()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, adapter.Stop())
	require.NoError(t, adapter.Stop(), "second stop must be a no-op")

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("stop did not unblock the watch")
	}
}

func TestFSStartMissingDirFails(t *testing.T) {
	defer goleak.VerifyNone(t)

	adapter := NewFS(filepath.Join(t.TempDir(), "missing"))

	err := adapter.Start()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWatch)
}

func TestFSDeliversCreateEvents(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	adapter := NewFS(dir)
	events := make(chan Event, 16)

	adapter.OnChange(func(event Event) {
		events <- event
	})

	done := make(chan error, 1)

	go func() {
		done <- adapter.Start()
	}()

	// Give the watch a moment to establish before producing the change.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "touched"), []byte("x"), 0o644))

	select {
	case event := <-events:
		assert.Contains(t, []Kind{KindCreate, KindModify}, event.Kind)
		assert.Equal(t, filepath.Join(dir, "touched"), event.Path)
	case <-time.After(2 * time.Second):
		t.Fatal("no change event delivered")
	}

	require.NoError(t, adapter.Stop())
	require.NoError(t, <-done)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "create", KindCreate.String())
	assert.Equal(t, "modify", KindModify.String())
	assert.Equal(t, "delete", KindDelete.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

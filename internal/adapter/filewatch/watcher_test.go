package filewatch

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sm8ta/webike_fleet_dashboard/internal/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inventory.csv")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0644))

	var calls atomic.Int32
	w, err := New(path, 100*time.Millisecond, func(p string) error {
		calls.Add(1)
		return nil
	}, logger.NewWithWriter(&bytes.Buffer{}))
	require.NoError(t, err)
	defer w.Stop()

	// a burst of writes inside the window reloads once
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("abc"), 0644))
	}

	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 3*time.Second, 20*time.Millisecond)
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inventory.csv")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0644))

	var calls atomic.Int32
	w, err := New(path, 20*time.Millisecond, func(string) error {
		calls.Add(1)
		return nil
	}, logger.NewWithWriter(&bytes.Buffer{}))
	require.NoError(t, err)
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.csv"), []byte("x"), 0644))
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}

func TestWatcher_LogsReloadFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inventory.csv")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0644))

	var buf safeBuffer
	done := make(chan struct{}, 1)
	w, err := New(path, 20*time.Millisecond, func(string) error {
		defer func() { done <- struct{}{} }()
		return errors.New("bad header")
	}, logger.NewWithWriter(&buf))
	require.NoError(t, err)
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte("b"), 0644))
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("reload not called")
	}
	assert.Eventually(t, func() bool { return bytes.Contains(buf.Bytes(), []byte("bad header")) }, time.Second, 10*time.Millisecond)
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.csv")
	w, err := New(path, DefaultDebounce, func(string) error { return nil }, logger.NewWithWriter(&bytes.Buffer{}))
	require.NoError(t, err)
	require.NoError(t, w.Stop())
	assert.NoError(t, w.Stop())
}

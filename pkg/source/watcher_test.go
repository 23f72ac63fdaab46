package source

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncer_CollapsesBursts(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	defer d.Stop()

	var calls atomic.Int32
	for i := 0; i < 5; i++ {
		d.Trigger(func() { calls.Add(1) })
	}

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 10*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestDebouncer_Stop(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	var calls atomic.Int32
	d.Trigger(func() { calls.Add(1) })
	d.Stop()
	d.Trigger(func() { calls.Add(1) })

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}

func TestHasDocumentExtension(t *testing.T) {
	assert.True(t, HasDocumentExtension("m.yaml"))
	assert.True(t, HasDocumentExtension("m.YML"))
	assert.True(t, HasDocumentExtension("dir/m.json"))
	assert.False(t, HasDocumentExtension("m.txt"))
	assert.False(t, HasDocumentExtension("yaml"))
}

func TestWatcher_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "m.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1.0.0\n"), 0o644))

	w, err := NewWatcher(path, 20*time.Millisecond, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- w.Watch(ctx, func(context.Context) error {
			calls.Add(1)
			return nil
		})
	}()

	// Give the watcher time to register.
	time.Sleep(50 * time.Millisecond)

	// A sibling file does not trigger.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("version: 1.0.1\n"), 0o644))

	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcher_Directory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "reactions"), 0o755))

	w, err := NewWatcher(dir, 20*time.Millisecond, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	go w.Watch(ctx, func(context.Context) error {
		calls.Add(1)
		return nil
	})
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "reactions", "r.json"), []byte("{}"), 0o644))
	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestWatcher_MissingPath(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "missing.yaml"), time.Millisecond, nil)
	require.NoError(t, err)

	err = w.Watch(context.Background(), func(context.Context) error { return nil })
	var srcErr *SourceError
	require.ErrorAs(t, err, &srcErr)
	assert.Equal(t, "watch", srcErr.Operation)
}

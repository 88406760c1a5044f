package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatcher(t *testing.T, path string, handler Handler) (*Watcher, func() error) {
	t.Helper()
	w, err := New(path, 50*time.Millisecond, handler, nil)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	var once sync.Once
	var runErr error
	stop := func() error {
		once.Do(func() {
			cancel()
			select {
			case runErr = <-done:
			case <-time.After(5 * time.Second):
				runErr = errors.New("Run did not return after cancel")
			}
		})
		return runErr
	}
	t.Cleanup(func() { _ = stop() })
	return w, stop
}

func TestWatcher_RunsHandlerOnChange(t *testing.T) {
	dir := t.TempDir()
	draft := filepath.Join(dir, "Moon.txt")
	require.NoError(t, os.WriteFile(draft, []byte("{}"), 0o644))

	calls := make(chan string, 10)
	w, _ := startWatcher(t, draft, func(ctx context.Context, path string) error {
		calls <- path
		return nil
	})

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(draft, []byte(`{"BASE_DATA":{}}`), 0o644))

	select {
	case got := <-calls:
		assert.Equal(t, w.Path(), got)
	case <-time.After(5 * time.Second):
		t.Fatal("handler was not called")
	}
}

func TestWatcher_Debounces(t *testing.T) {
	dir := t.TempDir()
	draft := filepath.Join(dir, "Moon.txt")
	require.NoError(t, os.WriteFile(draft, []byte("{}"), 0o644))

	var runs atomic.Int32
	w, _ := startWatcher(t, draft, func(ctx context.Context, path string) error {
		runs.Add(1)
		return nil
	})

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(draft, []byte("{}"), 0o644))
	}

	require.Eventually(t, func() bool { return runs.Load() >= 1 }, 5*time.Second, 10*time.Millisecond)
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(1), runs.Load())
	assert.GreaterOrEqual(t, w.Stats().Events, 1)
}

func TestWatcher_HandlerErrorsAreCounted(t *testing.T) {
	dir := t.TempDir()
	draft := filepath.Join(dir, "Moon.txt")
	require.NoError(t, os.WriteFile(draft, []byte("{}"), 0o644))

	boom := errors.New("boom")
	w, stop := startWatcher(t, draft, func(ctx context.Context, path string) error {
		return boom
	})

	assert.ErrorIs(t, w.Trigger(context.Background()), boom)
	stats := w.Stats()
	assert.Equal(t, 1, stats.Runs)
	assert.Equal(t, 1, stats.Errors)
	assert.ErrorIs(t, stats.LastError, boom)

	assert.NoError(t, stop())
}

func TestNew_MissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing", "Moon.txt"), time.Millisecond, nil, nil)
	assert.Error(t, err)
}

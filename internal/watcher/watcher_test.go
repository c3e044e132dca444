package watcher_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"conversion-wiz/internal/watcher"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func startWatcher(t *testing.T, path string) (*watcher.Watcher, <-chan struct{}) {
	t.Helper()
	w, err := watcher.New(watcher.Config{
		Path:        path,
		DebounceDur: 50 * time.Millisecond,
		Logger:      zaptest.NewLogger(t),
	})
	require.NoError(t, err, "failed to create watcher")

	onChange, err := w.Start()
	require.NoError(t, err, "failed to start watcher")
	return w, onChange
}

func TestWatcher_DebounceMultipleWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "units.yaml")
	require.NoError(t, os.WriteFile(path, []byte("units: []\n"), 0644))

	w, onChange := startWatcher(t, path)
	defer func() { _ = w.Stop() }()

	// Rapid writes should coalesce into single notification
	for i := 0; i < 10; i++ {
		err := os.WriteFile(path, []byte(fmt.Sprintf("# %d\nunits: []\n", i)), 0644)
		require.NoError(t, err, "failed to write file")
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-onChange:
	case <-time.After(time.Second):
		t.Fatal("expected notification but got timeout")
	}

	select {
	case <-onChange:
		t.Fatal("unexpected second notification")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "units.yaml")
	require.NoError(t, os.WriteFile(path, []byte("units: []\n"), 0644))

	w, onChange := startWatcher(t, path)
	defer func() { _ = w.Stop() }()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0644))

	select {
	case <-onChange:
		t.Fatal("unexpected notification for unrelated file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_SeesReplaceByRename(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "units.yaml")
	require.NoError(t, os.WriteFile(path, []byte("units: []\n"), 0644))

	w, onChange := startWatcher(t, path)
	defer func() { _ = w.Stop() }()

	tmp := filepath.Join(dir, "units.yaml.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte("units: []\n"), 0644))
	require.NoError(t, os.Rename(tmp, path))

	select {
	case <-onChange:
	case <-time.After(time.Second):
		t.Fatal("expected notification after rename")
	}
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	w, _ := startWatcher(t, filepath.Join(dir, "units.yaml"))
	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
}

func TestWatcher_StartFailsForMissingDirectory(t *testing.T) {
	w, err := watcher.New(watcher.DefaultConfig(filepath.Join(t.TempDir(), "missing", "units.yaml")))
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	_, err = w.Start()
	require.Error(t, err)
}

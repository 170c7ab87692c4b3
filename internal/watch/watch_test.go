package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/require"
)

func TestRunReportsChangedBaseNames(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan []string, 4)
	done := make(chan error, 1)
	go func() {
		done <- New(dir, 300*time.Millisecond, nil).Run(ctx, func(_ context.Context, names []string) {
			changes <- names
		})
	}()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "zinc.yaml"), []byte("name: Zinc\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "eerie.json"), []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("ignored"), 0o644))

	select {
	case names := <-changes:
		require.Equal(t, []string{"eerie", "zinc"}, names)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestRunMissingDirectory(t *testing.T) {
	t.Parallel()

	err := New(filepath.Join(t.TempDir(), "absent"), 0, nil).Run(context.Background(), func(context.Context, []string) {})
	require.Error(t, err)
}

func TestBaseName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		event fsnotify.Event
		name  string
		ok    bool
	}{
		{fsnotify.Event{Name: "/x/eerie.json", Op: fsnotify.Write}, "eerie", true},
		{fsnotify.Event{Name: "/x/gray.yml", Op: fsnotify.Remove}, "gray", true},
		{fsnotify.Event{Name: "/x/gray.yml", Op: fsnotify.Chmod}, "", false},
		{fsnotify.Event{Name: "/x/README.md", Op: fsnotify.Create}, "", false},
		{fsnotify.Event{Name: "/x/.json", Op: fsnotify.Create}, "", false},
	}
	for _, tc := range cases {
		name, ok := baseName(tc.event)
		require.Equal(t, tc.ok, ok, tc.event.Name)
		require.Equal(t, tc.name, name, tc.event.Name)
	}
}

package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func startWatcher(t *testing.T, files []string, callback func(string)) context.CancelFunc {
	t.Helper()
	fw, err := NewFileWatcher(20*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("NewFileWatcher: %v", err)
	}
	if err := fw.Watch(files, callback); err != nil {
		t.Fatalf("Watch: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- fw.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		if err := <-done; !errors.Is(err, context.Canceled) {
			t.Errorf("Run returned %v, want context.Canceled", err)
		}
		fw.Close()
	})
	return cancel
}

func TestWatchDebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "drawing.gcs")
	if err := os.WriteFile(path, []byte("tool point\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	changed := make(chan string, 10)
	startWatcher(t, []string{path}, func(p string) { changed <- p })

	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte("tool line\n"), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}

	select {
	case got := <-changed:
		if got != path {
			t.Errorf("callback path = %q, want %q", got, path)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("no change reported")
	}

	select {
	case got := <-changed:
		t.Errorf("burst of writes reported twice, second for %q", got)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatchIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "drawing.gcs")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	changed := make(chan string, 10)
	startWatcher(t, []string{path}, func(p string) { changed <- p })

	if err := os.WriteFile(filepath.Join(dir, "other.gcs"), []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	select {
	case got := <-changed:
		t.Errorf("unexpected change for %q", got)
	case <-time.After(200 * time.Millisecond):
	}
}

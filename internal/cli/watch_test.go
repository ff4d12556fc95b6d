package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

func TestWatchFilesDebounces(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "chart.toml")
	other := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(target, []byte("rows = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		t.Fatal(err)
	}
	defer watcher.Close()
	if err := watcher.Add(dir); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan string, 1)
	logger := log.NewWithOptions(io.Discard, log.Options{})
	go watchFiles(ctx, logger, watcher, []string{filepath.Clean(target)}, 50*time.Millisecond, changes)

	// Unrelated files are ignored.
	if err := os.WriteFile(other, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case name := <-changes:
		t.Fatalf("unexpected change for %s", name)
	case <-time.After(200 * time.Millisecond):
	}

	for i := range 3 {
		if err := os.WriteFile(target, []byte{byte('a' + i)}, 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case name := <-changes:
		if name != filepath.Clean(target) {
			t.Errorf("change for %s, want %s", name, target)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no change reported")
	}

	select {
	case <-changes:
		t.Error("rapid writes should be reported once")
	case <-time.After(200 * time.Millisecond):
	}
}

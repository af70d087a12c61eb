package filesystem

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestWatcher(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "lazyfiles-watcher-test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	settings := filepath.Join(tmpDir, ".lazyfiles.json")
	w, err := NewWatcher(tmpDir, settings, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	// Wait for watcher to start up
	time.Sleep(100 * time.Millisecond)

	// Create a file
	testFile := filepath.Join(tmpDir, "test.txt")
	if err := os.WriteFile(testFile, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}

	// Wait for event
	select {
	case event := <-w.Events:
		if event != testFile {
			t.Errorf("expected event for %s, got %s", testFile, event)
		}
	case <-time.After(2 * time.Second):
		t.Error("timeout waiting for file creation event")
	}

	// Dotfile events are noise and must not trigger a refresh.
	dotFile := filepath.Join(tmpDir, ".cache")
	if err := os.WriteFile(dotFile, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case event := <-w.Events:
		t.Errorf("unexpected event for dotfile: %s", event)
	case <-time.After(500 * time.Millisecond):
		// Success, no event received
	}

	// The settings file is a dotfile, but its writes are exactly how
	// hide/unhide edits reach the tree, so they must pass through.
	if err := os.WriteFile(settings, []byte(`{"hidden":[]}`), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case event := <-w.Events:
		if event != settings {
			t.Errorf("expected event for %s, got %s", settings, event)
		}
	case <-time.After(2 * time.Second):
		t.Error("timeout waiting for settings file event")
	}
}

func TestWatcher_NewDirectoryGetsWatched(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "lazyfiles-watcher-subdir")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	w, err := NewWatcher(tmpDir, "", zerolog.Nop())
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	time.Sleep(100 * time.Millisecond)

	subDir := filepath.Join(tmpDir, "sub")
	if err := os.Mkdir(subDir, 0755); err != nil {
		t.Fatal(err)
	}

	select {
	case <-w.Events:
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for directory creation event")
	}

	// Give the watcher a beat to register the new directory, then make
	// sure changes inside it are seen.
	time.Sleep(200 * time.Millisecond)

	inner := filepath.Join(subDir, "inner.txt")
	if err := os.WriteFile(inner, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case event := <-w.Events:
		if event != inner {
			t.Errorf("expected event for %s, got %s", inner, event)
		}
	case <-time.After(2 * time.Second):
		t.Error("timeout waiting for event inside new directory")
	}
}

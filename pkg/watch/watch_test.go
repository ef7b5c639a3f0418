package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"hgline/pkg/hg"

	"github.com/fsnotify/fsnotify"
)

func TestRelevant(t *testing.T) {
	tests := []struct {
		event fsnotify.Event
		want  bool
	}{
		{fsnotify.Event{Name: "/r/.hg/bookmarks.current", Op: fsnotify.Write}, true},
		{fsnotify.Event{Name: "/r/.hg/bookmarks.current", Op: fsnotify.Remove}, true},
		{fsnotify.Event{Name: "/r/.hg/namejournal", Op: fsnotify.Create}, true},
		{fsnotify.Event{Name: "/r/.hg/namejournal", Op: fsnotify.Chmod}, false},
		{fsnotify.Event{Name: "/r/.hg/dirstate", Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		if got := relevant(tt.event); got != tt.want {
			t.Errorf("relevant(%v) = %v, want %v", tt.event, got, tt.want)
		}
	}
}

func TestWatcher_BookmarkWrite(t *testing.T) {
	hgDir := filepath.Join(t.TempDir(), hg.MarkerDir)
	if err := os.MkdirAll(hgDir, 0o755); err != nil {
		t.Fatal(err)
	}

	w, err := New(hgDir)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 16)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func() { changed <- struct{}{} })
	}()

	if err := os.WriteFile(filepath.Join(hgDir, "dirstate"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(hgDir, hg.BookmarkFile), []byte("feature"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change notification")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not stop after cancel")
	}
}

func TestNew_MissingDirectory(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("Expected error for missing directory")
	}
}

// Package watch reports changes to the files that decide a repository's
// branch label.
package watch

import (
	"context"
	"fmt"
	"path/filepath"

	"hgline/pkg/hg"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a .hg directory for bookmark and journal updates.
type Watcher struct {
	dir     string
	watcher *fsnotify.Watcher
}

// New starts watching hgDir. The watch is released when Run returns.
func New(hgDir string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.Add(hgDir); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", hgDir, err)
	}
	return &Watcher{dir: hgDir, watcher: w}, nil
}

// Run calls onChange for every relevant event until ctx is done or the
// watcher fails. The watcher is closed when Run returns.
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if relevant(event) {
				onChange()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watching %s: %w", w.dir, err)
		}
	}
}

func relevant(event fsnotify.Event) bool {
	switch filepath.Base(event.Name) {
	case hg.BookmarkFile, hg.JournalFile:
	default:
		return false
	}
	return event.Has(fsnotify.Create) || event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}

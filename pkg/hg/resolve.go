package hg

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned for state files that are not UTF-8 text.
var ErrInvalidUTF8 = errors.New("not valid UTF-8")

const (
	// BookmarkFile holds the active bookmark, when there is one.
	BookmarkFile = "bookmarks.current"
	// JournalFile records branch and bookmark transitions, newest last.
	JournalFile = "namejournal"
)

// Source produces a branch label from a .hg directory.
type Source interface {
	Name() string
	Read(repoDir string) (string, error)
}

// BookmarkSource reads the active bookmark.
type BookmarkSource struct{}

func (BookmarkSource) Name() string { return "bookmark" }

func (BookmarkSource) Read(repoDir string) (string, error) {
	text, err := readText(filepath.Join(repoDir, BookmarkFile))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// JournalSource reads the last entry of the name journal.
type JournalSource struct{}

func (JournalSource) Name() string { return "journal" }

func (JournalSource) Read(repoDir string) (string, error) {
	text, err := readText(filepath.Join(repoDir, JournalFile))
	if err != nil {
		return "", err
	}
	lines := strings.Split(strings.TrimSpace(text), "\n")
	return strings.TrimSpace(lines[len(lines)-1]), nil
}

// readText reads a whole state file, rejecting anything that is not UTF-8.
func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", filepath.Base(path), ErrInvalidUTF8)
	}
	return string(data), nil
}

// Resolver tries its sources in order and keeps the first that can be read.
type Resolver struct {
	Sources []Source
}

// NewResolver returns a Resolver preferring the bookmark over the journal.
func NewResolver() *Resolver {
	return &Resolver{Sources: []Source{BookmarkSource{}, JournalSource{}}}
}

// Resolve returns the current label, or "" when no source could be read.
func (r *Resolver) Resolve(repoDir string) string {
	label, _, _ := r.Lookup(repoDir)
	return label
}

// Lookup is Resolve that also reports which source produced the label.
func (r *Resolver) Lookup(repoDir string) (label, source string, ok bool) {
	for _, src := range r.Sources {
		value, err := src.Read(repoDir)
		if err != nil {
			continue
		}
		return value, src.Name(), true
	}
	return "", "", false
}

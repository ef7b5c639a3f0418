package hg

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// MarkerDir is the directory name that marks the root of a Mercurial repository.
const MarkerDir = ".hg"

// AscentPolicy decides what happens when a directory on the way up cannot be read.
type AscentPolicy int

const (
	// AbortOnError stops the whole search at the first unreadable directory.
	AbortOnError AscentPolicy = iota
	// SkipUnreadable ignores unreadable directories and keeps climbing.
	SkipUnreadable
)

func (p AscentPolicy) String() string {
	switch p {
	case AbortOnError:
		return "abort"
	case SkipUnreadable:
		return "skip"
	default:
		return "unknown"
	}
}

// ParseAscentPolicy maps a configuration value to a policy. An empty value
// selects AbortOnError.
func ParseAscentPolicy(s string) (AscentPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "abort":
		return AbortOnError, nil
	case "skip":
		return SkipUnreadable, nil
	default:
		return AbortOnError, fmt.Errorf("unknown ascent policy %q (want abort or skip)", s)
	}
}

// Locator walks from a directory towards the filesystem root looking for MarkerDir.
type Locator struct {
	Policy AscentPolicy
	// ReadDir lists a directory. Defaults to os.ReadDir.
	ReadDir func(name string) ([]fs.DirEntry, error)
}

// NewLocator returns a Locator using the given policy and os.ReadDir.
func NewLocator(policy AscentPolicy) *Locator {
	return &Locator{Policy: policy, ReadDir: os.ReadDir}
}

// Locate returns the path of the nearest .hg directory at or above startDir.
// It reports false when no repository is found or, under AbortOnError, when
// any directory along the way cannot be listed.
func (l *Locator) Locate(startDir string) (string, bool) {
	if strings.TrimSpace(startDir) == "" {
		return "", false
	}
	current, err := filepath.Abs(startDir)
	if err != nil {
		return "", false
	}

	readDir := l.ReadDir
	if readDir == nil {
		readDir = os.ReadDir
	}

	for {
		entries, err := readDir(current)
		if err != nil {
			if l.Policy == AbortOnError {
				return "", false
			}
		} else if marker, ok := findMarker(current, entries); ok {
			return marker, true
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}

func findMarker(dir string, entries []fs.DirEntry) (string, bool) {
	for _, entry := range entries {
		if entry.Name() == MarkerDir && entry.IsDir() {
			return filepath.Join(dir, entry.Name()), true
		}
	}
	return "", false
}

// Package label shortens branch labels to a number of user-perceived
// characters (grapheme clusters).
package label

import (
	"log/slog"

	"github.com/rivo/uniseg"
)

// Policy is a normalized truncation setting. A zero MaxLength means unbounded.
// Marker holds at most one grapheme cluster.
type Policy struct {
	MaxLength int
	Marker    string
}

// NewPolicy validates a configured truncation length and symbol. A non-positive
// length is treated as unbounded and reported as a warning on logger.
func NewPolicy(length int, symbol string, logger *slog.Logger) Policy {
	if length <= 0 {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Warn("\"truncation_length\" should be a positive value",
			slog.Int("truncation_length", length))
		length = 0
	}
	return Policy{
		MaxLength: length,
		Marker:    Head(symbol, 1),
	}
}

// Unbounded reports whether the policy never truncates.
func (p Policy) Unbounded() bool {
	return p.MaxLength <= 0
}

// Truncate returns s unchanged when it fits in p.MaxLength graphemes, and
// otherwise its first p.MaxLength graphemes followed by the marker.
func Truncate(s string, p Policy) string {
	if p.Unbounded() {
		return s
	}
	if Count(s) <= p.MaxLength {
		return s
	}
	return Head(s, p.MaxLength) + p.Marker
}

// Count returns the number of grapheme clusters in s.
func Count(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// Head returns the first n grapheme clusters of s.
func Head(s string, n int) string {
	end := 0
	rest := s
	state := -1
	for i := 0; i < n && rest != ""; i++ {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		end += len(cluster)
	}
	return s[:end]
}

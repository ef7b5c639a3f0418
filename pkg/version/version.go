// Package version exposes build metadata injected with -ldflags.
package version

import (
	"fmt"
	"runtime"
	"strings"
)

// These variables are set via ldflags during build.
var (
	Version   = "dev"
	Commit    = "none"
	Date      = "unknown"
	GoVersion = runtime.Version()
)

func Platform() string {
	return runtime.GOOS + "/" + runtime.GOARCH
}

// Summary returns the version with the short commit, e.g. "1.2.0 (abc1234)".
func Summary() string {
	v := Version
	if v == "" {
		v = "dev"
	}
	if Commit != "" && Commit != "none" {
		short := Commit
		if len(short) > 7 {
			short = short[:7]
		}
		return fmt.Sprintf("%s (%s)", v, short)
	}
	return v
}

// Info returns the multi-line report printed by `hgline version`.
func Info() string {
	var b strings.Builder
	fmt.Fprintf(&b, "hgline version %s\n", Summary())
	if Date != "" && Date != "unknown" {
		fmt.Fprintf(&b, "  built: %s\n", Date)
	}
	fmt.Fprintf(&b, "  go: %s\n", GoVersion)
	fmt.Fprintf(&b, "  platform: %s\n", Platform())
	return b.String()
}

// Package logging sets up slog for hgline. Records go to a rotating file so
// that nothing ever lands on the prompt's stdout.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"hgline/pkg/config"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogFileOff as log_file turns logging off entirely.
const LogFileOff = "off"

// Many shells render the prompt concurrently, so the rotation window is kept
// small and every record carries the pid of the process that wrote it.
const (
	rotateSizeMB  = 5
	rotateBackups = 5
	rotateAgeDays = 14
)

// Init installs and returns the logger described by cfg. If the log file
// cannot be prepared the returned logger discards records and the error is
// reported alongside it, so callers can keep going.
func Init(cfg config.Config) (*slog.Logger, error) {
	out, err := openLog(cfg.LogFile)
	if err != nil {
		out = io.Discard
	}

	opts := &slog.HandlerOptions{Level: levelOf(cfg.LogLevel)}
	var handler slog.Handler
	if strings.EqualFold(strings.TrimSpace(cfg.LogFormat), "text") {
		handler = slog.NewTextHandler(out, opts)
	} else {
		handler = slog.NewJSONHandler(out, opts)
	}

	logger := slog.New(handler).With(slog.Int("pid", os.Getpid()))
	slog.SetDefault(logger)
	return logger, err
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// openLog returns the rotating writer for path, or io.Discard when logging is
// off. An empty path selects LogPath("").
func openLog(path string) (io.Writer, error) {
	path = strings.TrimSpace(path)
	if strings.EqualFold(path, LogFileOff) {
		return io.Discard, nil
	}
	path = LogPath(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    rotateSizeMB,
		MaxBackups: rotateBackups,
		MaxAge:     rotateAgeDays,
		Compress:   true,
	}, nil
}

// LogPath returns configured unless it is blank, in which case it is
// ~/.hgline/logs/hgline.log (relative to the working directory when there is
// no home).
func LogPath(configured string) string {
	if configured = strings.TrimSpace(configured); configured != "" {
		return configured
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return filepath.Join(strings.TrimSpace(home), ".hgline", "logs", "hgline.log")
}

// levelOf accepts anything slog.Level understands ("debug", "WARN", "info+2")
// plus "warning". Anything else logs at info.
func levelOf(name string) slog.Level {
	name = strings.TrimSpace(name)
	if strings.EqualFold(name, "warning") {
		return slog.LevelWarn
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return level
}

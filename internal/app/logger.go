package app

import (
	"io"
	"log/slog"
)

// newLogger builds the logger the App hands to its context. levelStr is one
// of slog's level names; anything unrecognised falls back to warn so the
// result line is not drowned out. The process-wide default is left alone.
func newLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if err := level.UnmarshalText([]byte(levelStr)); err != nil {
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

package main

import (
	"io"
	"log/slog"
)

// newLogger builds the demo's logger. level accepts anything
// slog.Level.UnmarshalText does ("debug", "WARN", "info+2"); an empty or
// unparsable level means info. format "json" selects the JSON handler,
// anything else the text handler.
func newLogger(level, format string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

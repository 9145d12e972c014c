package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
)

// newLogger returns a slog logger backed by a charmbracelet/log handler.
// The level comes from levelEnv ("debug", "info", ...), and verbose forces debug.
func newLogger(w io.Writer, levelEnv string, verbose bool) (*slog.Logger, error) {
	level := log.InfoLevel
	if levelEnv != "" {
		lvl, err := log.ParseLevel(levelEnv)
		if err != nil {
			return nil, fmt.Errorf("DIFFSTYLE_LOG_LEVEL: %w", err)
		}
		level = lvl
	}
	if verbose {
		level = log.DebugLevel
	}

	handler := log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: "diffstyle",
	})
	return slog.New(handler), nil
}

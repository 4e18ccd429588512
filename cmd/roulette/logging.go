package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/san-kum/roulette/internal/config"
)

// newLogger builds the process logger. Logs go to file when set, otherwise
// to fallback. The returned func closes the file.
func newLogger(level, file string, fallback io.Writer) (*slog.Logger, func() error, error) {
	lvl, err := config.ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}

	w := fallback
	closeFn := func() error { return nil }
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, err
		}
		w, closeFn = f, f.Close
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
	return logger, closeFn, nil
}

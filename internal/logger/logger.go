// Package logger holds the library-wide structured logger.
package logger

import (
	"io"
	"log/slog"
)

// L is the global logger instance. It discards all output until Set is called.
var L = discard()

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Set installs l as the library logger. A nil l restores the discarding logger.
func Set(l *slog.Logger) {
	if l == nil {
		L = discard()
		return
	}
	L = l
}

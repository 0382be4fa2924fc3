package logger

import (
	"log/slog"
	"os"
)

// Log is usable before Init so packages can log during tests; Init swaps in
// the production JSON handler.
var Log = slog.New(slog.NewTextHandler(os.Stderr, nil))

func Init() {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	Log = slog.New(handler)
}

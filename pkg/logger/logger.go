package logger

import (
	"log/slog"
	"os"
)

var Log = slog.Default()

func Init() {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	Log = slog.New(handler)
}

// With returns a child logger scoped to a component name.
func With(component string) *slog.Logger {
	return Log.With("component", component)
}

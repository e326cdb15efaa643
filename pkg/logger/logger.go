package logger

import (
	"log/slog"
	"os"
)

var Log *slog.Logger

func Init() {
	// JSON handler so log aggregation can parse fields
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	Log = slog.New(handler)
}

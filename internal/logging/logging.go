// Package logging configures the process-wide slog default. Dependency
// failures are logged at ERROR with a stack trace attached; error detail
// never reaches the HTTP response.
package logging

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"strings"
)

// Setup installs a JSON slog handler as the default logger. The level comes
// from the LOG_LEVEL environment variable (DEBUG, INFO, WARN, ERROR) and
// defaults to INFO. ERROR-level records automatically include a stack trace.
func Setup() {
	level := parseLevel(os.Getenv("LOG_LEVEL"))
	json := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
	})
	slog.SetDefault(slog.New(&stackHandler{Handler: json}))
}

func parseLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Fatal logs at Error level and exits with code 1.
func Fatal(msg string, args ...any) {
	slog.Error(msg, args...)
	os.Exit(1)
}

// stackHandler appends a stack trace to ERROR and above.
type stackHandler struct {
	slog.Handler
}

func (h *stackHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelError {
		buf := make([]byte, 4096)
		n := runtime.Stack(buf, false)
		r.AddAttrs(slog.String("stacktrace", string(buf[:n])))
	}
	return h.Handler.Handle(ctx, r)
}

func (h *stackHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &stackHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *stackHandler) WithGroup(name string) slog.Handler {
	return &stackHandler{Handler: h.Handler.WithGroup(name)}
}

package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"

	logFileName = "agendor-bridge.log"
)

// SetupLogger builds the root logger. Local runs log text to stdout, other
// environments log JSON to stdout and, when logPath is writable, to a file.
func SetupLogger(env, logPath string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		log = slog.New(slog.NewJSONHandler(logWriter(logPath), &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(logWriter(logPath), &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func logWriter(logPath string) io.Writer {
	if logPath == "" {
		return os.Stdout
	}
	f, err := os.OpenFile(filepath.Join(logPath, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return os.Stdout
	}
	return io.MultiWriter(os.Stdout, f)
}

// SetupTelegramHandler returns a logger that also forwards records at or above
// level to the given sender.
func SetupTelegramHandler(log *slog.Logger, sender Sender, level slog.Level) *slog.Logger {
	if sender == nil {
		return log
	}
	return slog.New(&fanout{
		primary: log.Handler(),
		alert:   NewTelegramHandler(sender, level),
	})
}

type fanout struct {
	primary slog.Handler
	alert   slog.Handler
}

func (f *fanout) Enabled(ctx context.Context, level slog.Level) bool {
	return f.primary.Enabled(ctx, level) || f.alert.Enabled(ctx, level)
}

func (f *fanout) Handle(ctx context.Context, r slog.Record) error {
	if f.alert.Enabled(ctx, r.Level) {
		_ = f.alert.Handle(ctx, r.Clone())
	}
	if f.primary.Enabled(ctx, r.Level) {
		return f.primary.Handle(ctx, r)
	}
	return nil
}

func (f *fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &fanout{primary: f.primary.WithAttrs(attrs), alert: f.alert.WithAttrs(attrs)}
}

func (f *fanout) WithGroup(name string) slog.Handler {
	return &fanout{primary: f.primary.WithGroup(name), alert: f.alert.WithGroup(name)}
}

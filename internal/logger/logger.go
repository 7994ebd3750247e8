// Package logger is the process-wide slog facade. Until Initialize or Use
// is called every helper is a no-op, so library code can log freely
// without making output part of its contract.
package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LevelAlways is above Error so it passes every level filter. It is used
// for run summaries that must reach the log.
const LevelAlways = slog.Level(12)

// ErrBadConfig is wrapped by configuration errors.
var ErrBadConfig = errors.New("logger: bad config")

var logger *slog.Logger

// Initialize installs a logger built from cfg that writes to stdout and,
// when enabled, to a rotating file.
func Initialize(cfg Config) error {
	l, err := Build(cfg, os.Stdout)
	if err != nil {
		return err
	}
	logger = l
	return nil
}

// Use installs l. A nil l silences the facade.
func Use(l *slog.Logger) {
	logger = l
}

// Build returns a logger for cfg with console output going to console.
func Build(cfg Config, console io.Writer) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var handlers []slog.Handler
	if cfg.ConsoleEnabled {
		h, err := newHandler(console, cfg.ConsoleFormat, level)
		if err != nil {
			return nil, err
		}
		handlers = append(handlers, h)
	}
	if cfg.FileEnabled {
		file := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.FileMaxSizeMB,
			MaxBackups: cfg.FileMaxBackups,
			MaxAge:     cfg.FileMaxAgeDays,
		}
		h, err := newHandler(file, cfg.FileFormat, level)
		if err != nil {
			return nil, err
		}
		handlers = append(handlers, h)
	}

	switch len(handlers) {
	case 0:
		return slog.New(slog.DiscardHandler), nil
	case 1:
		return slog.New(handlers[0]), nil
	}
	return slog.New(newMultiHandler(handlers...)), nil
}

func newHandler(w io.Writer, format string, level slog.Level) (slog.Handler, error) {
	opts := &slog.HandlerOptions{Level: level, ReplaceAttr: renameAlways}
	switch strings.ToLower(format) {
	case "", "text":
		return slog.NewTextHandler(w, opts), nil
	case "json":
		return slog.NewJSONHandler(w, opts), nil
	}
	return nil, fmt.Errorf("%w: unknown format %q", ErrBadConfig, format)
}

// renameAlways prints LevelAlways as ALWAYS instead of ERROR+4.
func renameAlways(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey {
		if l, ok := a.Value.Any().(slog.Level); ok && l == LevelAlways {
			a.Value = slog.StringValue("ALWAYS")
		}
	}
	return a
}

// ParseLevel reads a level name, case-insensitively. An empty name is INFO.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "", "INFO":
		return slog.LevelInfo, nil
	case "WARNING", "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	case "ALWAYS":
		return LevelAlways, nil
	}
	return slog.LevelInfo, fmt.Errorf("%w: unknown level %q", ErrBadConfig, s)
}

func Debug(msg string, args ...any) { log(slog.LevelDebug, msg, args) }
func Info(msg string, args ...any)  { log(slog.LevelInfo, msg, args) }
func Warn(msg string, args ...any)  { log(slog.LevelWarn, msg, args) }
func Error(msg string, args ...any) { log(slog.LevelError, msg, args) }

// Always logs msg regardless of the configured level.
func Always(msg string, args ...any) { log(LevelAlways, msg, args) }

func log(level slog.Level, msg string, args []any) {
	if logger != nil {
		logger.Log(context.Background(), level, msg, args...)
	}
}

// multiHandler fans records out to several handlers.
type multiHandler struct {
	handlers []slog.Handler
}

func newMultiHandler(handlers ...slog.Handler) *multiHandler {
	return &multiHandler{handlers: handlers}
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, r.Level) {
			errs = append(errs, handler.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithAttrs(attrs)
	}
	return newMultiHandler(handlers...)
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithGroup(name)
	}
	return newMultiHandler(handlers...)
}

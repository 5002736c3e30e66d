// Package logging adapts log/slog handlers to the Nakama runtime.Logger interface
// so the coordinator, the RPC module and the simulator share one logging surface.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/heroiclabs/nakama-common/runtime"
	"github.com/pterm/pterm"
)

// ParseLevel maps "debug", "info", "warn" or "error" to a slog level.
func ParseLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", level, err)
	}
	return l, nil
}

// New wraps a slog handler.
func New(h slog.Handler) runtime.Logger {
	return &slogLogger{l: slog.New(h), fields: map[string]interface{}{}}
}

// NewJSON writes JSON lines at or above level to w.
func NewJSON(w io.Writer, level string) (runtime.Logger, error) {
	l, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: l})), nil
}

// NewTerminal renders through pterm's logger for interactive use.
func NewTerminal(level string) (runtime.Logger, error) {
	l, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	pl := pterm.DefaultLogger.WithLevel(ptermLevel(l))
	return New(pterm.NewSlogHandler(pl)), nil
}

// Nop discards everything.
func Nop() runtime.Logger {
	return New(discardHandler{})
}

// discardHandler mirrors slog.DiscardHandler (Go 1.24+) for older toolchains.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }

func ptermLevel(l slog.Level) pterm.LogLevel {
	switch {
	case l <= slog.LevelDebug:
		return pterm.LogLevelDebug
	case l <= slog.LevelInfo:
		return pterm.LogLevelInfo
	case l <= slog.LevelWarn:
		return pterm.LogLevelWarn
	default:
		return pterm.LogLevelError
	}
}

type slogLogger struct {
	l      *slog.Logger
	fields map[string]interface{}
}

func (s *slogLogger) Debug(format string, v ...interface{}) { s.log(slog.LevelDebug, format, v...) }
func (s *slogLogger) Info(format string, v ...interface{})  { s.log(slog.LevelInfo, format, v...) }
func (s *slogLogger) Warn(format string, v ...interface{})  { s.log(slog.LevelWarn, format, v...) }
func (s *slogLogger) Error(format string, v ...interface{}) { s.log(slog.LevelError, format, v...) }

func (s *slogLogger) WithField(key string, v interface{}) runtime.Logger {
	return s.WithFields(map[string]interface{}{key: v})
}

func (s *slogLogger) WithFields(fields map[string]interface{}) runtime.Logger {
	merged := maps.Clone(s.fields)
	args := make([]any, 0, len(fields)*2)
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		merged[k] = fields[k]
		args = append(args, k, fields[k])
	}
	return &slogLogger{l: s.l.With(args...), fields: merged}
}

func (s *slogLogger) Fields() map[string]interface{} {
	return maps.Clone(s.fields)
}

func (s *slogLogger) log(level slog.Level, format string, v ...interface{}) {
	ctx := context.Background()
	if !s.l.Enabled(ctx, level) {
		return
	}
	s.l.Log(ctx, level, fmt.Sprintf(format, v...))
}

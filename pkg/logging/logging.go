package logging

import (
	"context"
	"log/slog"
	"math/big"
)

const redactedPlaceholder = "[redacted]"

// Logger is the logging surface used by the paillier packages. Every call takes
// the caller's context so handlers can pick up request-scoped values.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}

// New adapts logger. Nil binds to slog.Default().
func New(logger *slog.Logger) Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return slogLogger{l: logger}
}

// Discard returns a Logger that drops every record.
func Discard() Logger {
	return slogLogger{l: slog.New(slog.DiscardHandler)}
}

type slogLogger struct {
	l *slog.Logger
}

func (s slogLogger) Debug(ctx context.Context, msg string, args ...any) {
	s.l.DebugContext(ctx, msg, args...)
}

func (s slogLogger) Info(ctx context.Context, msg string, args ...any) {
	s.l.InfoContext(ctx, msg, args...)
}

func (s slogLogger) Warn(ctx context.Context, msg string, args ...any) {
	s.l.WarnContext(ctx, msg, args...)
}

func (s slogLogger) Error(ctx context.Context, msg string, args ...any) {
	s.l.ErrorContext(ctx, msg, args...)
}

func (s slogLogger) With(args ...any) Logger {
	return slogLogger{l: s.l.With(args...)}
}

// Redacted stands in for an attribute whose value must not be logged.
func Redacted(key string) slog.Attr {
	return slog.String(key, redactedPlaceholder)
}

// Secret logs a secret integer as a group carrying only its bit length:
//
//	p.value="[redacted]" p.bits=1024
func Secret(key string, x *big.Int) slog.Attr {
	bits := 0
	if x != nil {
		bits = x.BitLen()
	}
	return slog.Group(key,
		slog.String("value", redactedPlaceholder),
		slog.Int("bits", bits),
	)
}

// Placeholder returns the string written in place of redacted values.
func Placeholder() string {
	return redactedPlaceholder
}

// ParseLevel maps "debug", "info", "warn" or "error" (any case, with an
// optional +N/-N offset) to a slog.Level. Anything else yields slog.LevelInfo.
func ParseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

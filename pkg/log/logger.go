package log

import (
	"context"
	"log/slog"
	"os"
)

const (
	LevelDisabled Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

type (
	Logger interface {
		With(fields Fields) Logger
		WithField(name string, value any) Logger
		WithError(err error) Logger
		WithContext(ctx context.Context, fields Fields) context.Context
		Debug(ctx context.Context, msg string)
		Info(ctx context.Context, msg string)
		Warn(ctx context.Context, msg string)
		Error(ctx context.Context, msg string)
	}

	Fields map[string]any
	Level  int

	contextKey int
)

const fieldsContextKey contextKey = iota

var slogLevels = map[Level]slog.Level{
	LevelDebug: slog.LevelDebug,
	LevelInfo:  slog.LevelInfo,
	LevelWarn:  slog.LevelWarn,
	LevelError: slog.LevelError,
}

type logger struct {
	impl *slog.Logger
}

func New(level Level) Logger {
	if level == LevelDisabled {
		return stub{}
	}

	return logger{slog.New(slog.NewJSONHandler(
		os.Stdout,
		&slog.HandlerOptions{Level: slogLevels[level]},
	))}
}

func (l logger) With(fields Fields) Logger {
	if len(fields) == 0 {
		return l
	}

	l.impl = l.impl.With(flattenFields(fields)...)
	return l
}

func (l logger) WithField(name string, value any) Logger {
	l.impl = l.impl.With(name, value)
	return l
}

func (l logger) WithError(err error) Logger {
	if err == nil {
		return l
	}

	l.impl = l.impl.With("error", err.Error())
	return l
}

func (l logger) WithContext(ctx context.Context, fields Fields) context.Context {
	if len(fields) == 0 {
		return ctx
	}

	merged := append(contextFields(ctx), flattenFields(fields)...)
	return context.WithValue(ctx, fieldsContextKey, merged)
}

func (l logger) Debug(ctx context.Context, msg string) {
	l.withContextFields(ctx).Debug(msg)
}

func (l logger) Info(ctx context.Context, msg string) {
	l.withContextFields(ctx).Info(msg)
}

func (l logger) Warn(ctx context.Context, msg string) {
	l.withContextFields(ctx).Warn(msg)
}

func (l logger) Error(ctx context.Context, msg string) {
	l.withContextFields(ctx).Error(msg)
}

func (l logger) withContextFields(ctx context.Context) *slog.Logger {
	fields := contextFields(ctx)
	if len(fields) == 0 {
		return l.impl
	}
	return l.impl.With(fields...)
}

func contextFields(ctx context.Context) []any {
	fields, _ := ctx.Value(fieldsContextKey).([]any)
	return fields
}

func flattenFields(fields Fields) []any {
	result := make([]any, 0, len(fields)*2)
	for key, value := range fields {
		result = append(result, key, value)
	}
	return result
}

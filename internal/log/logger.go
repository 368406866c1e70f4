package log

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

type contextKey string

// CorrelationIDKey carries the per-request correlation identifier through
// request contexts and log attributes.
var CorrelationIDKey contextKey = "correlation_id"

// LoggerContextKey carries a correlated *Logger through request contexts.
const LoggerContextKey contextKey = "logger"

type Logger struct {
	*slog.Logger
}

func NewJSONLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

func (l *Logger) WithCorrelationID(ctx context.Context) *Logger {
	return &Logger{
		Logger: l.Logger.With(string(CorrelationIDKey), CorrelationIDFromContext(ctx)),
	}
}

func CorrelationIDFromContext(ctx context.Context) string {
	if id := ctx.Value(CorrelationIDKey); id != nil {
		if s, ok := id.(string); ok {
			return s
		}
	}

	return NewCorrelationID()
}

func NewCorrelationID() string {
	return uuid.New().String()
}

// FromContext returns the request-scoped logger when one was injected by the
// router middleware, otherwise a correlated view of the fallback logger.
func FromContext(ctx context.Context, fallback *Logger) *Logger {
	if ctx != nil {
		if logger := ctx.Value(LoggerContextKey); logger != nil {
			if l, ok := logger.(*Logger); ok {
				return l
			}
		}

		if fallback != nil {
			return fallback.WithCorrelationID(ctx)
		}

		return NewJSONLogger().WithCorrelationID(ctx)
	}

	if fallback != nil {
		return fallback
	}

	return NewJSONLogger()
}

// Package logging defines the structured-logging interface used across the
// assistant, with adapters over go.uber.org/zap and log/slog.
//
// The terminal belongs to the interactive session, so loggers built by New
// write to a file in the data directory.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "contacts loaded", "count", n, "storage", kind)
type Logger interface {
	// Debug logs detail useful while investigating a problem.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning message for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs an error message for failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

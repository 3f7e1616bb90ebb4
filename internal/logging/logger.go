// Package logging defines the structured-logging interface injected across
// the server. The production implementation wraps slog with a JSON handler;
// tests swap in a discarding one.
package logging

import "context"

// Logger is a context-aware, leveled, structured logger. The variadic args
// are key-value pairs:
//
//	log.Info(ctx, "http server listening", "addr", addr)
type Logger interface {
	// Debug logs diagnostic detail that is normally filtered out.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs normal operational events.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always carries the given key-value pairs.
	With(args ...any) Logger
}

// Package cli implements the layoutlens command-line interface.
//
// The CLI validates envelope and plan JSON files, serves the same checks
// over HTTP and manages the local report cache. It is built on cobra and
// logs through charmbracelet/log.
//
// # Commands
//
//   - envelope: Validate a room envelope file
//   - plan: Validate a room plan file (its envelope first)
//   - serve: Start the HTTP API
//   - cache: Clear or locate the report cache
//
// A rejected input exits with status 2 after printing the numbered report;
// malformed input exits with status 1.
//
// # Configuration
//
// Tolerances and backends come from layoutlens.toml (or --config). The
// environment variables LAYOUTLENS_REDIS_URL, LAYOUTLENS_MONGO_URI,
// LAYOUTLENS_RUNS_DIR and LAYOUTLENS_ADDR override the file.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// Package tracing provides lightweight spans that report their duration
// through log/slog.
package tracing

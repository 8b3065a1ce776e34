// Package log creates [log/slog] handlers backed by
// [github.com/charmbracelet/log].
package log

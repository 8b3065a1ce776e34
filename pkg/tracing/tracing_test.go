package tracing_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/pathkit/pkg/tracing"
)

func TestLoggingTracer(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tr := tracing.NewLoggingTracer(logger)

	span := tr.StartSpan(t.Context(), "batch.normalize")
	span.SetAttr("id", "a")
	span.Finish()
	span.Finish()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"msg":"trace"`)
	assert.Contains(t, lines[0], `"operation_name":"batch.normalize"`)
	assert.Contains(t, lines[0], `"id":"a"`)
	assert.Contains(t, lines[0], `"time_ms":`)
}

func TestLoggingTracerLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	tracing.NewLoggingTracer(logger).StartSpan(t.Context(), "quiet").Finish()

	assert.Empty(t, buf.String())
}

package tracing

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

var (
	_ Tracer = (*LoggingTracer)(nil)
	_ Span   = (*loggingSpan)(nil)
)

// Tracer starts spans that measure a single unit of work.
type Tracer interface {
	StartSpan(ctx context.Context, operationName string) Span
}

// Span is a unit of work started by a [Tracer].
type Span interface {
	// SetAttr attaches a key/value pair that is reported when the span ends.
	SetAttr(key string, value any)
	// Finish ends the span. Calling Finish more than once has no effect.
	Finish()
}

// LoggingTracer reports finished spans as debug log records.
type LoggingTracer struct {
	logger *slog.Logger
}

// NewLoggingTracer creates a new [LoggingTracer]. A nil logger uses
// [slog.Default] at the time each span finishes.
func NewLoggingTracer(logger *slog.Logger) *LoggingTracer {
	return &LoggingTracer{
		logger: logger,
	}
}

//nolint:ireturn
func (l *LoggingTracer) StartSpan(ctx context.Context, operationName string) Span {
	return &loggingSpan{
		ctx:           ctx,
		logger:        l.logger,
		operationName: operationName,
		start:         time.Now(),
	}
}

type loggingSpan struct {
	start         time.Time
	ctx           context.Context //nolint:containedctx // Used for the final log record.
	logger        *slog.Logger
	operationName string
	attrs         []slog.Attr
	once          sync.Once
}

func (s *loggingSpan) SetAttr(key string, value any) {
	s.attrs = append(s.attrs, slog.Any(key, value))
}

func (s *loggingSpan) Finish() {
	s.once.Do(func() {
		logger := s.logger
		if logger == nil {
			logger = slog.Default()
		}

		attrs := make([]slog.Attr, 0, len(s.attrs)+2)
		attrs = append(attrs, s.attrs...)
		attrs = append(attrs,
			slog.String("operation_name", s.operationName),
			slog.Float64("time_ms", time.Since(s.start).Seconds()*1e3),
		)

		logger.LogAttrs(s.ctx, slog.LevelDebug, "trace", attrs...)
	})
}

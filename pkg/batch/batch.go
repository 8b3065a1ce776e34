package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/MacroPower/pathkit/pkg/paths"
	"github.com/MacroPower/pathkit/pkg/tracing"
)

var (
	// ErrDecode indicates the request document could not be decoded.
	ErrDecode = errors.New("decode request")

	// ErrInvalidRequest indicates the request is structurally invalid.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrOperationFailed indicates at least one operation returned an error.
	ErrOperationFailed = errors.New("operation failed")
)

// Request is a set of path operations evaluated against one platform.
type Request struct {
	// Platform the operations are evaluated for. Defaults to "linux".
	Platform string `json:"platform,omitempty" yaml:"platform,omitempty" jsonschema:"enum=linux,enum=posix,enum=unix,enum=darwin,enum=macos,enum=osx,enum=windows,enum=win32,enum=win,description=The platform the operations are evaluated for."`
	// Operations to evaluate. Results are returned in the same order.
	Operations []Operation `json:"operations" yaml:"operations" jsonschema:"description=The operations to evaluate."`
	// Concurrency limits the number of operations evaluated at once. Zero
	// means GOMAXPROCS.
	Concurrency int `json:"concurrency,omitempty" yaml:"concurrency,omitempty" jsonschema:"minimum=0,description=Maximum number of operations evaluated at once."`
	// Native selects the native separator for normalize on Windows.
	Native bool `json:"native,omitempty" yaml:"native,omitempty" jsonschema:"description=Use the native separator when normalizing Windows paths."`
}

// Operation is a single path function call.
type Operation struct {
	// ID is copied to the result to help correlate them.
	ID string `json:"id,omitempty" yaml:"id,omitempty" jsonschema:"description=Identifier copied to the result."`
	// Op is the name of the function in any case style, e.g.
	// "isEqualOrParent" or "is_equal_or_parent".
	Op string `json:"op" yaml:"op" jsonschema:"description=The operation name."`
	// Args are the function's string arguments.
	Args []string `json:"args,omitempty" yaml:"args,omitempty" jsonschema:"description=The operation arguments."`
}

// Result is the outcome of an [Operation].
type Result struct {
	Value any    `json:"value,omitempty" yaml:"value,omitempty"`
	ID    string `json:"id,omitempty"    yaml:"id,omitempty"`
	Op    string `json:"op"              yaml:"op"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Decode reads a YAML or JSON [Request] from r. Unknown fields are rejected.
func Decode(r io.Reader) (*Request, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	req := &Request{}
	if err := dec.Decode(req); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrDecode)
		}

		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return req, nil
}

// Evaluator runs batch requests.
type Evaluator struct {
	logger *slog.Logger
	tracer tracing.Tracer
}

// NewEvaluator creates a new [Evaluator]. A nil logger uses [slog.Default].
// Each operation is traced at debug level.
func NewEvaluator(logger *slog.Logger) *Evaluator {
	if logger == nil {
		logger = slog.Default()
	}

	return &Evaluator{
		logger: logger,
		tracer: tracing.NewLoggingTracer(logger),
	}
}

// Run evaluates all operations of req and returns one [Result] per operation,
// in order. Operations that fail still produce a result with Error set, and
// all failures are returned together, wrapped in [ErrOperationFailed].
//
// Operations are independent, so they are evaluated concurrently. If ctx is
// canceled, operations that have not started are skipped and ctx.Err() is
// returned.
func (e *Evaluator) Run(ctx context.Context, req *Request) ([]Result, error) {
	platformName := req.Platform
	if platformName == "" {
		platformName = "linux"
	}

	p, err := paths.ParsePlatform(platformName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	if req.Concurrency < 0 {
		return nil, fmt.Errorf("%w: concurrency must not be negative", ErrInvalidRequest)
	}

	limit := req.Concurrency
	if limit == 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	logger := e.logger.With(
		slog.String("platform", p.String()),
		slog.Int("operations", len(req.Operations)),
	)
	logger.Debug("running batch")

	results := make([]Result, len(req.Operations))
	errs := make([]error, len(req.Operations))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, op := range req.Operations {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			span := e.tracer.StartSpan(gctx, "batch."+CanonicalOp(op.Op))
			span.SetAttr("index", i)

			if op.ID != "" {
				span.SetAttr("id", op.ID)
			}

			results[i], errs[i] = evaluate(p, req.Native, op)
			span.Finish()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch canceled: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch canceled: %w", err)
	}

	var merr *multierror.Error
	for i, err := range errs {
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("operation %d (%s): %w", i, req.Operations[i].Op, err))
		}
	}

	if merr != nil {
		logger.Debug("batch finished with errors", slog.Int("errors", merr.Len()))

		return results, fmt.Errorf("%w: %w", ErrOperationFailed, merr)
	}

	logger.Debug("batch finished")

	return results, nil
}

func evaluate(p paths.Platform, native bool, op Operation) (Result, error) {
	res := Result{ID: op.ID, Op: op.Op}

	value, err := Call(p, native, op.Op, op.Args...)
	if err != nil {
		res.Error = err.Error()

		return res, err
	}

	res.Value = value

	return res, nil
}

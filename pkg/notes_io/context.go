// pkg/notes_io/context.go

package notes_io

import (
	"context"
	"time"

	cerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/sweetrb/mcp-apple-notes/pkg/telemetry"
)

// RuntimeContext carries everything one command invocation needs: the
// cancellation context, a named logger, the telemetry span, and the start
// time for duration reporting.
type RuntimeContext struct {
	Ctx       context.Context
	Log       *zap.Logger
	Span      trace.Span
	Timestamp time.Time
	Command   string
}

// NewContext opens a span and a named logger for one command.
func NewContext(ctx context.Context, cmdName string) *RuntimeContext {
	if ctx == nil {
		ctx = context.Background()
	}
	sctx, span := telemetry.Start(ctx, cmdName)
	traceID := span.SpanContext().TraceID().String()

	log := zap.L().Named(cmdName).With(zap.String("trace_id", traceID))

	return &RuntimeContext{
		Ctx:       sctx,
		Log:       log,
		Span:      span,
		Timestamp: time.Now(),
		Command:   cmdName,
	}
}

// HandlePanic recovers a panic, logs it, and converts it to an error.
func (rc *RuntimeContext) HandlePanic(errPtr *error) {
	if r := recover(); r != nil {
		*errPtr = cerr.AssertionFailedf("panic: %v", r)
		rc.Log.Error("panic recovered", zap.Any("panic", r))
	}
}

// End logs the command outcome with its duration and closes the span.
func (rc *RuntimeContext) End(errPtr *error) {
	defer rc.Span.End()

	duration := time.Since(rc.Timestamp)
	if *errPtr == nil {
		rc.Log.Info("Command completed", zap.Duration("duration", duration))
	} else {
		rc.Span.RecordError(*errPtr)
		rc.Log.Error("Command failed", zap.Duration("duration", duration), zap.Error(*errPtr))
	}
}

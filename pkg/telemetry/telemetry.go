// pkg/telemetry/telemetry.go

package telemetry

import (
	"context"
	"os"
	"path/filepath"

	cerr "github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

var tracer trace.Tracer

// runID correlates every span emitted by one process invocation.
var runID = uuid.New().String()

// Init configures OpenTelemetry; call early in main. Spans go to a local
// JSONL file when NOTES_BRIDGE_TELEMETRY=1, and to a noop provider
// otherwise so instrumentation costs nothing in the common case.
func Init(service string) error {
	if os.Getenv("NOTES_BRIDGE_TELEMETRY") != "1" {
		tp := noop.NewTracerProvider()
		otel.SetTracerProvider(tp)
		tracer = tp.Tracer(service)
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return cerr.Wrap(err, "resolve home for telemetry directory")
	}
	dir := filepath.Join(home, ".mcp-apple-notes", "telemetry")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return cerr.Wrap(err, "create telemetry directory")
	}
	file, err := os.OpenFile(filepath.Join(dir, "traces.jsonl"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return cerr.Wrap(err, "open telemetry file")
	}

	exp, err := stdouttrace.New(stdouttrace.WithWriter(file))
	if err != nil {
		_ = file.Close()
		return cerr.Wrap(err, "create trace exporter")
	}

	res, err := sdkresource.New(context.Background(),
		sdkresource.WithAttributes(
			semconv.ServiceName(service),
			attribute.String("run_id", runID),
		))
	if err != nil {
		return cerr.Wrap(err, "build telemetry resource")
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	tracer = tp.Tracer(service)
	return nil
}

// Start opens a span, falling back to the global tracer when Init was
// never called.
func Start(ctx context.Context, name string) (context.Context, trace.Span) {
	if tracer == nil {
		tracer = otel.Tracer("mcp-apple-notes")
	}
	return tracer.Start(ctx, name)
}

// RunID returns the per-process correlation identifier.
func RunID() string { return runID }

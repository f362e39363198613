package telemetry

import (
	"context"
	"runtime"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/AtharPnh/e-commerce-application"

// StartSpan begins an internal span named after the calling function.
func StartSpan(ctx context.Context, initialAttrs ...attribute.KeyValue) (context.Context, trace.Span) {
	operation := callerFunctionName(3)

	opts := []trace.SpanStartOption{
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(semconv.CodeFunctionKey.String(operation)),
	}
	if len(initialAttrs) > 0 {
		opts = append(opts, trace.WithAttributes(initialAttrs...))
	}

	return otel.Tracer(tracerName).Start(ctx, operation, opts...)
}

// EndSpan concludes the span, recording the error pointed at by errPtr if
// one occurred. Callers defer it with a pointer to their named error return.
func EndSpan(span trace.Span, errPtr *error) {
	defer span.End()

	if errPtr == nil || *errPtr == nil {
		span.SetStatus(codes.Ok, "")
		return
	}

	err := *errPtr
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// callerFunctionName ascends skip stack frames and returns the bare function
// name of that frame.
func callerFunctionName(skip int) string {
	pc := make([]uintptr, 1)
	if runtime.Callers(skip, pc) == 0 {
		return "<unknown>"
	}
	fn := runtime.FuncForPC(pc[0])
	if fn == nil {
		return "<unknown>"
	}
	name := fn.Name()
	if i := strings.LastIndexByte(name, '.'); i != -1 {
		name = name[i+1:]
	}
	return name
}

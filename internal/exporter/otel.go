package exporter

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"fintrack/pkg/contracts/domain"
)

const tracerName = "fintrack.exporter"

// exportTracer carries the OpenTelemetry instruments for export runs.
// It uses the global API, so instrumentation stays a no-op unless the
// embedding application installs trace/metric providers.
type exportTracer struct {
	tracer         trace.Tracer
	exportsTotal   metric.Int64Counter
	exportFailures metric.Int64Counter
	exportDuration metric.Float64Histogram
	documentBytes  metric.Int64Counter
}

func newExportTracer() *exportTracer {
	meter := otel.Meter(tracerName)
	exportsTotal, _ := meter.Int64Counter("export.completed.total",
		metric.WithDescription("Completed exports by format"))
	exportFailures, _ := meter.Int64Counter("export.failures.total",
		metric.WithDescription("Failed exports by format and error code"))
	exportDuration, _ := meter.Float64Histogram("export.duration.seconds",
		metric.WithDescription("Export pipeline duration in seconds"),
		metric.WithUnit("s"))
	documentBytes, _ := meter.Int64Counter("export.document.bytes",
		metric.WithDescription("Size of rendered export documents"),
		metric.WithUnit("By"))

	return &exportTracer{
		tracer:         otel.Tracer(tracerName),
		exportsTotal:   exportsTotal,
		exportFailures: exportFailures,
		exportDuration: exportDuration,
		documentBytes:  documentBytes,
	}
}

// start opens the span covering one export invocation. Attributes
// carry the format and range only, never amounts or identifiers.
func (t *exportTracer) start(ctx context.Context, req domain.ExportRequest) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "export.execute",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("export.format", string(req.Format)),
			attribute.String("export.range.from", formatDate(req.Range.From)),
			attribute.String("export.range.to", formatDate(req.Range.To)),
		),
	)
}

// recordFailure marks the span failed and counts the failure by code.
func (t *exportTracer) recordFailure(ctx context.Context, span trace.Span, req domain.ExportRequest, expErr *ExportError) {
	span.RecordError(expErr)
	span.SetStatus(codes.Error, expErr.Code)
	t.exportFailures.Add(ctx, 1, metric.WithAttributes(
		attribute.String("format", string(req.Format)),
		attribute.String("code", expErr.Code),
	))
}

// recordSuccess closes out the span attributes and completion metrics.
func (t *exportTracer) recordSuccess(ctx context.Context, span trace.Span, req domain.ExportRequest, records, size int, duration time.Duration) {
	span.SetAttributes(
		attribute.Int("export.records", records),
		attribute.Int("export.document_bytes", size),
	)
	span.SetStatus(codes.Ok, "")

	attrs := metric.WithAttributes(attribute.String("format", string(req.Format)))
	t.exportsTotal.Add(ctx, 1, attrs)
	t.documentBytes.Add(ctx, int64(size), attrs)
	t.exportDuration.Record(ctx, duration.Seconds(), attrs)
}

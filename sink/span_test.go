package sink_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/next-trace/scg-reject/reject"
	"github.com/next-trace/scg-reject/sink"
)

func newTracer(t *testing.T) (*sdktrace.TracerProvider, *tracetest.InMemoryExporter) {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))

	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
	})

	return tp, exporter
}

func TestSpan_RecordsExceptionEvent(t *testing.T) {
	t.Parallel()

	tp, exporter := newTracer(t)

	ctx, span := tp.Tracer("test").Start(context.Background(), "excel.build")
	r := reject.Stack(reject.Message("write failed"), reject.Message("disk full"), reject.WithoutCallers()).
		WithField("sheet", "orders")
	reject.LogReject(r, sink.SpanFromContext(ctx))
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)

	got := spans[0]
	assert.Equal(t, codes.Error, got.Status.Code)
	assert.Equal(t, "Error: write failed", got.Status.Description)

	require.Len(t, got.Events, 1)
	ev := got.Events[0]
	assert.Equal(t, "exception", ev.Name)
	assert.Contains(t, ev.Attributes, sink.AttrExceptionType.String("*reject.Record"))
	assert.Contains(t, ev.Attributes, sink.AttrExceptionMessage.String("Error: write failed"))
	assert.Contains(t, ev.Attributes, sink.AttrExceptionStacktrace.String(r.Trace()))
	assert.Contains(t, ev.Attributes, attribute.String("sheet", "orders"))
}

func TestSpan_NoSpanInContextIsNoop(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		reject.LogReject(reject.Message("x"), sink.SpanFromContext(context.Background()))
		reject.LogReject(reject.Message("x"), sink.NewSpan(nil))
	})
}

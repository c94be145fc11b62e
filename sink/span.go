package sink

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/next-trace/scg-reject/contract"
)

// Exception event attribute keys, following OpenTelemetry semantic conventions.
var (
	AttrExceptionType       = attribute.Key("exception.type")
	AttrExceptionMessage    = attribute.Key("exception.message")
	AttrExceptionStacktrace = attribute.Key("exception.stacktrace")
)

const (
	exceptionEvent = "exception"

	// ExceptionType is the exception.type reported for rejections.
	ExceptionType = "*reject.Record"
)

var spanReserved = []string{
	string(AttrExceptionType),
	string(AttrExceptionMessage),
	string(AttrExceptionStacktrace),
}

// Span records rejections on an OpenTelemetry span as exception events and
// marks the span as failed.
type Span struct {
	span trace.Span
}

var _ contract.FieldSink = (*Span)(nil)

func NewSpan(span trace.Span) *Span {
	return &Span{span: span}
}

// SpanFromContext returns a sink for the span carried by ctx. Without a span
// the sink records onto a no-op span.
func SpanFromContext(ctx context.Context) *Span {
	return NewSpan(trace.SpanFromContext(ctx))
}

func (s *Span) Error(value string) {
	s.ErrorFields(value, nil)
}

func (s *Span) ErrorFields(value string, fields map[string]any) {
	if s.span == nil || !s.span.IsRecording() {
		return
	}

	headline := firstLine(value)

	attrs := make([]attribute.KeyValue, 0, len(fields)+3)
	attrs = append(attrs,
		AttrExceptionType.String(ExceptionType),
		AttrExceptionMessage.String(headline),
		AttrExceptionStacktrace.String(value),
	)

	for _, k := range sortedKeys(fields) {
		attrs = append(attrs, attribute.String(fieldKey(k, spanReserved), fmt.Sprint(fields[k])))
	}

	s.span.AddEvent(exceptionEvent, trace.WithAttributes(attrs...))
	s.span.SetStatus(codes.Error, headline)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}

	return s
}

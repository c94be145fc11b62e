// Package sink provides contract.Sink implementations that deliver rejection
// reports to log/slog, zap, OpenTelemetry spans, or memory.
//
// Every adapter reports one rejection per call, at error level:
//
//	reject.LogReject(rec, sink.NewSlog(logger))
//	reject.LogReject(rec, sink.Multi(sink.NewZap(zl), sink.SpanFromContext(ctx)))
//
// Adapters that also implement contract.FieldSink emit record fields as
// structured attributes in key order.
package sink

import (
	"maps"
	"slices"
)

const (
	// DefaultMessage is the log message used for rejection reports.
	DefaultMessage = "rejected"

	// TraceKey is the attribute name carrying the reported trace.
	TraceKey = "trace"

	// FieldPrefix is prepended to record field keys that would collide with
	// a key the logger writes itself.
	FieldPrefix = "field."
)

func sortedKeys(m map[string]any) []string {
	return slices.Sorted(maps.Keys(m))
}

// fieldKey returns k, or FieldPrefix+k when k is one of reserved.
func fieldKey(k string, reserved []string) string {
	if slices.Contains(reserved, k) {
		return FieldPrefix + k
	}

	return k
}

package reject

import (
	"github.com/next-trace/scg-reject/contract"
)

// Record is a diagnostic value with a message and an optional multi-line
// trace. The zero trace ("") means no trace is attached.
type Record struct {
	message string
	trace   string
	cause   error
	fields  map[string]any
}

// compile-time guarantee that *Record implements contract.Record
var _ contract.Record = (*Record)(nil)

// FromTrace builds a record from known parts. No trace is captured; pass ""
// for a record without a trace.
func FromTrace(message, trace string) *Record {
	return &Record{message: message, trace: trace}
}

// ------ standard error interface

func (r *Record) Error() string {
	if r == nil {
		return "<nil>"
	}

	return r.message
}

func (r *Record) Unwrap() error { return r.cause }

// ------ getters

func (r *Record) Message() string        { return r.message }
func (r *Record) Trace() string          { return r.trace }
func (r *Record) HasTrace() bool         { return r.trace != "" }
func (r *Record) Fields() map[string]any { return cloneMap(r.fields) }

func (r *Record) isInput() {}

// ------ copy-on-write helpers

// WithField returns a copy of the record with k set to v in its fields.
// The receiver is left untouched.
func (r *Record) WithField(k string, v any) *Record {
	if r == nil {
		return nil
	}

	out := r.clone()
	if out.fields == nil {
		out.fields = map[string]any{}
	}

	out.fields[k] = cloneValue(v)

	return out
}

// WithFields returns a copy of the record with m merged into its fields.
// Nil or empty maps return the receiver itself. Existing keys are overwritten.
func (r *Record) WithFields(m map[string]any) *Record {
	if r == nil || len(m) == 0 {
		return r
	}

	out := r.clone()
	if out.fields == nil {
		out.fields = make(map[string]any, len(m))
	}

	for k, v := range m {
		out.fields[k] = cloneValue(v)
	}

	return out
}

func (r *Record) clone() *Record {
	return &Record{
		message: r.message,
		trace:   r.trace,
		cause:   r.cause,
		fields:  cloneMap(r.fields),
	}
}

func cloneMap(in map[string]any) map[string]any {
	if len(in) == 0 {
		return nil
	}

	out := make(map[string]any, len(in))

	for k, v := range in {
		out[k] = cloneValue(v)
	}

	return out
}

// cloneValue deep-clones nested maps with string keys; other values are
// copied as-is.
func cloneValue(v any) any {
	if mv, ok := v.(map[string]any); ok {
		return cloneMap(mv)
	}

	return v
}

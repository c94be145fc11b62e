// Package contract exposes the minimal interfaces shared between the reject
// core and its logging collaborators.
//
// Implementations of Record must treat an empty Trace as "no trace" and
// support errors.Unwrap for interoperability with standard error helpers.
package contract

// Record is the minimal, stable surface of a diagnostic error record.
//
// Implementations must:
//   - Return the human-readable message from Message (also used by Error).
//   - Return the multi-line trace from Trace, or "" when none is attached.
//   - Support errors.Unwrap via Unwrap.
type Record interface {
	error
	Message() string
	Trace() string
	Unwrap() error
}

// Sink receives terminal error reports. The empty string stands for an
// absent trace.
type Sink interface {
	Error(value string)
}

// FieldSink is a Sink that also accepts structured context in the same call.
// Fields passed in are a defensive copy owned by the sink.
type FieldSink interface {
	Sink
	ErrorFields(value string, fields map[string]any)
}

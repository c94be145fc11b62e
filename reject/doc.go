// Package reject composes and reports stacked error records.
//
// It exposes a single concrete type Record that implements contract.Record and
// integrates with the standard library's errors helpers (Is/As) via Unwrap.
//
// Key characteristics:
//   - Inputs are a closed variant: Message (a plain string) or *Record
//   - Stack appends a "Caused By:" section with the previous error's trace
//   - Records are immutable; every With* helper returns a new value
//   - Message-only records get a deterministic baseline trace
//   - LogReject reports a record to a contract.Sink in exactly one call
//
// Wrap and Ensure adapt arbitrary Go errors, and FromError turns any error
// into an Input.
package reject

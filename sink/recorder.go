package sink

import (
	"maps"
	"sync"

	"github.com/next-trace/scg-reject/contract"
)

// Call is one report captured by a Recorder.
type Call struct {
	Value  string
	Fields map[string]any
}

// Recorder keeps every report in memory. It is safe for concurrent use.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
}

var _ contract.FieldSink = (*Recorder)(nil)

func (r *Recorder) Error(value string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = append(r.calls, Call{Value: value})
}

func (r *Recorder) ErrorFields(value string, fields map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = append(r.calls, Call{Value: value, Fields: maps.Clone(fields)})
}

// Calls returns a copy of the recorded reports in arrival order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Call, len(r.calls))
	copy(out, r.calls)

	return out
}

// Values returns the reported values in arrival order.
func (r *Recorder) Values() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, 0, len(r.calls))
	for _, c := range r.calls {
		out = append(out, c.Value)
	}

	return out
}

func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.calls)
}

// Reset drops all recorded reports.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = nil
}

package sink

import (
	"maps"

	"github.com/next-trace/scg-reject/contract"
)

type multi []contract.Sink

// Multi returns a sink that forwards each report to every non-nil sink, in
// order. Field-aware sinks get their own copy of the fields; the others get
// the value only.
func Multi(sinks ...contract.Sink) contract.FieldSink {
	out := make(multi, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}

	return out
}

func (m multi) Error(value string) {
	for _, s := range m {
		s.Error(value)
	}
}

func (m multi) ErrorFields(value string, fields map[string]any) {
	for _, s := range m {
		if fs, ok := s.(contract.FieldSink); ok {
			fs.ErrorFields(value, maps.Clone(fields))
			continue
		}

		s.Error(value)
	}
}

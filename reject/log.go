package reject

import (
	"github.com/next-trace/scg-reject/contract"
)

// LogReject reports err to sink with exactly one call.
//
// A *Record is reported by its trace ("" when it has none); a Message is
// reported verbatim. When sink is a contract.FieldSink and the record carries
// fields, ErrorFields is that one call. A nil sink is a no-op.
func LogReject(err Input, sink contract.Sink) {
	if sink == nil {
		return
	}

	switch e := err.(type) {
	case *Record:
		if e == nil {
			sink.Error("")
			return
		}

		if fs, ok := sink.(contract.FieldSink); ok && len(e.fields) > 0 {
			fs.ErrorFields(e.trace, e.Fields())
			return
		}

		sink.Error(e.trace)
	case Message:
		sink.Error(string(e))
	default:
		sink.Error("")
	}
}

// LogError is LogReject for plain Go errors. A nil err is not reported.
func LogError(err error, sink contract.Sink) {
	if err == nil {
		return
	}

	LogReject(fromError(err), sink)
}
